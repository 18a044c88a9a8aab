package api

import (
	"net/http"

	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/store"
)

// internalErrorMessage is the only detail a client ever sees for a
// store or decoding failure. The underlying cause stays in the logs.
const internalErrorMessage = "Internal Server Error"

// MapErrorToStatusCode maps store errors to HTTP status codes. A scoped
// update or delete that matched zero rows is a distinguished not-found
// outcome; every other store failure is an internal error.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
