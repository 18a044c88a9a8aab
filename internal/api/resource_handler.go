package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"

	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/api/shared"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/platform/logger"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/store"
)

// ResourceHandler serves the four CRUD operations for one tracker
// resource. The three resource families all use this one handler,
// parameterized by their descriptor and store; only the field set and
// the ownership scoping differ between them.
type ResourceHandler[T any] struct {
	store store.TrackerStore[T]
	desc  store.Descriptor[T]
	log   *slog.Logger

	// entity is the capitalized label used in response messages.
	entity string
}

// NewResourceHandler creates a handler for the resource described by desc,
// backed by st. If log is nil, the default logger is used.
func NewResourceHandler[T any](
	st store.TrackerStore[T],
	desc store.Descriptor[T],
	log *slog.Logger,
) *ResourceHandler[T] {
	if st == nil {
		panic("store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ResourceHandler[T]{
		store:  st,
		desc:   desc,
		log:    log.With(slog.String("component", desc.Table+"_handler")),
		entity: capitalize(desc.Entity),
	}
}

// Routes returns the resource's route tree: list, create, soft-delete
// and update, mounted at the resource's namespace by the caller.
func (h *ResourceHandler[T]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)
	r.Put("/{id}", h.Update)
	return r
}

// List handles GET /{resource} requests. It returns every record whose
// deleted flag is not set.
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListActive(r.Context())
	if err != nil {
		shared.RespondErrorAndLog(w, r, http.StatusInternalServerError,
			internalErrorMessage, err)
		return
	}

	shared.RespondSuccess(w, r, h.entity+" data retrieved", records)
}

// Create handles POST /{resource} requests. The record's fields come
// straight from the body; the store assigns the id and the creation
// date, and neither is echoed back.
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.log)

	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondErrorAndLog(w, r, http.StatusInternalServerError,
			internalErrorMessage, err)
		return
	}

	if err := h.store.Create(r.Context(), rec); err != nil {
		shared.RespondErrorAndLog(w, r, http.StatusInternalServerError,
			internalErrorMessage, err)
		return
	}

	shared.RespondSuccess(w, r, h.entity+" successfully created", nil)
}

// Delete handles DELETE /{resource}/{id} requests. Deletion is a soft
// delete: the record stays in storage with its deleted flag set. For the
// user-scoped resource the owning user_id is read from the query string,
// and records of other users report not-found.
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.log)

	id, ok := h.pathID(r)
	if !ok {
		log.Debug("non-integer id in path", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondError(w, r, http.StatusNotFound, h.entity+" not found")
		return
	}

	var ownerID int64
	if h.desc.Scoped() {
		// A missing or malformed owner id matches no row, which is
		// reported as not-found below.
		ownerID, _ = strconv.ParseInt(r.URL.Query().Get(h.desc.OwnerColumn), 10, 64)
	}

	if err := h.store.SoftDelete(r.Context(), id, ownerID); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondSuccess(w, r, h.entity+" deleted successfully", nil)
}

// Update handles PUT /{resource}/{id} requests. The full field set is
// rewritten; there are no partial updates. The id, creation date and
// deleted flag are never modified. For the user-scoped resource the
// owner comes from the body and must match the stored record.
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.log)

	id, ok := h.pathID(r)
	if !ok {
		log.Debug("non-integer id in path", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondError(w, r, http.StatusNotFound, h.entity+" not found")
		return
	}

	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondErrorAndLog(w, r, http.StatusInternalServerError,
			internalErrorMessage, err)
		return
	}

	if err := h.store.Update(r.Context(), id, rec); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondSuccess(w, r, h.entity+" successfully updated", nil)
}

// respondStoreError translates a store error into the resource's error
// response: a not-found message for zero-row matches, a sanitized
// internal error for everything else.
func (h *ResourceHandler[T]) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusNotFound {
		shared.RespondError(w, r, status, h.entity+" not found")
		return
	}
	shared.RespondErrorAndLog(w, r, status, internalErrorMessage, err)
}

// pathID extracts the integer record id from the request path. A
// non-integer id identifies no record.
func (h *ResourceHandler[T]) pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// capitalize upper-cases the first rune of a label for use in messages.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.TrimPrefix(s, string(runes[0]))
}
