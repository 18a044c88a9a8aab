package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response wrapper used by every endpoint,
// success or failure. Data is null whenever an operation returns no
// payload.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondSuccess writes a success envelope with the given message and payload.
func RespondSuccess(w http.ResponseWriter, r *http.Request, message string, data any) {
	RespondWithJSON(w, r, http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError writes a failure envelope with the given status code and
// message. Data is always null on failure.
func RespondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, Envelope{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// RespondErrorAndLog writes a failure envelope and logs the underlying
// error server-side. The client only ever sees the sanitized message;
// the cause stays in the logs, correlated by trace ID.
//
// 5xx responses are logged at ERROR level, everything else at DEBUG.
func RespondErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondError(w, r, status, userMessage)
}
