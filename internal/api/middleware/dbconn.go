package middleware

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/api/shared"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/platform/logger"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/store"
)

// ConnInitializer configures a freshly checked-out connection before the
// request's handlers run. It is invoked exactly once per acquisition.
type ConnInitializer func(ctx context.Context, conn store.DBTX) error

// SessionInitializer returns the default initializer: it pins the
// session time zone so every request computes dates in the same fixed
// zone. The value is bound as a parameter via set_config rather than
// interpolated into a SET statement.
func SessionInitializer(timeZone string) ConnInitializer {
	return func(ctx context.Context, conn store.DBTX) error {
		_, err := conn.ExecContext(ctx,
			"SELECT set_config('TimeZone', $1, false)", timeZone)
		return err
	}
}

// DBConn returns middleware that gives each request exactly one pooled
// database connection for its full duration. The connection is checked
// out of the pool, configured by init, attached to the request context
// (see store.WithConn), and released back to the pool on every exit
// path: normal completion, handler panic, or a failure in the
// initializer itself. If acquisition or initialization fails, no
// handler executes and the caller receives an internal-error envelope.
func DBConn(db *sql.DB, init ConnInitializer, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "db_conn_middleware"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			conn, err := db.Conn(ctx)
			if err != nil {
				reqLog := logger.FromContextOrDefault(ctx, log)
				reqLog.Error("failed to acquire database connection",
					slog.String("error", err.Error()))
				shared.RespondErrorAndLog(w, r, http.StatusInternalServerError,
					"Internal Server Error", err)
				return
			}
			// Close returns the connection to the pool. The defer makes
			// release unconditional, including on panic and on session
			// configuration failure.
			defer func() { _ = conn.Close() }()

			if init != nil {
				if err := init(ctx, conn); err != nil {
					reqLog := logger.FromContextOrDefault(ctx, log)
					reqLog.Error("failed to configure database session",
						slog.String("error", err.Error()))
					shared.RespondErrorAndLog(w, r, http.StatusInternalServerError,
						"Internal Server Error", err)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(store.WithConn(ctx, conn)))
		})
	}
}
