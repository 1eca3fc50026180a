package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Recoverer converts a handler panic into a generic 500 JSON response.
// Only the failure message is logged; clients never see internals.
func Recoverer(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error("handler panic",
						"error", rec,
						"method", r.Method,
						"path", r.URL.Path,
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{"error": "Something went wrong!"})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
