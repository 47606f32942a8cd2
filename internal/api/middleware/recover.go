package middleware

import (
	"net/http"

	"github.com/jobhunt/backend/internal/logger"
	log "github.com/sirupsen/logrus"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).
					Errorf("panic while handling %s %s: %v", r.Method, r.URL.Path, rec)
				writeJSONError(w, http.StatusInternalServerError, "internal", "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
