package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
)

// InternalMiddleware checks for static API key in header. An empty key closes the internal routes.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte("Bearer "+apiKey)) != 1 {
				logger.Warn("[InternalMiddleware] rejected internal call",
					zap.String("path", r.URL.Path),
					zap.String("service", r.Header.Get("X-Internal-Service")),
				)
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
