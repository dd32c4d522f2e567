package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/el-rastro/application/user"
	"github.com/muhammadheryan/el-rastro/constant"
	utilsContext "github.com/muhammadheryan/el-rastro/utils/context"
	"github.com/muhammadheryan/el-rastro/utils/errors"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
)

const sessionCookie = "session_id"

// AuthMiddleware resolves the session of the request from the Authorization header or the
// session cookie. Requests without a valid session continue anonymously.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionIDFromRequest(r)
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := userApp.ResolveSession(r.Context(), sessionID)
			if err != nil {
				if !errors.IsType(err, constant.ErrUnauthorize) {
					logger.Warn("[AuthMiddleware] err userApp.ResolveSession", zap.String("error", err.Error()))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := utilsContext.WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionIDFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// requireSession rejects anonymous requests before they reach the handler.
func requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if utilsContext.GetSession(r.Context()) == nil {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		next(w, r)
	}
}
