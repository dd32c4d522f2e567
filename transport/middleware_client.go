package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	utilsContext "github.com/muhammadheryan/el-rastro/utils/context"
)

const (
	clientIDCookie = "client_id"
	clientIDHeader = "X-Client-ID"
	clientIDMaxAge = 30 * 24 * time.Hour
)

// ClientIDMiddleware tags every request with a stable client id, issuing a cookie on first visit.
// Anonymous filter state is scoped to it.
func ClientIDMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := r.Header.Get(clientIDHeader)
			if clientID == "" {
				if c, err := r.Cookie(clientIDCookie); err == nil {
					clientID = c.Value
				}
			}
			if clientID == "" {
				clientID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     clientIDCookie,
					Value:    clientID,
					Path:     "/",
					MaxAge:   int(clientIDMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := utilsContext.WithClientID(r.Context(), clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// filterScope is the key of the filter state of a request: the session when logged in,
// the client id otherwise.
func filterScope(ctx context.Context) string {
	if session := utilsContext.GetSession(ctx); session != nil && session.ID != "" {
		return session.ID
	}
	clientID, _ := utilsContext.GetClientID(ctx)
	return clientID
}
