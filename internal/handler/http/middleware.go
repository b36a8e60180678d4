package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gungun-1908/InsightCart/pkg/logger"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// clientIDKey is the context key for the storefront client ID.
const clientIDKey contextKey = "client_id"

// ClientCookieName identifies the browser to the storefront. The cookie is
// the sole client identity; there is no account binding until login.
const ClientCookieName = "sf_client"

// ClientCookie is middleware that reads the client cookie, issuing a fresh
// UUID cookie on first contact, and stores the client ID in the request
// context and the context logger.
func ClientCookie(maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := ""
			if c, err := r.Cookie(ClientCookieName); err == nil {
				clientID = c.Value
			}
			if _, err := uuid.Parse(clientID); err != nil {
				clientID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookieName,
					Value:    clientID,
					Path:     "/",
					MaxAge:   int(maxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), clientIDKey, clientID)
			ctx = logger.WithClientID(ctx, clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clientIDFromContext extracts the storefront client ID from the request
// context.
func clientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey).(string)
	return id
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnsupportedMediaType)
				_, _ = w.Write([]byte(`{"error":{"code":"UNSUPPORTED_MEDIA_TYPE","message":"Content-Type must be application/json"}}`))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
