package middleware

import (
	"context"
	"net/http"

	"dunkstore-backend/config"
	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/utils"
)

// NewSessionMiddleware attaches the shopper session to every request. A
// missing or invalid session token is replaced by a freshly minted one,
// returned as a cookie and in the X-Session-Token header.
func NewSessionMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			// Resume the session from the cookie or bearer token
			sessionID := ""
			if token, err := utils.ExtractToken(r, cfg.SessionCookieName); err == nil {
				if id, err := utils.ValidateSessionToken(token); err == nil {
					sessionID = id
				} else {
					logger.WithContext(r.Context()).Debug().Err(err).Msg("Discarding invalid session token")
				}
			}

			// Otherwise start a new one
			minted := sessionID == ""
			if minted {
				sessionID = utils.GenerateUUID()
				token, err := utils.GenerateSessionToken(sessionID, cfg.SessionTokenExpiry)
				if err != nil {
					logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to issue session token")
					utils.WriteError(w, http.StatusInternalServerError, "failed to start session")
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.SessionCookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(cfg.SessionTokenExpiry.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Env == "production",
					SameSite: http.SameSiteLaxMode,
				})
				w.Header().Set("X-Session-Token", token)
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), &domain.Session{ID: sessionID, New: minted})))
		})
	}
}

// WithSession stores the session in ctx.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, domain.SessionContextKey, session)
}

// SessionFromContext returns the session placed by NewSessionMiddleware.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(domain.SessionContextKey).(*domain.Session)
	return s, ok && s != nil && s.ID != ""
}
