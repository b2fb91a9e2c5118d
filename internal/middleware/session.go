package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"backoffice/pkg/logger"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "bo_session"

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionConfig configures the session cookie
type SessionConfig struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
}

// Session ensures every request carries a session ID. The ID travels in an
// HS256-signed cookie; missing, invalid or expired tokens start a new session.
// The cookie is reissued once half of its lifetime has passed.
func Session(cfg SessionConfig, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()

			claims, err := readSession(r, cfg.Secret)
			if err != nil {
				logger.WithError(err).Debug("Starting new session")
				claims = nil
			}

			reissue := claims == nil || claims.ExpiresAt == nil ||
				claims.ExpiresAt.Sub(now) < cfg.TTL/2
			sessionID := ""
			if claims != nil {
				sessionID = claims.SessionID
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				reissue = true
			}

			if reissue {
				token, err := signSession(sessionID, now, cfg)
				if err != nil {
					logger.WithError(err).Error("Failed to sign session token")
				} else {
					http.SetCookie(w, &http.Cookie{
						Name:     SessionCookieName,
						Value:    token,
						Path:     "/",
						Expires:  now.Add(cfg.TTL),
						HttpOnly: true,
						Secure:   cfg.Secure,
						SameSite: http.SameSiteLaxMode,
					})
				}
			}

			ctx := context.WithValue(r.Context(), SessionIDContextKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID returns the session ID stored in ctx, or ""
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDContextKey).(string)
	return id
}

func readSession(r *http.Request, secret []byte) (*sessionClaims, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, err
	}

	claims := &sessionClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func signSession(sessionID string, now time.Time, cfg SessionConfig) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
}
