package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/pkg/logger"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		preflight      bool
		expectedOrigin string
		expectedStatus int
		expectedMaxAge string
	}{
		{name: "same origin", allowed: []string{"https://a.example.com"}, origin: "", expectedStatus: http.StatusOK},
		{name: "wildcard echoes origin", allowed: []string{"*"}, origin: "https://a.example.com", expectedOrigin: "https://a.example.com", expectedStatus: http.StatusOK},
		{name: "listed origin", allowed: []string{"https://a.example.com"}, origin: "https://a.example.com", expectedOrigin: "https://a.example.com", expectedStatus: http.StatusOK},
		{name: "unlisted origin", allowed: []string{"https://a.example.com"}, origin: "https://evil.example.com", expectedStatus: http.StatusOK},
		{name: "preflight", allowed: []string{"*"}, origin: "https://a.example.com", preflight: true, expectedOrigin: "https://a.example.com", expectedStatus: http.StatusNoContent, expectedMaxAge: "86400"},
		{name: "preflight from unlisted origin", allowed: []string{"https://a.example.com"}, origin: "https://evil.example.com", preflight: true, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCORSConfig()
			cfg.AllowedOrigins = tt.allowed
			handler := CORS(cfg, logger.NewNop())(okHandler)

			method := http.MethodGet
			if tt.preflight {
				method = http.MethodOptions
			}
			req := httptest.NewRequest(method, "/api/providers", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectedMaxAge, rec.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", incoming)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, incoming, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "<script>")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "<script>", seen)
}

func TestLogging_PassesThrough(t *testing.T) {
	handler := Logging(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestSession_NewAndReused(t *testing.T) {
	cfg := SessionConfig{Secret: []byte("test-secret"), TTL: time.Hour}
	var seen string
	handler := Session(cfg, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	first := seen
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, first, seen)
	assert.Nil(t, sessionCookie(rec), "a fresh token is not reissued")
}

func TestSession_RejectsForeignSignature(t *testing.T) {
	cfg := SessionConfig{Secret: []byte("test-secret"), TTL: time.Hour}
	var seen string
	handler := Session(cfg, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionID(r.Context())
	}))

	forged, err := signSession("victim", time.Now(), SessionConfig{Secret: []byte("other"), TTL: time.Hour})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: forged})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEqual(t, "victim", seen)
	assert.NotNil(t, sessionCookie(rec))
}

func TestSession_ReissuesAgingToken(t *testing.T) {
	cfg := SessionConfig{Secret: []byte("test-secret"), TTL: time.Hour}
	var seen string
	handler := Session(cfg, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionID(r.Context())
	}))

	claims := sessionClaims{
		SessionID: "abc",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(10 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc", seen)
	assert.NotNil(t, sessionCookie(rec))
}
