package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full router with permissive mocks so that routing,
// middleware ordering and guard placement can be exercised end to end.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, creds models.CredentialsRequest) (models.User, error) {
			return models.User{UserID: 1, Email: creds.Email}, nil
		},
		loginFn: func(_ context.Context, creds models.CredentialsRequest) (models.User, error) {
			return models.User{UserID: 1, Email: creds.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("signed.jwt"), nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == "good-token" {
				return models.Token{UserID: 42}, nil
			}
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	}
	pinger := &mockPinger{pingFn: func(_ context.Context) error { return nil }}

	h := NewHandler(&service.Services{AuthService: auth, NoteService: notes}, pinger, logger.Nop())
	return h.Init()
}

func TestRoutes_PublicEndpointsReachable(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"register", http.MethodPost, "/api/auth/register", `{"email":"a@b.com","password":"secret123"}`, http.StatusCreated},
		{"login", http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"secret123"}`, http.StatusOK},
		{"health", http.MethodGet, "/api/health", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoutes_NotesGuarded(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/notes"},
		{http.MethodGet, "/api/notes"},
		{http.MethodPut, "/api/notes/1"},
		{http.MethodDelete, "/api/notes/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Access denied. No token provided.")
		})
	}
}

func TestRoutes_NotesWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_NotesWithBadToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token.")
}

func TestRoutes_UnknownPath(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/notes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_TraceIDHeaderSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_TraceIDHeaderReused(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Trace-ID", "given-trace-id")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "given-trace-id", rec.Header().Get("X-Trace-ID"))
}
