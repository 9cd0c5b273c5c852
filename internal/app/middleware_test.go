package app

import (
	"net/http"
	"testing"

	"github.com/rbpdev/movie-booking-system/internal/domain"
)

func TestRequireAuthentication(t *testing.T) {
	app := newTestApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := app.sessionManager.LoadAndSave(app.requireAuthentication(next))

	w, r := executeRequest(t, http.MethodGet, "/movies", nil)
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusUnauthorized)
	}

	checkErrorResponse(t, w, http.StatusUnauthorized, "You must be authenticated to access this resource")
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       domain.Role
		wantStatus int
	}{
		{
			name:       "admin passes through",
			role:       domain.RoleAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:       "regular user is forbidden",
			role:       domain.RoleUser,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			handler := app.requireAdmin(next)

			w, r := executeRequest(t, http.MethodPost, "/movies", nil)
			r = withUser(r, 1, tt.role)

			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status code = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	handler := app.recoverPanic(next)

	w, r := executeRequest(t, http.MethodGet, "/movies", nil)
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusInternalServerError)
	}

	if got := w.Header().Get("Connection"); got != "close" {
		t.Errorf("Connection header = %q, want %q", got, "close")
	}
}
