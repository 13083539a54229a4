package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vgarchive/server/internal/config"
)

func authHandler(cfg *config.SecurityConfig) http.Handler {
	return EditorAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestEditorAuth(t *testing.T) {
	cfg := &config.SecurityConfig{
		RequireAuth: true,
		EditorKeys:  []string{"key-one", "key-two"},
	}

	tests := []struct {
		name     string
		header   string
		cookie   string
		wantCode int
	}{
		{"MissingKey", "", "", http.StatusUnauthorized},
		{"WrongKey", "nope", "", http.StatusForbidden},
		{"ValidHeader", "key-one", "", http.StatusOK},
		{"SecondValidKey", "key-two", "", http.StatusOK},
		{"ValidCookie", "", "key-one", http.StatusOK},
		{"HeaderBeatsCookie", "nope", "key-one", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/import/game-boy", nil)
			if tt.header != "" {
				req.Header.Set("X-Editor-Key", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "editor_key", Value: tt.cookie})
			}

			rec := httptest.NewRecorder()
			authHandler(cfg).ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}

	t.Run("AuthDisabled", func(t *testing.T) {
		open := &config.SecurityConfig{RequireAuth: false}
		req := httptest.NewRequest(http.MethodPost, "/api/import/game-boy", nil)
		rec := httptest.NewRecorder()
		authHandler(open).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("NoKeysConfigured", func(t *testing.T) {
		locked := &config.SecurityConfig{RequireAuth: true}
		req := httptest.NewRequest(http.MethodPost, "/api/import/game-boy", nil)
		req.Header.Set("X-Editor-Key", "anything")
		rec := httptest.NewRecorder()
		authHandler(locked).ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})
}

func TestIsEditor(t *testing.T) {
	cfg := &config.SecurityConfig{RequireAuth: true, EditorKeys: []string{"key-one"}}

	req := httptest.NewRequest(http.MethodGet, "/consoles/game-boy", nil)
	if IsEditor(req, cfg) {
		t.Error("request without key must not be an editor")
	}

	req.Header.Set("X-Editor-Key", "key-one")
	if !IsEditor(req, cfg) {
		t.Error("request with valid key must be an editor")
	}

	open := &config.SecurityConfig{RequireAuth: false}
	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	if !IsEditor(plain, open) {
		t.Error("everyone is an editor when auth is disabled")
	}
}
