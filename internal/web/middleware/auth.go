package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/vgarchive/server/internal/config"
)

// editorKeyHeader carries the editor key on API requests; the browser
// UI sends the same key through a cookie set at sign-in.
const (
	editorKeyHeader = "X-Editor-Key"
	editorKeyCookie = "editor_key"
)

// EditorAuth returns middleware that gates catalog-mutating routes
// behind a configured editor key. If RequireAuth is false, all requests
// pass through. If RequireAuth is true but no keys are configured, all
// requests are rejected (config validation normally prevents that
// state).
func EditorAuth(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.RequireAuth {
				next.ServeHTTP(w, r)
				return
			}

			key := editorKey(r)
			if key == "" {
				slog.Warn("auth: missing editor key",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				http.Error(w, `{"error":"missing editor key","code":"AUTH_MISSING_KEY"}`, http.StatusUnauthorized)
				return
			}

			if !isValidEditorKey(key, cfg.EditorKeys) {
				slog.Warn("auth: invalid editor key",
					"path", r.URL.Path,
					"method", r.Method,
					"remote_addr", r.RemoteAddr,
				)
				http.Error(w, `{"error":"invalid editor key","code":"AUTH_INVALID_KEY"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IsEditor reports whether the request carries a valid editor key.
// Pages use this to decide whether to render the import controls; the
// middleware is what actually enforces access.
func IsEditor(r *http.Request, cfg *config.SecurityConfig) bool {
	if !cfg.RequireAuth {
		return true
	}
	key := editorKey(r)
	return key != "" && isValidEditorKey(key, cfg.EditorKeys)
}

func editorKey(r *http.Request) string {
	if key := r.Header.Get(editorKeyHeader); key != "" {
		return key
	}
	if c, err := r.Cookie(editorKeyCookie); err == nil {
		return c.Value
	}
	return ""
}

// isValidEditorKey checks the provided key against every configured
// key. Uses constant-time comparison and checks ALL keys so comparison
// time does not reveal which key matched, if any.
func isValidEditorKey(key string, validKeys []string) bool {
	valid := 0
	for _, validKey := range validKeys {
		valid |= subtle.ConstantTimeCompare([]byte(key), []byte(validKey))
	}
	return valid == 1
}
