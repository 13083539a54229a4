package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func realIPHandler(trusted []string, seen *string) http.Handler {
	return TrustedRealIP(trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = r.RemoteAddr
	}))
}

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		realIP     string
		forwarded  string
		want       string
	}{
		{
			name:       "TrustedProxyRealIP",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:4567",
			realIP:     "203.0.113.9",
			want:       "203.0.113.9",
		},
		{
			name:       "TrustedProxyForwardedFor",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:4567",
			forwarded:  "203.0.113.9, 10.1.2.3",
			want:       "203.0.113.9",
		},
		{
			name:       "RealIPBeatsForwardedFor",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:4567",
			realIP:     "198.51.100.7",
			forwarded:  "203.0.113.9",
			want:       "198.51.100.7",
		},
		{
			name:       "UntrustedConnectionKeepsSocketAddr",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "203.0.113.9:4567",
			realIP:     "198.51.100.7",
			want:       "203.0.113.9:4567",
		},
		{
			name:       "NoTrustedProxies",
			trusted:    nil,
			remoteAddr: "10.1.2.3:4567",
			realIP:     "203.0.113.9",
			want:       "10.1.2.3:4567",
		},
		{
			name:       "BareIPTrustEntry",
			trusted:    []string{"10.1.2.3"},
			remoteAddr: "10.1.2.3:4567",
			realIP:     "203.0.113.9",
			want:       "203.0.113.9",
		},
		{
			name:       "GarbageHeaderIgnored",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:4567",
			realIP:     "not-an-ip",
			want:       "10.1.2.3:4567",
		},
		{
			name:       "InvalidTrustEntrySkipped",
			trusted:    []string{"garbage", "10.0.0.0/8"},
			remoteAddr: "10.1.2.3:4567",
			realIP:     "203.0.113.9",
			want:       "203.0.113.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			var seen string
			realIPHandler(tt.trusted, &seen).ServeHTTP(httptest.NewRecorder(), req)
			if seen != tt.want {
				t.Errorf("RemoteAddr = %q, want %q", seen, tt.want)
			}
		})
	}
}
