package pkg

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUserIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		realIP     string
		forwarded  string
		expected   string
		expectErr  bool
	}{
		{
			name:       "plain remote addr",
			remoteAddr: "83.12.53.65:2145",
			expected:   "83.12.53.65",
		},
		{
			name:       "real ip header wins",
			remoteAddr: "172.20.0.1:60102",
			realIP:     "91.64.12.8",
			expected:   "91.64.12.8",
		},
		{
			name:       "first of forwarded chain",
			remoteAddr: "172.20.0.1:60102",
			forwarded:  "91.64.12.8, 10.0.0.2",
			expected:   "91.64.12.8",
		},
		{
			name:       "loopback collapses to localhost",
			remoteAddr: "127.0.0.1:35325",
			expected:   "localhost",
		},
		{
			name:       "docker bridge collapses to localhost",
			remoteAddr: "172.20.0.1:60102",
			expected:   "localhost",
		},
		{
			name:       "garbage addr",
			remoteAddr: "not-an-ip",
			expectErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remoteAddr
			if tc.realIP != "" {
				r.Header.Set("X-Real-Ip", tc.realIP)
			}
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tc.forwarded)
			}

			ip, err := ReadUserIP(r)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ip)
		})
	}
}
