package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ReadUserIP extracts the client IP from proxy headers, falling back to
// the connection's remote address. Loopback and docker-bridge callers
// collapse to "localhost".
func ReadUserIP(r *http.Request) (string, error) {
	addr := r.Header.Get("X-Real-Ip")
	if addr == "" {
		// first entry of the forwarded chain is the original client
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			addr = strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}
	if addr == "" {
		addr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	ip := net.ParseIP(addr)
	if ip == nil {
		return "", fmt.Errorf("ip addr %s is invalid", addr)
	}

	if ip.IsLoopback() || isDockerBridge(ip) {
		return "localhost", nil
	}
	return addr, nil
}

// isDockerBridge reports whether the address is a docker default-bridge
// gateway (172.x.0.1), seen when running behind a local container proxy.
func isDockerBridge(ip net.IP) bool {
	v4 := ip.To4()
	if v4 == nil {
		return false
	}
	return v4[0] == 172 && v4[2] == 0 && v4[3] == 1
}
