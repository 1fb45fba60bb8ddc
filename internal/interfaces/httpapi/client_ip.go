package httpapi

import (
	"net/http"
	"net/netip"
	"strings"
)

// resolveClientIP returns the first parseable address among the leftmost
// X-Forwarded-For hop, X-Real-IP and the socket peer. It is only logged.
func resolveClientIP(r *http.Request) string {
	forwarded, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
	for _, raw := range []string{forwarded, r.Header.Get("X-Real-IP"), r.RemoteAddr} {
		raw = strings.TrimSpace(raw)
		if addr, err := netip.ParseAddrPort(raw); err == nil {
			return addr.Addr().Unmap().String()
		}
		if addr, err := netip.ParseAddr(raw); err == nil {
			return addr.Unmap().String()
		}
	}
	return ""
}
