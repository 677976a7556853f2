package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/MonkyMars/gecho"
)

// parseTrustedProxies accepts CIDRs and bare addresses. Invalid entries are skipped.
func parseTrustedProxies(entries []string, logger *gecho.Logger) []netip.Prefix {
	var prefixes []netip.Prefix
	for _, entry := range entries {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		logger.Warn("Ignoring invalid trusted proxy", gecho.Field("entry", entry))
	}
	return prefixes
}

func (mw *Middleware) isTrustedProxy(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range mw.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func peerIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// getClientIP returns the direct peer unless it is a trusted proxy. Behind
// trusted proxies the client is the rightmost X-Forwarded-For hop that is not
// itself a trusted proxy, since everything left of it is caller supplied.
func (mw *Middleware) getClientIP(r *http.Request) string {
	peer := peerIP(r)
	if !mw.isTrustedProxy(peer) {
		return peer
	}

	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if _, err := netip.ParseAddr(hop); err != nil {
				// a malformed hop ends the trusted chain
				return peer
			}
			if !mw.isTrustedProxy(hop) || i == 0 {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if _, err := netip.ParseAddr(xri); err == nil {
			return xri
		}
	}

	return peer
}

// RealIP rewrites RemoteAddr to the resolved client address so request logs
// and rate limits agree on who the caller is.
func (mw *Middleware) RealIP() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.RemoteAddr = mw.getClientIP(r)
			next.ServeHTTP(w, r)
		})
	}
}
