// Package clientip resolves the originating client address of an HTTP
// request behind reverse proxies. Proxy headers are consulted before the
// socket address, and invalid values fall through to the next source.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Resolve returns the client IP for an HTTP request, checking in order:
//
//  1. X-Forwarded-For (first valid address in the chain)
//  2. X-Real-IP
//  3. RemoteAddr
//
// The result is the normalized textual form of the address, or empty when
// nothing parses.
func Resolve(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for _, ip := range strings.Split(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
