// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// IPFilterMiddleware blocks requests based on IP address. A client in the
// blocklist is always refused; when the allowlist is non-empty only clients
// inside it are served. Entries are CIDR ranges or single addresses.
func IPFilterMiddleware(blocklist, allowlist []string) gin.HandlerFunc {
	blockedCIDRs := parseRanges(blocklist)
	allowedCIDRs := parseRanges(allowlist)

	return func(c *gin.Context) {
		// Extract client IP
		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		// Check blocklist
		if containsIP(blockedCIDRs, clientIP) {
			c.AbortWithStatus(403)
			return
		}

		// If an allowlist is configured, enforce it
		if len(allowedCIDRs) > 0 && !containsIP(allowedCIDRs, clientIP) {
			c.AbortWithStatus(403)
			return
		}

		c.Next()
	}
}

// parseRanges turns CIDR strings into networks. A bare address becomes a
// single host range; unparseable entries are logged and skipped.
func parseRanges(entries []string) []*net.IPNet {
	ranges := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil {
				bits := 128
				if ip.To4() != nil {
					bits = 32
				}
				entry = entry + "/" + strconv.Itoa(bits)
			}
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			log.Warn().Str("entry", entry).Msg("Ignoring invalid IP filter entry")
			continue
		}
		ranges = append(ranges, ipNet)
	}
	return ranges
}

func containsIP(ranges []*net.IPNet, ip net.IP) bool {
	for _, ipNet := range ranges {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

// extractIP extracts the client IP from the request
// Handles X-Forwarded-For header if behind proxy
func extractIP(c *gin.Context) net.IP {
	// Check X-Forwarded-For header (if behind proxy)
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP in the list
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			return net.ParseIP(ip)
		}
	}

	// Fall back to RemoteAddr
	// Use SplitHostPort to properly handle IPv6 addresses with brackets
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		// If no port, use the whole string
		host = c.Request.RemoteAddr
	}

	return net.ParseIP(host)
}
