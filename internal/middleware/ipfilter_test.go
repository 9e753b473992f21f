// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func runIPFilter(blocklist, allowlist []string, remoteAddr, forwarded string) int {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/theme", nil)
	c.Request.RemoteAddr = remoteAddr
	if forwarded != "" {
		c.Request.Header.Set("X-Forwarded-For", forwarded)
	}

	middleware := IPFilterMiddleware(blocklist, allowlist)
	middleware(c)
	return w.Code
}

func TestIPFilterBlocklist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	code := runIPFilter([]string{"192.168.1.0/24"}, nil, "192.168.1.100:1234", "")
	if code != 403 {
		t.Errorf("Expected 403 for blocked IP, got %d", code)
	}
}

func TestIPFilterBlocklistAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	code := runIPFilter([]string{"192.168.1.0/24"}, nil, "10.0.0.1:1234", "")
	if code == 403 {
		t.Error("Expected IP outside blocklist to be allowed")
	}
}

func TestIPFilterAllowlist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	allow := []string{"10.0.0.0/8"}
	if code := runIPFilter(nil, allow, "172.16.0.1:1234", ""); code != 403 {
		t.Errorf("Expected 403 outside allowlist, got %d", code)
	}
	if code := runIPFilter(nil, allow, "10.1.2.3:1234", ""); code == 403 {
		t.Error("Expected IP inside allowlist to be allowed")
	}
}

func TestIPFilterBlocklistWinsOverAllowlist(t *testing.T) {
	gin.SetMode(gin.TestMode)

	code := runIPFilter([]string{"10.0.0.5"}, []string{"10.0.0.0/8"}, "10.0.0.5:1234", "")
	if code != 403 {
		t.Errorf("Expected blocked single address to be refused, got %d", code)
	}
}

func TestIPFilterForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	code := runIPFilter([]string{"203.0.113.0/24"}, nil, "10.0.0.1:1234", "203.0.113.9, 10.0.0.1")
	if code != 403 {
		t.Errorf("Expected forwarded client to be blocked, got %d", code)
	}
}

func TestIPFilterIgnoresInvalidEntries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	code := runIPFilter([]string{"not-an-ip", ""}, nil, "10.0.0.1:1234", "")
	if code == 403 {
		t.Error("Invalid blocklist entries should be ignored")
	}
}
