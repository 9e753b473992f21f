// SPDX-License-Identifier: MIT
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/autotheme/internal/db"
	"github.com/thatcatcamp/autotheme/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = database.AutoMigrate(&models.APIToken{})
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return database
}

func runRequireToken(header string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/themes", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}

	middleware := RequireToken()
	middleware(c)
	return c, w
}

func TestRequireTokenWithValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database := setupAuthTestDB(t)
	db.SetDB(database)

	signed, _, err := IssueToken(database, "ci")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	c, w := runRequireToken("Bearer " + signed)

	if c.IsAborted() {
		t.Error("Middleware should not abort with valid token")
	}

	if w.Code != 200 {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Check subject was set in context
	subject, exists := c.Get("token_subject")
	if !exists {
		t.Error("Subject should be set in context")
	}

	if subject.(string) != "ci" {
		t.Error("Subject in context should match")
	}
}

func TestRequireTokenWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db.SetDB(setupAuthTestDB(t))

	c, w := runRequireToken("")

	if !c.IsAborted() {
		t.Error("Middleware should abort without token")
	}

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestRequireTokenWithInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db.SetDB(setupAuthTestDB(t))

	c, w := runRequireToken("Bearer invalid-token")

	if !c.IsAborted() {
		t.Error("Middleware should abort with invalid token")
	}

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestRequireTokenRevoked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database := setupAuthTestDB(t)
	db.SetDB(database)

	signed, token, err := IssueToken(database, "ci")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	if err := RevokeToken(database, token.TokenID); err != nil {
		t.Fatalf("Failed to revoke token: %v", err)
	}

	c, w := runRequireToken("Bearer " + signed)

	if !c.IsAborted() {
		t.Error("Middleware should abort with revoked token")
	}

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestRequireTokenUnknown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database := setupAuthTestDB(t)
	db.SetDB(database)

	// Signed correctly but never recorded
	signed, err := GenerateToken(&models.APIToken{TokenID: "ghost", Subject: "ci", ExpiresAt: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	c, w := runRequireToken("Bearer " + signed)

	if !c.IsAborted() {
		t.Error("Middleware should abort with unknown token")
	}

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestRevokeUnknownToken(t *testing.T) {
	database := setupAuthTestDB(t)

	if err := RevokeToken(database, "missing"); err == nil {
		t.Error("Expected error revoking unknown token")
	}
}

func TestListTokens(t *testing.T) {
	database := setupAuthTestDB(t)

	for _, subject := range []string{"ci", "deploy"} {
		if _, _, err := IssueToken(database, subject); err != nil {
			t.Fatalf("Failed to issue token: %v", err)
		}
	}

	tokens, err := ListTokens(database)
	if err != nil {
		t.Fatalf("ListTokens failed: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Subject != "deploy" {
		t.Errorf("Expected newest token first, got %s", tokens[0].Subject)
	}
}
