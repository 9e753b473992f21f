// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/autotheme/internal/config"
	"github.com/thatcatcamp/autotheme/internal/models"
	"gorm.io/gorm"
)

const issuer = "autotheme"

// Claims represents JWT claims for an API token
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// ScopeWrite allows saving and deleting library themes
const ScopeWrite = "themes:write"

// getJWTSecret returns the JWT secret from env var or config
func getJWTSecret() string {
	// Environment variable takes precedence
	if secret := os.Getenv("AUTOTHEME_JWT_SECRET"); secret != "" {
		return secret
	}
	return config.GetString("auth.jwt_secret")
}

func tokenExpiry() time.Duration {
	expiryHours := config.GetInt("auth.jwt_expiry_hours")
	if expiryHours == 0 {
		expiryHours = 24 * 30 // Default fallback
	}
	return time.Duration(expiryHours) * time.Hour
}

// GenerateToken signs a JWT for a recorded API token
func GenerateToken(token *models.APIToken) (string, error) {
	claims := Claims{
		Scope: ScopeWrite,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        token.TokenID,
			Subject:   token.Subject,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(token.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signed.SignedString([]byte(getJWTSecret()))
}

// IssueToken records a new API token for subject and returns its signed form
func IssueToken(db *gorm.DB, subject string) (string, *models.APIToken, error) {
	if subject == "" {
		return "", nil, errors.New("subject cannot be empty")
	}

	id, err := NewTokenID()
	if err != nil {
		return "", nil, err
	}

	token := &models.APIToken{
		TokenID:   id,
		Subject:   subject,
		ExpiresAt: time.Now().Add(tokenExpiry()),
	}
	if err := db.Create(token).Error; err != nil {
		return "", nil, fmt.Errorf("failed to record token: %w", err)
	}

	signed, err := GenerateToken(token)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, token, nil
}

// RevokeToken marks a token unusable
func RevokeToken(db *gorm.DB, tokenID string) error {
	result := db.Model(&models.APIToken{}).Where("token_id = ?", tokenID).Update("revoked", true)
	if result.Error != nil {
		return fmt.Errorf("failed to revoke token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("token not found: %s", tokenID)
	}
	return nil
}

// ValidateToken parses and validates a JWT token
func ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(getJWTSecret()), nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ListTokens returns every recorded token, newest first
func ListTokens(db *gorm.DB) ([]models.APIToken, error) {
	var tokens []models.APIToken
	if err := db.Order("created_at desc, id desc").Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}
