// SPDX-License-Identifier: MIT
package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thatcatcamp/autotheme/internal/db"
	"github.com/thatcatcamp/autotheme/internal/models"
)

// RequireToken middleware validates a bearer API token and checks it has not
// been revoked
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API token required"})
			return
		}

		// Validate token
		claims, err := ValidateToken(strings.TrimSpace(raw))
		if err != nil {
			log.Debug().Err(err).Str("ip", c.ClientIP()).Msg("Rejected API token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API token"})
			return
		}

		if claims.Scope != ScopeWrite {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token scope does not allow this action"})
			return
		}

		// Load token record from database
		var token models.APIToken
		if err := db.GetDB().Where("token_id = ?", claims.ID).First(&token).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown API token"})
			return
		}

		if token.Revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API token has been revoked"})
			return
		}

		// Set subject in context for handlers
		c.Set("token_subject", token.Subject)

		c.Next()
	}
}
