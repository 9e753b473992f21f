// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/config"
	"github.com/thatcatcamp/autotheme/internal/db"
	"github.com/thatcatcamp/autotheme/internal/search"
)

// SearchHandler finds saved themes by name (q) and ranks them by distance
// to an optional color
func SearchHandler(c *gin.Context) {
	q := search.Query{
		Text:  c.Query("q"),
		Color: c.Query("color"),
	}

	if q.Color != "" {
		in := c.DefaultQuery("in", config.GetString("theme.input_format"))
		if in == "" {
			in = color.Hex.String()
		}
		format, err := color.ParseFormat(in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		q.Format = format
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		q.Limit = limit
	}

	results, err := search.Search(db.GetDB(), q)
	if err != nil {
		log.Error().Err(err).Msg("Theme search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}
