// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thatcatcamp/autotheme/internal/codec"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/config"
	"github.com/thatcatcamp/autotheme/internal/db"
	"github.com/thatcatcamp/autotheme/internal/library"
	"github.com/thatcatcamp/autotheme/internal/models"
	"github.com/thatcatcamp/autotheme/internal/themes"
)

// savedThemeSummary is the list view of a library entry
type savedThemeSummary struct {
	Name      string    `json:"name"`
	BaseColor string    `json:"baseColor"`
	InputType string    `json:"inputType"`
	ColorType string    `json:"colorType"`
	MinShade  int       `json:"minShade"`
	MaxShade  int       `json:"maxShade"`
	DarkMode  bool      `json:"darkMode"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func summarize(saved *models.SavedTheme) savedThemeSummary {
	return savedThemeSummary{
		Name:      saved.Name,
		BaseColor: saved.BaseColor,
		InputType: saved.InputType,
		ColorType: saved.ColorType,
		MinShade:  saved.MinShade,
		MaxShade:  saved.MaxShade,
		DarkMode:  saved.DarkMode,
		CreatedBy: saved.CreatedBy,
		CreatedAt: saved.CreatedAt,
	}
}

// createThemeRequest is the body of POST /api/themes
type createThemeRequest struct {
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color"`
	Preset   string `json:"preset"`
	In       string `json:"in"`
	Out      string `json:"out"`
	Min      string `json:"min"`
	Max      string `json:"max"`
	DarkMode bool   `json:"dark"`
}

// ListThemesHandler lists the saved themes
func ListThemesHandler(c *gin.Context) {
	saved, err := library.ListThemes(db.GetDB())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list themes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list themes"})
		return
	}

	out := make([]savedThemeSummary, 0, len(saved))
	for i := range saved {
		out = append(out, summarize(&saved[i]))
	}
	c.JSON(http.StatusOK, gin.H{"themes": out})
}

// loadSaved fetches and decodes a library theme, writing the error response
// itself when that fails
func loadSaved(c *gin.Context) (*models.SavedTheme, *themes.Theme, bool) {
	saved, err := library.GetTheme(db.GetDB(), c.Param("name"))
	if err != nil {
		if errors.Is(err, library.ErrThemeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
		} else {
			log.Error().Err(err).Msg("Failed to load theme")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load theme"})
		}
		return nil, nil, false
	}

	theme, err := library.Load(saved)
	if err != nil {
		log.Error().Err(err).Str("theme", saved.Name).Msg("Stored theme does not decode")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored theme is corrupt"})
		return nil, nil, false
	}
	return saved, theme, true
}

// GetThemeHandler returns a saved theme with its palettes
func GetThemeHandler(c *gin.Context) {
	saved, theme, ok := loadSaved(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"meta":    summarize(saved),
		"theme":   theme,
		"encoded": saved.Encoded,
	})
}

// SavedThemeCSSHandler returns the stylesheet of a saved theme. The dark
// query parameter overrides the stored mode.
func SavedThemeCSSHandler(c *gin.Context) {
	saved, theme, ok := loadSaved(c)
	if !ok {
		return
	}
	dark := saved.DarkMode
	if v := c.Query("dark"); v != "" {
		dark = v == "true"
	}
	serveCSS(c, themes.ThemeCSS(theme, dark))
}

// CreateThemeHandler generates and stores a theme
func CreateThemeHandler(c *gin.Context) {
	var req createThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	opts, err := themes.ParseOptions(
		firstNonEmpty(req.In, config.GetString("theme.input_format")),
		firstNonEmpty(req.Out, config.GetString("theme.output_format")),
		firstNonEmpty(req.Min, config.GetString("theme.min_shade")),
		firstNonEmpty(req.Max, config.GetString("theme.max_shade")),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	base := req.Color
	if req.Preset != "" {
		preset := themes.GetPreset(req.Preset)
		if preset == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown preset: " + req.Preset})
			return
		}
		base = preset.Base
		opts.Input = color.Hex
	}
	if base == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "color or preset required"})
		return
	}

	escape, err := codec.EscapeFromString(config.GetString("codec.escape"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid codec.escape setting"})
		return
	}
	version, err := codec.ParseVersion(config.GetString("codec.version"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid codec.version setting"})
		return
	}

	saved, err := library.SaveTheme(db.GetDB(), library.SaveRequest{
		Name:      req.Name,
		BaseColor: base,
		Options:   opts,
		DarkMode:  req.DarkMode,
		Escape:    escape,
		Version:   version,
		CreatedBy: c.GetString("token_subject"),
	})
	switch {
	case errors.Is(err, library.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, library.ErrThemeExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, codec.ErrUnrepresentable):
		log.Error().Err(err).Msg("codec settings cannot store this theme")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "codec.escape cannot be used with the legacy codec"})
		return
	case err != nil:
		log.Error().Err(err).Msg("Failed to save theme")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}

	log.Info().Str("theme", saved.Name).Str("by", saved.CreatedBy).Msg("Theme saved")
	c.JSON(http.StatusCreated, gin.H{"meta": summarize(saved), "encoded": saved.Encoded})
}

// DeleteThemeHandler removes a saved theme
func DeleteThemeHandler(c *gin.Context) {
	name := c.Param("name")
	if err := library.DeleteTheme(db.GetDB(), name); err != nil {
		if errors.Is(err, library.ErrThemeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to delete theme")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete theme"})
		return
	}

	log.Info().Str("theme", name).Str("by", c.GetString("token_subject")).Msg("Theme deleted")
	c.Status(http.StatusNoContent)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
