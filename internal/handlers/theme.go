// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thatcatcamp/autotheme/internal/codec"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/config"
	"github.com/thatcatcamp/autotheme/internal/themes"
)

// maxDecodeBody caps POST /api/decode; a full V2 theme is a few kilobytes
const maxDecodeBody = 64 << 10

// themeRequest is a parsed generation request
type themeRequest struct {
	base    string
	options themes.Options
}

// parseThemeQuery reads color, preset, in, out, min and max. Missing values
// fall back to the theme.* config keys.
func parseThemeQuery(c *gin.Context) (*themeRequest, error) {
	opts, err := themes.ParseOptions(
		c.DefaultQuery("in", config.GetString("theme.input_format")),
		c.DefaultQuery("out", config.GetString("theme.output_format")),
		c.DefaultQuery("min", config.GetString("theme.min_shade")),
		c.DefaultQuery("max", config.GetString("theme.max_shade")),
	)
	if err != nil {
		return nil, err
	}

	base := c.Query("color")
	if name := c.Query("preset"); name != "" {
		preset := themes.GetPreset(name)
		if preset == nil {
			return nil, errors.New("unknown preset: " + name)
		}
		base = preset.Base
		opts.Input = color.Hex
	}
	if base == "" {
		return nil, errors.New("color or preset required")
	}

	if _, ok := color.TryParse(base, opts.Input); !ok {
		log.Warn().Str("color", base).Str("format", opts.Input.String()).Msg("Unparseable color, using neutral gray")
	}
	return &themeRequest{base: base, options: opts}, nil
}

// codecOptions reads escape and version, falling back to the codec.* config keys
func codecOptions(c *gin.Context) ([]codec.Option, error) {
	return codec.ParseOptions(
		c.DefaultQuery("escape", config.GetString("codec.escape")),
		c.DefaultQuery("version", config.GetString("codec.version")),
	)
}

// HealthHandler reports liveness
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ThemeHandler returns a generated theme as JSON
func ThemeHandler(c *gin.Context) {
	req, err := parseThemeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, themes.GenerateWithOptions(req.base, req.options))
}

// EncodedThemeHandler returns a generated theme in serialized text form
func EncodedThemeHandler(c *gin.Context) {
	req, err := parseThemeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opts, err := codecOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := codec.Serialize(themes.GenerateWithOptions(req.base, req.options), opts...)
	if errors.Is(err, codec.ErrUnrepresentable) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize theme")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize theme"})
		return
	}
	c.String(http.StatusOK, text)
}

// ThemeCSSHandler returns the stylesheet for a generated theme
func ThemeCSSHandler(c *gin.Context) {
	req, err := parseThemeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme := themes.GenerateWithOptions(req.base, req.options)
	serveCSS(c, themes.ThemeCSS(theme, c.Query("dark") == "true"))
}

func serveCSS(c *gin.Context, css string) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

// DecodeHandler parses serialized text from the request body. The response
// holds the decoded document and, when it describes a theme, the rebuilt
// theme.
func DecodeHandler(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDecodeBody+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}
	if len(body) > maxDecodeBody {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Body too large"})
		return
	}

	escape, err := codec.EscapeFromString(c.DefaultQuery("escape", config.GetString("codec.escape")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := codec.Deserialize(strings.TrimSpace(string(body)), codec.WithEscape(escape))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"version": doc.Version.String(), "document": doc}
	if theme, err := themes.FromDocument(doc); err == nil {
		resp["theme"] = theme
	} else {
		resp["theme_error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// ConvertHandler converts a single color between formats
func ConvertHandler(c *gin.Context) {
	text := c.Query("color")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "color required"})
		return
	}

	from, err := color.ParseFormat(c.DefaultQuery("from", "hex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := color.ParseFormat(c.DefaultQuery("to", "oklch"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	canonical, ok := color.TryParse(text, from)
	c.JSON(http.StatusOK, gin.H{
		"input":     color.Value{Format: from, Text: text},
		"output":    color.Value{Format: to, Text: color.Render(canonical, to)},
		"canonical": canonical,
		"parsed":    ok,
	})
}

// PresetsHandler lists the named base colors
func PresetsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": themes.ListPresets()})
}
