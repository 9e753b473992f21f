// SPDX-License-Identifier: MIT
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/autotheme/internal/auth"
	"github.com/thatcatcamp/autotheme/internal/middleware"
)

// RouterConfig holds the server settings the routes depend on
type RouterConfig struct {
	RateLimit    int // requests per RateInterval per client, 0 disables
	RateInterval time.Duration
	Blocklist    []string
	Allowlist    []string
	HSTS         bool
	Logger       zerolog.Logger
}

// NewRouter wires middleware and every route. The returned stop function
// releases the rate limiter.
func NewRouter(cfg RouterConfig) (*gin.Engine, func()) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.SecurityHeadersMiddleware(cfg.HSTS))
	r.Use(middleware.IPFilterMiddleware(cfg.Blocklist, cfg.Allowlist))

	stop := func() {}
	if cfg.RateLimit > 0 {
		interval := cfg.RateInterval
		if interval <= 0 {
			interval = time.Minute
		}
		limiter := middleware.NewRateLimiter(cfg.RateLimit, interval)
		r.Use(middleware.RateLimitMiddleware(limiter, "/api/", "/theme.css", "/preview", "/themes/"))
		stop = limiter.Stop
	}

	r.GET("/health", HealthHandler)
	r.GET("/theme.css", ThemeCSSHandler)
	r.GET("/preview", PreviewPageHandler)
	r.GET("/themes/:name", SavedPreviewPageHandler)

	api := r.Group("/api")
	{
		api.GET("/theme", ThemeHandler)
		api.GET("/theme/encoded", EncodedThemeHandler)
		api.POST("/decode", DecodeHandler)
		api.GET("/convert", ConvertHandler)
		api.GET("/presets", PresetsHandler)

		api.GET("/search", SearchHandler)
		api.GET("/themes", ListThemesHandler)
		api.GET("/themes/:name", GetThemeHandler)
		api.GET("/themes/:name/css", SavedThemeCSSHandler)

		write := api.Group("", auth.RequireToken())
		write.POST("/themes", CreateThemeHandler)
		write.DELETE("/themes/:name", DeleteThemeHandler)
	}

	return r, stop
}
