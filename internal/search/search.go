// SPDX-License-Identifier: MIT

// Package search finds saved themes by name and by how close their base color
// is to a query color.
package search

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/library"
	"github.com/thatcatcamp/autotheme/internal/models"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Query selects saved themes. An empty Color keeps name order, otherwise
// results are ranked by perceptual distance to it.
type Query struct {
	Text   string       // name substring, case insensitive
	Color  string       // optional color to rank by
	Format color.Format // format of Color
	Limit  int
}

// SearchResult represents a single search result
type SearchResult struct {
	Name      string  `json:"name"`
	BaseColor string  `json:"base_color"`
	ColorType string  `json:"color_type"`
	Distance  float64 `json:"distance"` // CIEDE2000, 0 is identical; -1 when unranked
	URL       string  `json:"url"`
}

// Search runs q against the library
func Search(db *gorm.DB, q Query) ([]SearchResult, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	tx := db.Model(&models.SavedTheme{}).Order("name")
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		tx = tx.Where("LOWER(name) LIKE ? ESCAPE '!'", "%"+escapeLike(text)+"%")
	}
	var saved []models.SavedTheme
	if err := tx.Find(&saved).Error; err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}

	results := make([]SearchResult, 0, len(saved))
	for _, t := range saved {
		results = append(results, SearchResult{
			Name:      t.Name,
			BaseColor: t.BaseColor,
			ColorType: t.ColorType,
			Distance:  -1,
			URL:       "/api/themes/" + t.Name,
		})
	}

	if q.Color != "" {
		target := toColorful(color.Parse(q.Color, q.Format))
		for i := range results {
			base := toColorful(library.Input(&saved[i]).Canonical())
			results[i].Distance = round4(target.DistanceCIEDE2000(base))
		}
		// Name order is kept for equal distances
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Distance < results[j].Distance
		})
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func toColorful(c color.OKLCH) colorful.Color {
	rgb := color.ToSRGB(c)
	return colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}
}

func round4(f float64) float64 {
	return math.Round(f*1e4) / 1e4
}

// escapeLike makes user text literal inside a LIKE pattern. The escape
// character is '!' since sqlite has no default one.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
