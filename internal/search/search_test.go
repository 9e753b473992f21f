// SPDX-License-Identifier: MIT
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/db"
	"github.com/thatcatcamp/autotheme/internal/library"
	"github.com/thatcatcamp/autotheme/internal/themes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	seed := []struct {
		name, base string
		in         color.Format
	}{
		{"brand-purple", "#a855f7", color.Hex},
		{"ocean", "#14b8a6", color.Hex},
		{"sunset", "rgb(245, 158, 11)", color.RGB},
		{"purple-dark", "#7e22ce", color.Hex},
	}
	for _, s := range seed {
		opts := themes.DefaultOptions()
		opts.Input = s.in
		_, err := library.SaveTheme(database, library.SaveRequest{Name: s.name, BaseColor: s.base, Options: opts})
		require.NoError(t, err)
	}
	return database
}

func names(results []SearchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}

func TestSearchByName(t *testing.T) {
	database := setupTestDB(t)

	results, err := Search(database, Query{Text: "PURPLE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"brand-purple", "purple-dark"}, names(results))
	assert.Equal(t, -1.0, results[0].Distance)
	assert.Equal(t, "/api/themes/brand-purple", results[0].URL)
}

func TestSearchEmptyQueryListsAll(t *testing.T) {
	database := setupTestDB(t)

	results, err := Search(database, Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"brand-purple", "ocean", "purple-dark", "sunset"}, names(results))
}

func TestSearchByColor(t *testing.T) {
	database := setupTestDB(t)

	results, err := Search(database, Query{Color: "#a855f7", Format: color.Hex})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "brand-purple", results[0].Name)
	assert.InDelta(t, 0, results[0].Distance, 1e-4)
	assert.Equal(t, "purple-dark", results[1].Name)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Distance, results[i].Distance)
	}
}

func TestSearchByColorUsesStoredInputFormat(t *testing.T) {
	database := setupTestDB(t)

	results, err := Search(database, Query{Color: "#f59e0b", Format: color.Hex, Limit: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "sunset", results[0].Name)
	assert.InDelta(t, 0, results[0].Distance, 1e-3)
}

func TestSearchLimit(t *testing.T) {
	database := setupTestDB(t)

	results, err := Search(database, Query{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = Search(database, Query{Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestSearchEscapesWildcards(t *testing.T) {
	database := setupTestDB(t)

	results, err := Search(database, Query{Text: "%"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "a!%b!_c!!d", escapeLike("a%b_c!d"))
}
