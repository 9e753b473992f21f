// SPDX-License-Identifier: MIT
package library

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/thatcatcamp/autotheme/internal/codec"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/models"
	"github.com/thatcatcamp/autotheme/internal/themes"
	"gorm.io/gorm"
)

var (
	// ErrThemeExists is returned when saving under a name already in use
	ErrThemeExists = errors.New("theme already exists")
	// ErrThemeNotFound is returned for unknown names
	ErrThemeNotFound = errors.New("theme not found")
	// ErrInvalidName is returned for names that are not URL safe
	ErrInvalidName = errors.New("invalid theme name")
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}$`)

// SaveRequest describes a theme to generate and store
type SaveRequest struct {
	Name      string
	BaseColor string
	Options   themes.Options
	DarkMode  bool
	Escape    rune
	Version   codec.Version
	CreatedBy string
}

// ValidateName checks a theme name is lowercase letters, digits and dashes
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (use lowercase letters, digits and dashes)", ErrInvalidName, name)
	}
	return nil
}

// SaveTheme generates the theme described by req and stores it in serialized form
func SaveTheme(db *gorm.DB, req SaveRequest) (*models.SavedTheme, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}

	// Check if name already exists
	var existing models.SavedTheme
	result := db.Where("name = ?", req.Name).First(&existing)
	if result.Error == nil {
		return nil, fmt.Errorf("%w: %s", ErrThemeExists, req.Name)
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check theme name: %w", result.Error)
	}

	escape := req.Escape
	if escape == 0 {
		escape = codec.DefaultEscape
	}

	theme := themes.GenerateWithOptions(req.BaseColor, req.Options)
	encoded, err := codec.Serialize(theme, codec.WithEscape(escape), codec.WithVersion(req.Version))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize theme: %w", err)
	}

	// A soft deleted row still holds the unique name
	if err := db.Unscoped().Where("name = ? AND deleted_at IS NOT NULL", req.Name).Delete(&models.SavedTheme{}).Error; err != nil {
		return nil, fmt.Errorf("failed to purge deleted theme: %w", err)
	}

	saved := &models.SavedTheme{
		Name:      req.Name,
		BaseColor: req.BaseColor,
		InputType: req.Options.Input.String(),
		ColorType: req.Options.Output.String(),
		MinShade:  int(req.Options.Min),
		MaxShade:  int(req.Options.Max),
		DarkMode:  req.DarkMode,
		Encoded:   encoded,
		Escape:    string(escape),
		CreatedBy: req.CreatedBy,
	}

	if err := db.Create(saved).Error; err != nil {
		return nil, fmt.Errorf("failed to save theme: %w", err)
	}

	return saved, nil
}

// GetTheme retrieves a saved theme by name
func GetTheme(db *gorm.DB, name string) (*models.SavedTheme, error) {
	var saved models.SavedTheme
	result := db.Where("name = ?", name).First(&saved)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
		}
		return nil, fmt.Errorf("failed to load theme: %w", result.Error)
	}
	return &saved, nil
}

// ListThemes returns all saved themes ordered by name
func ListThemes(db *gorm.DB) ([]models.SavedTheme, error) {
	var saved []models.SavedTheme
	if err := db.Order("name").Find(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return saved, nil
}

// DeleteTheme removes a saved theme
func DeleteTheme(db *gorm.DB, name string) error {
	result := db.Where("name = ?", name).Delete(&models.SavedTheme{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete theme: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return nil
}

// Load decodes the stored text back into a theme
func Load(saved *models.SavedTheme) (*themes.Theme, error) {
	escape, err := codec.EscapeFromString(saved.Escape)
	if err != nil {
		return nil, err
	}
	doc, err := codec.Deserialize(saved.Encoded, codec.WithEscape(escape))
	if err != nil {
		return nil, fmt.Errorf("failed to decode theme %s: %w", saved.Name, err)
	}
	theme, err := themes.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild theme %s: %w", saved.Name, err)
	}
	return theme, nil
}

// Input returns the base color of a saved theme as a typed value
func Input(saved *models.SavedTheme) color.Value {
	return color.Value{Format: color.Format(saved.InputType), Text: saved.BaseColor}
}
