// SPDX-License-Identifier: MIT

// Package backup exports the theme library to files and restores it.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thatcatcamp/autotheme/internal/library"
	"github.com/thatcatcamp/autotheme/internal/models"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// FormatVersion is written into every export file
const FormatVersion = 1

const filePrefix = "themes-"

// Export is the on-disk form of a library snapshot
type Export struct {
	Version   int           `yaml:"version"`
	CreatedAt time.Time     `yaml:"created_at"`
	Themes    []ExportTheme `yaml:"themes"`
}

// ExportTheme is one saved theme. Encoded is kept so a restore does not
// regenerate anything.
type ExportTheme struct {
	Name      string `yaml:"name"`
	BaseColor string `yaml:"base_color"`
	InputType string `yaml:"input_type"`
	ColorType string `yaml:"color_type"`
	MinShade  int    `yaml:"min_shade"`
	MaxShade  int    `yaml:"max_shade"`
	DarkMode  bool   `yaml:"dark_mode"`
	Escape    string `yaml:"escape"`
	Encoded   string `yaml:"encoded"`
	CreatedBy string `yaml:"created_by,omitempty"`
}

// BackupManager writes and prunes library exports in one directory
type BackupManager struct {
	BackupPath string // /var/lib/autotheme/backups/
	Keep       int    // exports to keep, 0 keeps all
	db         *gorm.DB
}

// NewBackupManager creates a new backup manager
func NewBackupManager(db *gorm.DB, backupPath string) *BackupManager {
	return &BackupManager{
		BackupPath: backupPath,
		Keep:       10,
		db:         db,
	}
}

// Snapshot reads every saved theme into an Export
func Snapshot(db *gorm.DB) (*Export, error) {
	saved, err := library.ListThemes(db)
	if err != nil {
		return nil, err
	}

	exp := &Export{Version: FormatVersion, CreatedAt: time.Now().UTC(), Themes: make([]ExportTheme, 0, len(saved))}
	for _, t := range saved {
		exp.Themes = append(exp.Themes, ExportTheme{
			Name:      t.Name,
			BaseColor: t.BaseColor,
			InputType: t.InputType,
			ColorType: t.ColorType,
			MinShade:  t.MinShade,
			MaxShade:  t.MaxShade,
			DarkMode:  t.DarkMode,
			Escape:    t.Escape,
			Encoded:   t.Encoded,
			CreatedBy: t.CreatedBy,
		})
	}
	return exp, nil
}

// WriteFile writes exp as YAML
func WriteFile(path string, exp *Export) error {
	data, err := yaml.Marshal(exp)
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ReadFile loads an export written by WriteFile
func ReadFile(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}
	var exp Export
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}
	if exp.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported export version %d", exp.Version)
	}
	return &exp, nil
}

// CreateBackup writes a timestamped export into BackupPath and prunes old
// ones. It returns the file name.
func (m *BackupManager) CreateBackup(now time.Time) (string, error) {
	if err := os.MkdirAll(m.BackupPath, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	exp, err := Snapshot(m.db)
	if err != nil {
		return "", err
	}
	exp.CreatedAt = now.UTC()

	// Format: themes-2025-12-25-143022.yaml
	filename := filePrefix + now.UTC().Format("2006-01-02-150405") + ".yaml"
	if err := WriteFile(filepath.Join(m.BackupPath, filename), exp); err != nil {
		return "", err
	}

	if err := m.prune(); err != nil {
		return filename, err
	}
	return filename, nil
}

// List returns export file names, oldest first
func (m *BackupManager) List() ([]string, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), filePrefix) && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, e.Name())
		}
	}
	// Timestamped names sort chronologically
	sort.Strings(names)
	return names, nil
}

func (m *BackupManager) prune() error {
	if m.Keep <= 0 {
		return nil
	}
	names, err := m.List()
	if err != nil {
		return err
	}
	for len(names) > m.Keep {
		if err := os.Remove(filepath.Join(m.BackupPath, names[0])); err != nil {
			return fmt.Errorf("failed to remove old backup: %w", err)
		}
		names = names[1:]
	}
	return nil
}

// RestoreResult counts what Restore did
type RestoreResult struct {
	Created  int
	Replaced int
	Skipped  int
}

// Restore writes exported themes back into the library. Existing names are
// skipped unless replace is set. Every entry must decode before anything is
// written.
func Restore(db *gorm.DB, exp *Export, replace bool) (RestoreResult, error) {
	var res RestoreResult
	for _, t := range exp.Themes {
		if err := library.ValidateName(t.Name); err != nil {
			return res, err
		}
		if _, err := library.Load(t.model()); err != nil {
			return res, err
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, t := range exp.Themes {
			_, err := library.GetTheme(tx, t.Name)
			switch {
			case err == nil && !replace:
				res.Skipped++
				continue
			case err == nil:
				if err := tx.Unscoped().Where("name = ?", t.Name).Delete(&models.SavedTheme{}).Error; err != nil {
					return fmt.Errorf("failed to replace theme %s: %w", t.Name, err)
				}
				res.Replaced++
			case errors.Is(err, library.ErrThemeNotFound):
				// Soft deleted rows still hold the name
				if err := tx.Unscoped().Where("name = ?", t.Name).Delete(&models.SavedTheme{}).Error; err != nil {
					return fmt.Errorf("failed to purge theme %s: %w", t.Name, err)
				}
				res.Created++
			default:
				return err
			}

			if err := tx.Create(t.model()).Error; err != nil {
				return fmt.Errorf("failed to restore theme %s: %w", t.Name, err)
			}
		}
		return nil
	})
	return res, err
}

func (t ExportTheme) model() *models.SavedTheme {
	return &models.SavedTheme{
		Name:      t.Name,
		BaseColor: t.BaseColor,
		InputType: t.InputType,
		ColorType: t.ColorType,
		MinShade:  t.MinShade,
		MaxShade:  t.MaxShade,
		DarkMode:  t.DarkMode,
		Escape:    t.Escape,
		Encoded:   t.Encoded,
		CreatedBy: t.CreatedBy,
	}
}
