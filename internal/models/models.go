// SPDX-License-Identifier: MIT
package models

import (
	"time"

	"gorm.io/gorm"
)

// SavedTheme is a named theme kept in the library. The palettes themselves
// are stored in serialized form so a row can be decoded without
// regenerating.
type SavedTheme struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"uniqueIndex;not null"`
	BaseColor string         `gorm:"not null"`          // as given, in InputType
	InputType string         `gorm:"default:hex"`       // "hex", "rgb", "hsl", "oklab", "oklch"
	ColorType string         `gorm:"default:hex"`       // output format of every stored color
	MinShade  int            `gorm:"default:50"`
	MaxShade  int            `gorm:"default:900"`
	DarkMode  bool           `gorm:"default:false"`
	Encoded   string         `gorm:"type:text;not null"` // serialized theme text
	Escape    string         `gorm:"size:4;default:|"`   // delimiter Encoded was written with
	CreatedBy string         // token subject that saved it
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// APIToken records an issued API token so it can be revoked
type APIToken struct {
	ID        uint   `gorm:"primaryKey"`
	TokenID   string `gorm:"uniqueIndex;not null"` // jti claim
	Subject   string `gorm:"not null"`
	Revoked   bool   `gorm:"default:false"`
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides for consistent naming
func (SavedTheme) TableName() string {
	return "saved_themes"
}

func (APIToken) TableName() string {
	return "api_tokens"
}
