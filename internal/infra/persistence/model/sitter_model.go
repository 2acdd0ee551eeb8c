// Package model contains the GORM-specific structs mapping to database tables.
package model

import "time"

// SitterModel is the GORM-specific struct for the 'sitters' table.
type SitterModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	UserID          int64   `gorm:"not null;index"`
	Name            string  `gorm:"type:varchar(255);not null"`
	ExperienceYears int     `gorm:"not null;default:0"`
	Personality     string  `gorm:"type:text"`
	Subscription    string  `gorm:"type:varchar(100);not null"`
	Latitude        float64 `gorm:"type:decimal(10,8);not null"`
	Longitude       float64 `gorm:"type:decimal(11,8);not null"`
	Employee        bool    `gorm:"not null;default:false"`
	Certifications  string  `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SitterModel) TableName() string {
	return "sitters"
}

// SitterPhotoModel is the GORM-specific struct for the 'sitter_photos' table.
type SitterPhotoModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	SitterID int64  `gorm:"not null;index"`
	URL      string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SitterPhotoModel) TableName() string {
	return "sitter_photos"
}

// SitterSpeciesModel is the GORM-specific struct for the 'sitter_species'
// join table. Rows exist only for staff-tier employee sitters.
type SitterSpeciesModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	SitterID int64  `gorm:"not null;index"`
	Species  string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SitterSpeciesModel) TableName() string {
	return "sitter_species"
}
