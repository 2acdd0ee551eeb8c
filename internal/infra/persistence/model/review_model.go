package model

import "time"

// ReviewModel is the GORM-specific struct for the 'reviews' table. Reviews
// hang off bookings; the sitter association goes through the booking row.
type ReviewModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	BookingID    int64  `gorm:"not null;index"`
	ReviewerName string `gorm:"type:varchar(255);not null"`
	Rating       int    `gorm:"not null"`
	Comment      string `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
