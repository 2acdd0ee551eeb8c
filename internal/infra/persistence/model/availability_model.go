package model

import "time"

// AvailabilitySlotModel is the GORM-specific struct for the
// 'availability_slots' table. The full set for a sitter is replaced
// atomically on every write; no history is retained.
type AvailabilitySlotModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	SitterID  int64  `gorm:"not null;index"`
	DayOfWeek string `gorm:"type:varchar(16);not null"`
	StartTime string `gorm:"type:varchar(8);not null"`
	EndTime   string `gorm:"type:varchar(8);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AvailabilitySlotModel) TableName() string {
	return "availability_slots"
}
