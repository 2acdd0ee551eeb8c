package model

import "time"

// BookingModel is the GORM-specific struct for the 'bookings' table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	SitterID  int64     `gorm:"not null;index"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null"`
	CreatedAt time.Time

	Pets []BookingPetModel `gorm:"foreignKey:BookingID"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

// BookingPetModel is the GORM-specific struct for the 'booking_pets' join
// table linking a booking to the pets involved.
type BookingPetModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	BookingID int64  `gorm:"not null;index"`
	PetName   string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (BookingPetModel) TableName() string {
	return "booking_pets"
}
