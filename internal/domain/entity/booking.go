package entity

import "time"

// Booking is a past or ongoing engagement between an owner and a sitter,
// joined to the names of the pets involved.
type Booking struct {
	ID        int64     // Unique booking identifier.
	SitterID  int64     // The sitter who served this booking.
	StartDate time.Time // First day of the engagement.
	EndDate   time.Time // Last day of the engagement.
	PetNames  []string  // Names of the pets involved.
}
