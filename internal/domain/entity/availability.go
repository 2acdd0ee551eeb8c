package entity

import "time"

// AvailabilitySlot is one (day_of_week, start_time, end_time) tuple belonging
// to exactly one sitter. All three fields are mandatory. No overlap validation
// is performed; the full set for a sitter is replaced atomically on every
// write, so no history is retained.
type AvailabilitySlot struct {
	ID        int64     // Unique slot identifier.
	SitterID  int64     // The sitter this slot belongs to.
	DayOfWeek string    // e.g. "monday".
	StartTime string    // e.g. "09:00".
	EndTime   string    // e.g. "17:30".
	CreatedAt time.Time // Timestamp of when this slot was written.
}
