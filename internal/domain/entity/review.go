package entity

// Review is feedback left by an owner on a booking served by a sitter.
// No reviewer photo is currently available upstream, so none is modelled.
type Review struct {
	ID           int64  // Unique review identifier.
	BookingID    int64  // The booking this review is tied to.
	ReviewerName string // Display name of the reviewer.
	Rating       int    // Rating on the upstream scale (1-5).
	Comment      string // Free-text comment.
}
