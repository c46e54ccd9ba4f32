package domain

// BookingStatus represents the status of a booking
//
// The set is an open string enum: the booking backend may introduce new
// statuses (e.g. "upcoming") without a schema change, so unknown values are
// carried through as-is and only matter when matched against a status
// allow-list.
type BookingStatus string

const (
	StatusCompleted BookingStatus = "completed"
	StatusConfirmed BookingStatus = "confirmed"
	StatusActive    BookingStatus = "active"
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a single reservation of a campus resource
//
// StartTime/EndTime are naive local-time timestamps as delivered by the
// booking backend (see pkg/localtime for the parsing rule). They are kept as
// strings: a malformed timestamp must skip only its own booking during
// aggregation, never fail the whole dataset.
type Booking struct {
	ID         string
	ResourceID string
	StartTime  string
	EndTime    string
	Status     BookingStatus
}

// MatchesStatus returns true if the booking status is in the given allow-list
func (b *Booking) MatchesStatus(statuses []BookingStatus) bool {
	for _, s := range statuses {
		if b.Status == s {
			return true
		}
	}
	return false
}
