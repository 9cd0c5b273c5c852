package booking

import (
	"github.com/rbpdev/movie-booking-system/internal/domain"
)

// SeatsTaken flattens the seat sequences of the given bookings into a set.
// Callers pass the tickets of a single (movie, theatre) pair.
func SeatsTaken(tickets []*domain.Ticket) map[string]struct{} {
	taken := make(map[string]struct{})

	for _, ticket := range tickets {
		for _, seat := range ticket.Seats {
			taken[seat] = struct{}{}
		}
	}

	return taken
}

// SeatConflicts returns the requested seats that are already claimed by an
// existing booking, in the order they were requested. An empty result means
// the request is conflict-free. Conflicts are reported as data; the caller
// decides whether they are an error.
func SeatConflicts(tickets []*domain.Ticket, requested []string) []string {
	taken := SeatsTaken(tickets)

	var conflicts []string

	for _, seat := range requested {
		if _, ok := taken[seat]; ok {
			conflicts = append(conflicts, seat)
		}
	}

	return conflicts
}
