package notifier

import "context"

// Notifier publishes free-text events describing bookings, updates, and
// deletions to an external event stream.
type Notifier interface {
	Publish(ctx context.Context, message string) error
}
