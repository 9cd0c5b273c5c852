package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/rbpdev/movie-booking-system/internal/notifier"
)

const publishTimeout = 5 * time.Second

// publishAsync emits an event without blocking the request path. The event
// stream is a best-effort side channel, never a correctness dependency;
// failures are logged and swallowed.
func publishAsync(logger *slog.Logger, n notifier.Notifier, message string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic occurred during event publish", "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		err := n.Publish(ctx, message)
		if err != nil {
			logger.Error("failed to publish event", "error", err)
		}
	}()
}
