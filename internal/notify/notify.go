// Package notify implements reminder delivery. The dispatching core
// treats delivery as fire-and-forget; implementations here decide the
// channel.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"eventhub/internal/domain"
)

// LogNotifier records reminders in the log instead of delivering them.
// It stands in when no delivery channel is configured.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendReminder(ctx context.Context, event domain.Event, attendee domain.Attendee) error {
	n.logger.Info().
		Str("event_id", event.ID).
		Str("event_title", event.Title).
		Str("attendee", attendee.Name).
		Str("email", attendee.Email).
		Msg("reminder dispatched")
	return nil
}
