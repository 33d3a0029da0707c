package app

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"eventhub/internal/domain"
)

// RSVPCounts breaks an event's attendee list down by status. The four
// counters always sum to the number of attendees.
type RSVPCounts struct {
	Attending    int
	Maybe        int
	NotAttending int
	Pending      int
}

func (c RSVPCounts) Total() int {
	return c.Attending + c.Maybe + c.NotAttending + c.Pending
}

// CountAttendees tallies one event's attendees by status.
func CountAttendees(event domain.Event) RSVPCounts {
	var counts RSVPCounts
	for _, attendee := range event.Attendees {
		switch attendee.Status {
		case domain.AttendeeStatusAttending:
			counts.Attending++
		case domain.AttendeeStatusMaybe:
			counts.Maybe++
		case domain.AttendeeStatusNotAttending:
			counts.NotAttending++
		default:
			counts.Pending++
		}
	}
	return counts
}

// ResponseRate is the rounded percentage of invitees across all given
// events that have responded (any status but pending). Zero invitees
// means a rate of 0.
func ResponseRate(events []domain.Event) int {
	var total, responded int
	for _, event := range events {
		for _, attendee := range event.Attendees {
			total++
			if attendee.Status != domain.AttendeeStatusPending {
				responded++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(responded) / float64(total) * 100))
}

// PendingAttendees returns the attendees still waiting on a response,
// the usual reminder targets.
func PendingAttendees(event domain.Event) []domain.Attendee {
	var pending []domain.Attendee
	for _, attendee := range event.Attendees {
		if attendee.Status == domain.AttendeeStatusPending {
			pending = append(pending, attendee)
		}
	}
	return pending
}

// Notifier delivers a single reminder to an attendee. Delivery itself
// is an external collaborator; implementations live in internal/notify.
type Notifier interface {
	SendReminder(ctx context.Context, event domain.Event, attendee domain.Attendee) error
}

// RSVPService dispatches reminder notifications. Sending never changes
// attendee status.
type RSVPService struct {
	notifier Notifier
	logger   zerolog.Logger
}

func NewRSVPService(notifier Notifier, logger zerolog.Logger) *RSVPService {
	return &RSVPService{
		notifier: notifier,
		logger:   logger,
	}
}

// SendReminder delivers one reminder to the attendee with the given id.
func (s *RSVPService) SendReminder(ctx context.Context, event domain.Event, attendeeID string) error {
	for _, attendee := range event.Attendees {
		if attendee.ID == attendeeID {
			return s.notifier.SendReminder(ctx, event, attendee)
		}
	}
	return domain.ErrAttendeeNotFound
}

// SendBulkReminders delivers one reminder per attendee in the list and
// returns how many went out. Failures are logged and skipped; partial
// delivery is acceptable.
func (s *RSVPService) SendBulkReminders(ctx context.Context, event domain.Event, attendees []domain.Attendee) int {
	sent := 0
	for _, attendee := range attendees {
		if err := s.notifier.SendReminder(ctx, event, attendee); err != nil {
			s.logger.Warn().
				Err(err).
				Str("event_id", event.ID).
				Str("attendee_id", attendee.ID).
				Msg("reminder delivery failed")
			continue
		}
		sent++
	}
	return sent
}
