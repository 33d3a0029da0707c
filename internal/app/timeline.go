package app

import (
	"strings"
	"time"

	"eventhub/internal/domain"
)

// TypeFilterAll keeps every event type when filtering the timeline.
const TypeFilterAll = "all"

// Bucket is the timeline category an event lands in.
type Bucket int

const (
	// BucketNone marks events that match no category. An event whose
	// stored status is still upcoming but whose date is today or earlier
	// is intentionally left here rather than forced into past.
	BucketNone Bucket = iota
	BucketOngoing
	BucketUpcoming
	BucketPast
)

// FilterEvents narrows events by type and by a case-insensitive
// substring search over title, description, and location address.
func FilterEvents(events []domain.Event, typeFilter string, query string) []domain.Event {
	filtered := events

	if typeFilter != "" && typeFilter != TypeFilterAll {
		kept := make([]domain.Event, 0, len(filtered))
		for _, event := range filtered {
			if event.Type == domain.EventType(typeFilter) {
				kept = append(kept, event)
			}
		}
		filtered = kept
	}

	if query != "" {
		q := strings.ToLower(query)
		kept := make([]domain.Event, 0, len(filtered))
		for _, event := range filtered {
			if strings.Contains(strings.ToLower(event.Title), q) ||
				strings.Contains(strings.ToLower(event.Description), q) ||
				strings.Contains(strings.ToLower(event.Location.Address), q) {
				kept = append(kept, event)
			}
		}
		filtered = kept
	}

	return filtered
}

// Categorize places one event in a bucket relative to today (start of
// day). Rules apply in order: ongoing status wins, then a strictly
// future date with upcoming status, then a past date or completed
// status. Everything else is BucketNone.
func Categorize(event domain.Event, today time.Time) Bucket {
	switch {
	case event.Status == domain.EventStatusOngoing:
		return BucketOngoing
	case event.Date.After(today) && event.Status == domain.EventStatusUpcoming:
		return BucketUpcoming
	case event.Date.Before(today) || event.Status == domain.EventStatusCompleted:
		return BucketPast
	}
	return BucketNone
}

// Timeline is the categorized view of a filtered event collection,
// each bucket preserving collection order.
type Timeline struct {
	Ongoing  []domain.Event
	Upcoming []domain.Event
	Past     []domain.Event
}

// BuildTimeline filters the collection and splits the result into the
// three display buckets.
func BuildTimeline(events []domain.Event, typeFilter, query string, today time.Time) Timeline {
	var tl Timeline
	for _, event := range FilterEvents(events, typeFilter, query) {
		switch Categorize(event, today) {
		case BucketOngoing:
			tl.Ongoing = append(tl.Ongoing, event)
		case BucketUpcoming:
			tl.Upcoming = append(tl.Upcoming, event)
		case BucketPast:
			tl.Past = append(tl.Past, event)
		}
	}
	return tl
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
