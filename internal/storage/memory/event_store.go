package memory

import (
	"sync"

	"eventhub/internal/domain"
)

// EventStore is the in-memory, most-recent-first event collection for
// one session. Events live only for the lifetime of the store; there is
// no update or delete. The mutex is here because the HTTP server may
// touch a session from multiple goroutines, not because the collection
// is shared between sessions.
type EventStore struct {
	mu     sync.RWMutex
	events []domain.Event
}

func NewEventStore() *EventStore {
	return &EventStore{}
}

// Create inserts the event at the front of the collection. The event
// must already carry a title, date, and time; committing an incomplete
// draft is the caller's bug, not a storable state.
func (s *EventStore) Create(event domain.Event) error {
	if event.Title == "" {
		return domain.ErrTitleRequired
	}
	if event.Date.IsZero() {
		return domain.ErrDateRequired
	}
	if event.Time == "" {
		return domain.ErrTimeRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]domain.Event{event}, s.events...)
	return nil
}

// All returns the collection in insertion order, newest first. The
// returned slice is the caller's copy.
func (s *EventStore) All() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Get returns the event with the given id.
func (s *EventStore) Get(id string) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return domain.Event{}, domain.ErrEventNotFound
}

// Len reports how many events the store holds.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
