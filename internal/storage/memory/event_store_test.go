package memory

import (
	"errors"
	"testing"
	"time"

	"eventhub/internal/domain"
)

func validEvent(id, title string) domain.Event {
	return domain.Event{
		ID:    id,
		Title: title,
		Date:  time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Time:  "09:00",
	}
}

func TestEventStore_Create(t *testing.T) {
	t.Parallel()

	t.Run("newest event comes first", func(t *testing.T) {
		store := NewEventStore()
		for _, e := range []domain.Event{
			validEvent("e1", "First"),
			validEvent("e2", "Second"),
			validEvent("e3", "Third"),
		} {
			if err := store.Create(e); err != nil {
				t.Fatalf("create %s: %v", e.ID, err)
			}
		}

		all := store.All()
		if len(all) != 3 {
			t.Fatalf("expected 3 events, got %d", len(all))
		}
		for i, want := range []string{"e3", "e2", "e1"} {
			if all[i].ID != want {
				t.Fatalf("position %d: expected %s, got %s", i, want, all[i].ID)
			}
		}
	})

	t.Run("rejects incomplete events", func(t *testing.T) {
		tests := []struct {
			name    string
			event   domain.Event
			wantErr error
		}{
			{
				name:    "missing title",
				event:   domain.Event{ID: "e1", Date: time.Now(), Time: "09:00"},
				wantErr: domain.ErrTitleRequired,
			},
			{
				name:    "missing date",
				event:   domain.Event{ID: "e1", Title: "Party", Time: "09:00"},
				wantErr: domain.ErrDateRequired,
			},
			{
				name:    "missing time",
				event:   domain.Event{ID: "e1", Title: "Party", Date: time.Now()},
				wantErr: domain.ErrTimeRequired,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				store := NewEventStore()
				if err := store.Create(tc.event); !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if store.Len() != 0 {
					t.Fatalf("expected store to stay empty")
				}
			})
		}
	})
}

func TestEventStore_Get(t *testing.T) {
	t.Parallel()

	store := NewEventStore()
	if err := store.Create(validEvent("e1", "Party")); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		event, err := store.Get("e1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if event.Title != "Party" {
			t.Fatalf("expected Party, got %q", event.Title)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := store.Get("missing"); !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})
}

func TestEventStore_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewEventStore()
	if err := store.Create(validEvent("e1", "Party")); err != nil {
		t.Fatalf("create: %v", err)
	}

	all := store.All()
	all[0].Title = "Mutated"

	again, err := store.Get("e1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Title != "Party" {
		t.Fatalf("mutating the returned slice leaked into the store")
	}
}
