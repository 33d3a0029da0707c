package app

import (
	"testing"
	"time"

	"eventhub/internal/domain"
)

func dayUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFilterEvents(t *testing.T) {
	t.Parallel()

	events := []domain.Event{
		{
			Title:       "Summer Tech Conference 2024",
			Description: "The biggest tech conference of the year.",
			Type:        domain.EventTypePublic,
			Location:    domain.Location{Address: "Convention Center, San Francisco, CA"},
		},
		{
			Title:    "Team Building Workshop",
			Type:     domain.EventTypePrivate,
			Location: domain.Location{Address: "Central Park, New York, NY"},
		},
		{
			Title: "Product Launch Party",
			Type:  domain.EventTypeRSVPOnly,
		},
	}

	tests := []struct {
		name       string
		typeFilter string
		query      string
		wantTitles []string
	}{
		{
			name:       "no filters keeps everything",
			typeFilter: TypeFilterAll,
			wantTitles: []string{"Summer Tech Conference 2024", "Team Building Workshop", "Product Launch Party"},
		},
		{
			name:       "empty type filter keeps everything",
			wantTitles: []string{"Summer Tech Conference 2024", "Team Building Workshop", "Product Launch Party"},
		},
		{
			name:       "type filter",
			typeFilter: "private",
			wantTitles: []string{"Team Building Workshop"},
		},
		{
			name:       "search matches title case-insensitively",
			query:      "tech",
			wantTitles: []string{"Summer Tech Conference 2024"},
		},
		{
			name:       "search matches location address",
			query:      "new york",
			wantTitles: []string{"Team Building Workshop"},
		},
		{
			name:       "search excludes unrelated titles",
			query:      "gala",
			wantTitles: []string{},
		},
		{
			name:       "type and search combine",
			typeFilter: "public",
			query:      "tech",
			wantTitles: []string{"Summer Tech Conference 2024"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterEvents(events, tc.typeFilter, tc.query)
			if len(got) != len(tc.wantTitles) {
				t.Fatalf("expected %d events, got %d", len(tc.wantTitles), len(got))
			}
			for i, event := range got {
				if event.Title != tc.wantTitles[i] {
					t.Fatalf("expected %q at %d, got %q", tc.wantTitles[i], i, event.Title)
				}
			}
		})
	}
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	today := dayUTC(2024, 7, 1)

	tests := []struct {
		name   string
		date   time.Time
		status domain.EventStatus
		want   Bucket
	}{
		{
			name:   "future upcoming event",
			date:   dayUTC(2024, 7, 15),
			status: domain.EventStatusUpcoming,
			want:   BucketUpcoming,
		},
		{
			name:   "ongoing wins regardless of date",
			date:   dayUTC(2024, 1, 1),
			status: domain.EventStatusOngoing,
			want:   BucketOngoing,
		},
		{
			name:   "past date",
			date:   dayUTC(2024, 6, 20),
			status: domain.EventStatusUpcoming,
			want:   BucketPast,
		},
		{
			name:   "completed with future date",
			date:   dayUTC(2024, 8, 1),
			status: domain.EventStatusCompleted,
			want:   BucketPast,
		},
		{
			name:   "upcoming dated today falls in no bucket",
			date:   dayUTC(2024, 7, 1),
			status: domain.EventStatusUpcoming,
			want:   BucketNone,
		},
		{
			name:   "cancelled with future date falls in no bucket",
			date:   dayUTC(2024, 8, 1),
			status: domain.EventStatusCancelled,
			want:   BucketNone,
		},
		{
			name:   "cancelled with past date is past",
			date:   dayUTC(2024, 6, 1),
			status: domain.EventStatusCancelled,
			want:   BucketPast,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			event := domain.Event{Date: tc.date, Status: tc.status}
			if got := Categorize(event, today); got != tc.want {
				t.Fatalf("expected bucket %d, got %d", tc.want, got)
			}
		})
	}
}

func TestBuildTimeline(t *testing.T) {
	t.Parallel()

	today := dayUTC(2024, 7, 1)

	t.Run("single upcoming event", func(t *testing.T) {
		events := []domain.Event{
			{Title: "Conference", Date: dayUTC(2024, 7, 15), Status: domain.EventStatusUpcoming},
		}

		tl := BuildTimeline(events, TypeFilterAll, "", today)

		if len(tl.Upcoming) != 1 {
			t.Fatalf("expected 1 upcoming event, got %d", len(tl.Upcoming))
		}
		if len(tl.Ongoing) != 0 || len(tl.Past) != 0 {
			t.Fatalf("expected other buckets empty, got %d ongoing, %d past", len(tl.Ongoing), len(tl.Past))
		}
	})

	t.Run("buckets are mutually exclusive", func(t *testing.T) {
		// Ongoing status and a past date would match two rules; the
		// ongoing rule is evaluated first and wins.
		events := []domain.Event{
			{Title: "Hackathon", Date: dayUTC(2024, 6, 1), Status: domain.EventStatusOngoing},
		}

		tl := BuildTimeline(events, TypeFilterAll, "", today)

		if len(tl.Ongoing) != 1 {
			t.Fatalf("expected event in ongoing, got %d", len(tl.Ongoing))
		}
		if len(tl.Past) != 0 {
			t.Fatalf("expected past empty, got %d", len(tl.Past))
		}
	})

	t.Run("preserves collection order within buckets", func(t *testing.T) {
		events := []domain.Event{
			{Title: "Second", Date: dayUTC(2024, 8, 1), Status: domain.EventStatusUpcoming},
			{Title: "First", Date: dayUTC(2024, 7, 10), Status: domain.EventStatusUpcoming},
		}

		tl := BuildTimeline(events, TypeFilterAll, "", today)

		if len(tl.Upcoming) != 2 {
			t.Fatalf("expected 2 upcoming events, got %d", len(tl.Upcoming))
		}
		if tl.Upcoming[0].Title != "Second" || tl.Upcoming[1].Title != "First" {
			t.Fatalf("expected collection order preserved, got %q then %q", tl.Upcoming[0].Title, tl.Upcoming[1].Title)
		}
	})
}

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 7, 1, 15, 42, 7, 123, time.UTC)
	got := StartOfDay(at)
	if !got.Equal(dayUTC(2024, 7, 1)) {
		t.Fatalf("expected midnight, got %v", got)
	}
}
