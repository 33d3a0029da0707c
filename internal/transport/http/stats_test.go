package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventhub/internal/domain"
)

func TestHandleDashboardStats(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{
			ID:     "e1",
			Title:  "Conference",
			Date:   time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
			Time:   "09:00",
			Status: domain.EventStatusUpcoming,
			Attendees: []domain.Attendee{
				{ID: "a1", Status: domain.AttendeeStatusAttending},
				{ID: "a2", Status: domain.AttendeeStatusAttending},
				{ID: "a3", Status: domain.AttendeeStatusPending},
				{ID: "a4", Status: domain.AttendeeStatusMaybe},
			},
		},
		{
			ID:     "e2",
			Title:  "Retro",
			Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Time:   "10:00",
			Status: domain.EventStatusCompleted,
		},
	}

	sessions := newTestSessions(t, now, events...)

	req := withUser(httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil), testUser)
	rec := httptest.NewRecorder()

	HandleDashboardStats(sessions).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, substr := range []string{`"total_events":2`, `"upcoming_events":1`, `"total_attending":2`, `"response_rate":75`} {
		if !strings.Contains(body, substr) {
			t.Fatalf("expected response to contain %q, got %q", substr, body)
		}
	}
}

func TestHandleDashboardStats_Unauthenticated(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	sessions := newTestSessions(t, now)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	rec := httptest.NewRecorder()

	HandleDashboardStats(sessions).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
