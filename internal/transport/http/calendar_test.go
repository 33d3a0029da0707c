package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventhub/internal/domain"
)

func TestHandleCalendarExport(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	event := domain.Event{
		ID:          "e1",
		Title:       "Summer Tech Conference 2024",
		Description: "Annual tech gathering",
		Type:        domain.EventTypePublic,
		Location:    domain.Location{Address: "Moscone Center, San Francisco"},
		Date:        time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Time:        "09:00",
		Status:      domain.EventStatusUpcoming,
		UpdatedAt:   now,
	}

	sessions := newTestSessions(t, now, event)

	req := withUser(httptest.NewRequest(http.MethodGet, "/events/e1/calendar.ics", nil), testUser)
	rec := httptest.NewRecorder()

	HandleEventScoped(sessions, &stubReminderService{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("expected text/calendar content type, got %q", ct)
	}

	body := rec.Body.String()
	for _, substr := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:e1",
		"SUMMARY:Summer Tech Conference 2024",
		"DTSTART:20240715T090000Z",
		"LOCATION:Moscone Center",
		"END:VEVENT",
	} {
		if !strings.Contains(body, substr) {
			t.Fatalf("expected calendar to contain %q, got:\n%s", substr, body)
		}
	}
}
