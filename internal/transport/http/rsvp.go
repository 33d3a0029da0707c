package http

import (
	"errors"
	"net/http"

	"eventhub/internal/app"
	"eventhub/internal/domain"
)

type rsvpStatsResponse struct {
	EventID      string `json:"event_id"`
	Total        int    `json:"total"`
	Attending    int    `json:"attending"`
	Maybe        int    `json:"maybe"`
	NotAttending int    `json:"not_attending"`
	Pending      int    `json:"pending"`
	ResponseRate int    `json:"response_rate"`
}

func handleRSVPStats(w http.ResponseWriter, r *http.Request, event domain.Event) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	counts := app.CountAttendees(event)
	writeJSON(w, http.StatusOK, rsvpStatsResponse{
		EventID:      event.ID,
		Total:        counts.Total(),
		Attending:    counts.Attending,
		Maybe:        counts.Maybe,
		NotAttending: counts.NotAttending,
		Pending:      counts.Pending,
		ResponseRate: app.ResponseRate([]domain.Event{event}),
	})
}

type remindersResponse struct {
	Requested int `json:"requested"`
	Sent      int `json:"sent"`
}

// handleBulkReminders sends a reminder to every pending attendee on the
// event. Delivery is best-effort; the response reports how many were
// actually dispatched.
func handleBulkReminders(w http.ResponseWriter, r *http.Request, reminders ReminderService, event domain.Event) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	pending := app.PendingAttendees(event)
	sent := reminders.SendBulkReminders(r.Context(), event, pending)
	writeJSON(w, http.StatusOK, remindersResponse{
		Requested: len(pending),
		Sent:      sent,
	})
}

func handleSingleReminder(w http.ResponseWriter, r *http.Request, reminders ReminderService, event domain.Event, attendeeID string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	if err := reminders.SendReminder(r.Context(), event, attendeeID); err != nil {
		if errors.Is(err, domain.ErrAttendeeNotFound) {
			writeError(w, http.StatusNotFound, codeAttendeeNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
