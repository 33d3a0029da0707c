package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"eventhub/internal/app"
	"eventhub/internal/clock"
	"eventhub/internal/domain"
)

const dateLayout = "2006-01-02"

// SessionProvider hands out the per-user session.
type SessionProvider interface {
	Get(userID string) *app.Session
}

// ReminderService dispatches RSVP reminders.
type ReminderService interface {
	SendReminder(ctx context.Context, event domain.Event, attendeeID string) error
	SendBulkReminders(ctx context.Context, event domain.Event, attendees []domain.Attendee) int
}

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type locationResponse struct {
	Address     string               `json:"address"`
	Coordinates *coordinatesResponse `json:"coordinates,omitempty"`
}

type imageResponse struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type attendeeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type eventResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type"`
	Location    locationResponse   `json:"location"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Images      []imageResponse    `json:"images"`
	Organizer   string             `json:"organizer"`
	Attendees   []attendeeResponse `json:"attendees"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func toEventResponse(event domain.Event) eventResponse {
	resp := eventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Type:        string(event.Type),
		Location:    locationResponse{Address: event.Location.Address},
		Date:        event.Date.Format(dateLayout),
		Time:        event.Time,
		Images:      make([]imageResponse, 0, len(event.Images)),
		Organizer:   event.Organizer,
		Attendees:   make([]attendeeResponse, 0, len(event.Attendees)),
		Status:      string(event.Status),
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
	if coords := event.Location.Coordinates; coords != nil {
		resp.Location.Coordinates = &coordinatesResponse{Lat: coords.Lat, Lng: coords.Lng}
	}
	for _, image := range event.Images {
		resp.Images = append(resp.Images, imageResponse{URL: image.URL, Name: image.Name})
	}
	for _, attendee := range event.Attendees {
		resp.Attendees = append(resp.Attendees, attendeeResponse{
			ID:     attendee.ID,
			Name:   attendee.Name,
			Email:  attendee.Email,
			Status: string(attendee.Status),
		})
	}
	return resp
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, toEventResponse(event))
	}
	return out
}

type timelineCounts struct {
	Ongoing  int `json:"ongoing"`
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
}

type timelineResponse struct {
	Ongoing  []eventResponse `json:"ongoing"`
	Upcoming []eventResponse `json:"upcoming"`
	Past     []eventResponse `json:"past"`
	Counts   timelineCounts  `json:"counts"`
}

// HandleTimeline returns the authenticated user's events filtered by
// ?type= and ?q=, categorized into the three timeline buckets.
func HandleTimeline(sessions SessionProvider, clk clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		typeFilter := r.URL.Query().Get("type")
		if typeFilter != "" && typeFilter != app.TypeFilterAll && !domain.ValidEventType(domain.EventType(typeFilter)) {
			writeError(w, http.StatusBadRequest, codeInvalidEventType, domain.ErrInvalidEventType.Error())
			return
		}
		query := r.URL.Query().Get("q")

		events := sessions.Get(user.ID).Events().All()
		today := app.StartOfDay(clk.Now())
		tl := app.BuildTimeline(events, typeFilter, query, today)

		writeJSON(w, http.StatusOK, timelineResponse{
			Ongoing:  toEventResponses(tl.Ongoing),
			Upcoming: toEventResponses(tl.Upcoming),
			Past:     toEventResponses(tl.Past),
			Counts: timelineCounts{
				Ongoing:  len(tl.Ongoing),
				Upcoming: len(tl.Upcoming),
				Past:     len(tl.Past),
			},
		})
	}
}

// HandleEventScoped routes the /events/{id}... subtree: event detail,
// RSVP stats, reminder dispatch, and calendar export.
func HandleEventScoped(sessions SessionProvider, reminders ReminderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		eventID, rest, ok := parseEventPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		event, err := sessions.Get(user.ID).Events().Get(eventID)
		if err != nil {
			if errors.Is(err, domain.ErrEventNotFound) {
				writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		switch {
		case len(rest) == 0:
			handleEventDetail(w, r, event)
		case len(rest) == 1 && rest[0] == "rsvp":
			handleRSVPStats(w, r, event)
		case len(rest) == 1 && rest[0] == "reminders":
			handleBulkReminders(w, r, reminders, event)
		case len(rest) == 1 && rest[0] == "calendar.ics":
			handleCalendarExport(w, r, event)
		case len(rest) == 3 && rest[0] == "attendees" && rest[2] == "reminder":
			handleSingleReminder(w, r, reminders, event, rest[1])
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func handleEventDetail(w http.ResponseWriter, r *http.Request, event domain.Event) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// parseEventPath splits "/events/{id}/..." into the event id and any
// trailing segments.
func parseEventPath(path string) (string, []string, bool) {
	trimmed := strings.TrimPrefix(path, "/events/")
	if trimmed == path || trimmed == "" {
		return "", nil, false
	}
	segments := strings.Split(strings.Trim(trimmed, "/"), "/")
	if segments[0] == "" {
		return "", nil, false
	}
	return segments[0], segments[1:], true
}
