package http

import (
	"net/http"
	"time"

	"github.com/emersion/go-ical"

	"eventhub/internal/domain"
)

const timeLayout = "15:04"

// handleCalendarExport serves the event as a single-VEVENT iCalendar
// file so attendees can add it to their own calendars.
func handleCalendarExport(w http.ResponseWriter, r *http.Request, event domain.Event) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//eventhub//EN")

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, event.ID)
	ve.Props.SetText(ical.PropSummary, event.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, event.UpdatedAt.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, eventStart(event))
	if event.Description != "" {
		ve.Props.SetText(ical.PropDescription, event.Description)
	}
	if event.Location.Address != "" {
		ve.Props.SetText(ical.PropLocation, event.Location.Address)
	}
	cal.Children = append(cal.Children, ve)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="event.ics"`)
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// eventStart combines the calendar day with the stored time-of-day.
// An unparseable time falls back to midnight.
func eventStart(event domain.Event) time.Time {
	tod, err := time.Parse(timeLayout, event.Time)
	if err != nil {
		return event.Date
	}
	return event.Date.Add(
		time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute,
	)
}
