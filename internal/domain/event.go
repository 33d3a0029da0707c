package domain

import "time"

type EventType string

const (
	EventTypePublic   EventType = "public"
	EventTypePrivate  EventType = "private"
	EventTypeRSVPOnly EventType = "rsvp-only"
)

// ValidEventType reports whether t is one of the known event types.
func ValidEventType(t EventType) bool {
	switch t {
	case EventTypePublic, EventTypePrivate, EventTypeRSVPOnly:
		return true
	}
	return false
}

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// Coordinates is an optional lat/lng pair attached to a location.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Location is a free-text address with optional geocoded coordinates,
// stored exactly as the location collaborator (or the user) supplied it.
type Location struct {
	Address     string
	Coordinates *Coordinates
}

// Image is a media reference returned by the upload collaborator.
// The first image on an event is its banner.
type Image struct {
	URL  string
	Name string
}

// Event represents one event owned by an organizer's session.
// Date is the calendar day (UTC midnight); Time is the local
// time-of-day in "HH:MM" form, kept separate from the date.
type Event struct {
	ID          string
	Title       string
	Description string
	Type        EventType
	Location    Location
	Date        time.Time
	Time        string
	Images      []Image
	Organizer   string
	Attendees   []Attendee
	Status      EventStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
