package domain

type AttendeeStatus string

const (
	AttendeeStatusPending      AttendeeStatus = "pending"
	AttendeeStatusAttending    AttendeeStatus = "attending"
	AttendeeStatusMaybe        AttendeeStatus = "maybe"
	AttendeeStatusNotAttending AttendeeStatus = "not-attending"
)

// Attendee is one invited person on an event. New attendees start as
// pending; status changes arrive only through an external RSVP response.
type Attendee struct {
	ID     string
	Name   string
	Email  string
	Status AttendeeStatus
}

// Invitee is the wizard's staging form of an attendee, collected during
// the Invitees stage before the draft is committed.
type Invitee struct {
	ID    string
	Name  string
	Email string
}
