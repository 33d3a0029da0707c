package app

import (
	"time"

	"eventhub/internal/clock"
	"eventhub/internal/domain"
)

// Stage is a 1-based position in the wizard's fixed stage list.
type Stage int

const (
	StageDetails Stage = iota + 1
	StageLocation
	StageDateTime
	StageMedia
	StageInvitees
	StageReview
)

var stageNames = map[Stage]string{
	StageDetails:  "details",
	StageLocation: "location",
	StageDateTime: "date-time",
	StageMedia:    "media",
	StageInvitees: "invitees",
	StageReview:   "review",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Draft holds the partial event accumulated across wizard stages. It is
// owned by its Wizard and discarded on Reset or a successful Commit.
type Draft struct {
	Title       string
	Description string
	Type        domain.EventType
	Location    domain.Location
	Date        time.Time
	Time        string
	Images      []domain.Image
	Invitees    []domain.Invitee
}

func emptyDraft() Draft {
	return Draft{Type: domain.EventTypePublic}
}

// DraftUpdate carries the fields to merge into the draft. Nil fields are
// left untouched; Location merges its own sub-fields rather than being
// replaced wholesale.
type DraftUpdate struct {
	Title       *string
	Description *string
	Type        *domain.EventType
	Address     *string
	Coordinates *domain.Coordinates
	Date        *time.Time
	Time        *string
}

// Wizard walks an organizer through building one event in fixed stages:
// Details, Location, Date & Time, Media, Invitees, Review.
type Wizard struct {
	clock clock.Clock
	stage Stage
	draft Draft
}

func NewWizard(clk clock.Clock) *Wizard {
	return &Wizard{
		clock: clk,
		stage: StageDetails,
		draft: emptyDraft(),
	}
}

func (w *Wizard) Stage() Stage {
	return w.stage
}

func (w *Wizard) Draft() Draft {
	return w.draft
}

// Advance moves to the next stage. At Review it does nothing.
func (w *Wizard) Advance() {
	if w.stage < StageReview {
		w.stage++
	}
}

// Retreat moves to the previous stage. At Details it does nothing.
func (w *Wizard) Retreat() {
	if w.stage > StageDetails {
		w.stage--
	}
}

// Update merges the given fields into the draft.
func (w *Wizard) Update(u DraftUpdate) error {
	if u.Type != nil && !domain.ValidEventType(*u.Type) {
		return domain.ErrInvalidEventType
	}

	if u.Title != nil {
		w.draft.Title = *u.Title
	}
	if u.Description != nil {
		w.draft.Description = *u.Description
	}
	if u.Type != nil {
		w.draft.Type = *u.Type
	}
	if u.Address != nil {
		w.draft.Location.Address = *u.Address
	}
	if u.Coordinates != nil {
		coords := *u.Coordinates
		w.draft.Location.Coordinates = &coords
	}
	if u.Date != nil {
		w.draft.Date = *u.Date
	}
	if u.Time != nil {
		w.draft.Time = *u.Time
	}
	return nil
}

// AddInvitee stages a new invitee. Name and email are both required.
// Duplicate emails are allowed; each invitee gets its own id.
func (w *Wizard) AddInvitee(name, email string) (domain.Invitee, error) {
	if name == "" {
		return domain.Invitee{}, domain.ErrInviteeNameRequired
	}
	if email == "" {
		return domain.Invitee{}, domain.ErrInviteeEmailRequired
	}

	invitee := domain.Invitee{
		ID:    newID(),
		Name:  name,
		Email: email,
	}
	w.draft.Invitees = append(w.draft.Invitees, invitee)
	return invitee, nil
}

// RemoveInvitee drops the invitee with the given id. An absent id
// changes nothing.
func (w *Wizard) RemoveInvitee(id string) {
	for i, invitee := range w.draft.Invitees {
		if invitee.ID == id {
			w.draft.Invitees = append(w.draft.Invitees[:i], w.draft.Invitees[i+1:]...)
			return
		}
	}
}

// AddImages appends media references collected during the Media stage.
func (w *Wizard) AddImages(images ...domain.Image) {
	w.draft.Images = append(w.draft.Images, images...)
}

// Commit builds the event from the accumulated draft: every invitee
// becomes a pending attendee, status starts as upcoming, and timestamps
// come from the wizard's clock. On success the draft and stage reset.
func (w *Wizard) Commit(organizer string) (domain.Event, error) {
	if w.draft.Title == "" {
		return domain.Event{}, domain.ErrTitleRequired
	}
	if w.draft.Date.IsZero() {
		return domain.Event{}, domain.ErrDateRequired
	}
	if w.draft.Time == "" {
		return domain.Event{}, domain.ErrTimeRequired
	}

	now := w.clock.Now()
	attendees := make([]domain.Attendee, 0, len(w.draft.Invitees))
	for _, invitee := range w.draft.Invitees {
		attendees = append(attendees, domain.Attendee{
			ID:     invitee.ID,
			Name:   invitee.Name,
			Email:  invitee.Email,
			Status: domain.AttendeeStatusPending,
		})
	}

	event := domain.Event{
		ID:          newID(),
		Title:       w.draft.Title,
		Description: w.draft.Description,
		Type:        w.draft.Type,
		Location:    w.draft.Location,
		Date:        w.draft.Date,
		Time:        w.draft.Time,
		Images:      w.draft.Images,
		Organizer:   organizer,
		Attendees:   attendees,
		Status:      domain.EventStatusUpcoming,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	w.Reset()
	return event, nil
}

// Reset discards the draft and returns to the Details stage.
func (w *Wizard) Reset() {
	w.stage = StageDetails
	w.draft = emptyDraft()
}
