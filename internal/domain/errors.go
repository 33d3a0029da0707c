package domain

import "errors"

var (
	ErrTitleRequired        = errors.New("event title required")
	ErrDateRequired         = errors.New("event date required")
	ErrTimeRequired         = errors.New("event time required")
	ErrInvalidEventType     = errors.New("invalid event type")
	ErrInviteeNameRequired  = errors.New("invitee name required")
	ErrInviteeEmailRequired = errors.New("invitee email required")
	ErrEventNotFound        = errors.New("event not found")
	ErrAttendeeNotFound     = errors.New("attendee not found")
	ErrInvalidID            = errors.New("invalid id")

	ErrNameRequired       = errors.New("name required")
	ErrEmailRequired      = errors.New("email required")
	ErrPasswordRequired   = errors.New("password required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
