package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed      = "method_not_allowed"
	codeNotFound              = "not_found"
	codeInvalidRequestBody    = "invalid_request_body"
	codeTitleRequired         = "event_title_required"
	codeDateRequired          = "event_date_required"
	codeTimeRequired          = "event_time_required"
	codeInvalidDate           = "invalid_date"
	codeInvalidTime           = "invalid_time"
	codeInvalidEventType      = "invalid_event_type"
	codeInviteeNameRequired   = "invitee_name_required"
	codeInviteeEmailRequired  = "invitee_email_required"
	codeEventNotFound         = "event_not_found"
	codeAttendeeNotFound      = "attendee_not_found"
	codeNameRequired          = "name_required"
	codeEmailRequired         = "email_required"
	codePasswordRequired      = "password_required"
	codeEmailTaken            = "email_taken"
	codeInvalidCredentials    = "invalid_credentials"
	codeUnauthorized          = "unauthorized"
	codeTokenExpired          = "token_expired"
	codeForbidden             = "forbidden"
	codeInternalError         = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
