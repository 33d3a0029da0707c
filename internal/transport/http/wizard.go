package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"eventhub/internal/app"
	"eventhub/internal/domain"
)

type inviteeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type draftResponse struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Location    locationResponse  `json:"location"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Images      []imageResponse   `json:"images"`
	Invitees    []inviteeResponse `json:"invitees"`
}

type wizardResponse struct {
	Stage     int           `json:"stage"`
	StageName string        `json:"stage_name"`
	Draft     draftResponse `json:"draft"`
}

func toWizardResponse(stage app.Stage, draft app.Draft) wizardResponse {
	resp := wizardResponse{
		Stage:     int(stage),
		StageName: stage.String(),
		Draft: draftResponse{
			Title:       draft.Title,
			Description: draft.Description,
			Type:        string(draft.Type),
			Location:    locationResponse{Address: draft.Location.Address},
			Time:        draft.Time,
			Images:      make([]imageResponse, 0, len(draft.Images)),
			Invitees:    make([]inviteeResponse, 0, len(draft.Invitees)),
		},
	}
	if !draft.Date.IsZero() {
		resp.Draft.Date = draft.Date.Format(dateLayout)
	}
	if coords := draft.Location.Coordinates; coords != nil {
		resp.Draft.Location.Coordinates = &coordinatesResponse{Lat: coords.Lat, Lng: coords.Lng}
	}
	for _, image := range draft.Images {
		resp.Draft.Images = append(resp.Draft.Images, imageResponse{URL: image.URL, Name: image.Name})
	}
	for _, invitee := range draft.Invitees {
		resp.Draft.Invitees = append(resp.Draft.Invitees, inviteeResponse{
			ID:    invitee.ID,
			Name:  invitee.Name,
			Email: invitee.Email,
		})
	}
	return resp
}

type draftUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Location    *struct {
		Address     *string `json:"address"`
		Coordinates *struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"coordinates"`
	} `json:"location"`
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// HandleWizard serves the wizard root: GET reads the current stage and
// draft, PATCH merges fields into the draft.
func HandleWizard(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}
		session := sessions.Get(user.ID)

		switch r.Method {
		case http.MethodGet:
			stage, draft := session.WizardState()
			writeJSON(w, http.StatusOK, toWizardResponse(stage, draft))
		case http.MethodPatch:
			var req draftUpdateRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			update, err := draftUpdateFromRequest(req)
			if err != nil {
				switch {
				case errors.Is(err, errInvalidDate):
					writeError(w, http.StatusBadRequest, codeInvalidDate, "invalid date, expected YYYY-MM-DD")
				case errors.Is(err, errInvalidTime):
					writeError(w, http.StatusBadRequest, codeInvalidTime, "invalid time, expected HH:MM")
				default:
					writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				}
				return
			}

			if err := session.UpdateDraft(update); err != nil {
				if errors.Is(err, domain.ErrInvalidEventType) {
					writeError(w, http.StatusBadRequest, codeInvalidEventType, err.Error())
					return
				}
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}

			stage, draft := session.WizardState()
			writeJSON(w, http.StatusOK, toWizardResponse(stage, draft))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

func draftUpdateFromRequest(req draftUpdateRequest) (app.DraftUpdate, error) {
	update := app.DraftUpdate{
		Title:       req.Title,
		Description: req.Description,
		Time:        req.Time,
	}
	if req.Type != nil {
		eventType := domain.EventType(*req.Type)
		update.Type = &eventType
	}
	if req.Location != nil {
		update.Address = req.Location.Address
		if req.Location.Coordinates != nil {
			update.Coordinates = &domain.Coordinates{
				Lat: req.Location.Coordinates.Lat,
				Lng: req.Location.Coordinates.Lng,
			}
		}
	}
	if req.Date != nil {
		parsed, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return app.DraftUpdate{}, errInvalidDate
		}
		update.Date = &parsed
	}
	if req.Time != nil {
		if _, err := time.Parse(timeLayout, *req.Time); err != nil {
			return app.DraftUpdate{}, errInvalidTime
		}
	}
	return update, nil
}

type addInviteeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type addImagesRequest struct {
	Images []struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	} `json:"images"`
}

// HandleWizardActions routes the /wizard/... subtree: stage navigation,
// invitee management, media references, and the final commit.
func HandleWizardActions(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}
		session := sessions.Get(user.ID)

		action, rest, ok := parseWizardPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch {
		case action == "advance" && len(rest) == 0:
			handleWizardStep(w, r, session, true)
		case action == "retreat" && len(rest) == 0:
			handleWizardStep(w, r, session, false)
		case action == "invitees" && len(rest) == 0:
			handleAddInvitee(w, r, session)
		case action == "invitees" && len(rest) == 1:
			handleRemoveInvitee(w, r, session, rest[0])
		case action == "images" && len(rest) == 0:
			handleAddImages(w, r, session)
		case action == "commit" && len(rest) == 0:
			handleWizardCommit(w, r, session, user.Name)
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func handleWizardStep(w http.ResponseWriter, r *http.Request, session *app.Session, forward bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	if forward {
		session.Advance()
	} else {
		session.Retreat()
	}
	stage, draft := session.WizardState()
	writeJSON(w, http.StatusOK, toWizardResponse(stage, draft))
}

func handleAddInvitee(w http.ResponseWriter, r *http.Request, session *app.Session) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	var req addInviteeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}

	invitee, err := session.AddInvitee(req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInviteeNameRequired):
			writeError(w, http.StatusBadRequest, codeInviteeNameRequired, err.Error())
		case errors.Is(err, domain.ErrInviteeEmailRequired):
			writeError(w, http.StatusBadRequest, codeInviteeEmailRequired, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, inviteeResponse{
		ID:    invitee.ID,
		Name:  invitee.Name,
		Email: invitee.Email,
	})
}

// handleRemoveInvitee always succeeds; removing an id that is not
// staged changes nothing.
func handleRemoveInvitee(w http.ResponseWriter, r *http.Request, session *app.Session, id string) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	session.RemoveInvitee(id)
	w.WriteHeader(http.StatusNoContent)
}

func handleAddImages(w http.ResponseWriter, r *http.Request, session *app.Session) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	var req addImagesRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}

	images := make([]domain.Image, 0, len(req.Images))
	for _, image := range req.Images {
		images = append(images, domain.Image{URL: image.URL, Name: image.Name})
	}
	session.AddImages(images...)

	stage, draft := session.WizardState()
	writeJSON(w, http.StatusOK, toWizardResponse(stage, draft))
}

func handleWizardCommit(w http.ResponseWriter, r *http.Request, session *app.Session, organizer string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	event, err := session.CommitDraft(organizer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, codeTitleRequired, err.Error())
		case errors.Is(err, domain.ErrDateRequired):
			writeError(w, http.StatusBadRequest, codeDateRequired, err.Error())
		case errors.Is(err, domain.ErrTimeRequired):
			writeError(w, http.StatusBadRequest, codeTimeRequired, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

func parseWizardPath(path string) (string, []string, bool) {
	trimmed := strings.TrimPrefix(path, "/wizard/")
	if trimmed == path || trimmed == "" {
		return "", nil, false
	}
	segments := strings.Split(strings.Trim(trimmed, "/"), "/")
	if segments[0] == "" {
		return "", nil, false
	}
	return segments[0], segments[1:], true
}
