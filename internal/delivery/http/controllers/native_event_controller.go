package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"eventpulse/internal/delivery/http/helpers"
	"eventpulse/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type NativeEventController struct {
	Logger  *slog.Logger
	Service domain.NativeEventService
}

func NewNativeEventController(logger *slog.Logger, svc domain.NativeEventService) *NativeEventController {
	return &NativeEventController{
		Logger:  logger,
		Service: svc,
	}
}

// OrganizerRequest is the organizer block of a create request.
type OrganizerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// CreateNativeEventRequest is the request body for POST /manage/events.
// The id and timestamps are server-generated.
type CreateNativeEventRequest struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	StartAt      string           `json:"start_at"`
	EndAt        string           `json:"end_at"`
	Timezone     string           `json:"timezone"`
	Location     string           `json:"location"`
	FullAddress  string           `json:"full_address"`
	City         string           `json:"city"`
	Image        string           `json:"image"`
	Tags         []string         `json:"tags"`
	MaxAttendees int              `json:"max_attendees"`
	StakeAmount  float64          `json:"stake_amount"`
	Organizer    OrganizerRequest `json:"organizer"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (c CreateNativeEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, "location is required")
	}
	errs = append(errs, validateSchedule(c.StartAt, c.EndAt, true)...)
	errs = append(errs, validateOrganizer(c.Organizer)...)
	if c.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must be non-negative")
	}
	if c.StakeAmount < 0 {
		errs = append(errs, "stake_amount must be non-negative")
	}
	return errs
}

// validateSchedule checks start/end parseability and ordering. When required
// is false, empty values pass (patch semantics).
func validateSchedule(startAt, endAt string, required bool) []string {
	var errs []string
	var start, end time.Time
	startOK, endOK := false, false

	if startAt == "" {
		if required {
			errs = append(errs, "start_at is required")
		}
	} else if start, startOK = domain.ParseEventTime(startAt); !startOK {
		errs = append(errs, "start_at must be a valid date")
	}
	if endAt == "" {
		if required {
			errs = append(errs, "end_at is required")
		}
	} else if end, endOK = domain.ParseEventTime(endAt); !endOK {
		errs = append(errs, "end_at must be a valid date")
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, "end_at must be after start_at")
	}
	return errs
}

func validateOrganizer(o OrganizerRequest) []string {
	var errs []string
	if strings.TrimSpace(o.Name) == "" {
		errs = append(errs, "organizer.name is required")
	}
	if o.Email == "" {
		errs = append(errs, "organizer.email is required")
	} else if !emailRegex.MatchString(strings.TrimSpace(o.Email)) {
		errs = append(errs, "organizer.email must be a valid email address")
	}
	return errs
}

// CreateNativeEventSuccessResponse is the success response envelope for POST /manage/events (201).
type CreateNativeEventSuccessResponse struct {
	Data  *domain.NativeEvent `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// CreateEvent godoc
// @Summary Create a native event
// @Description Create a locally managed event. The id and timestamps are server-generated; the event is active on creation.
// @Tags manage
// @Accept json
// @Produce json
// @Param event body CreateNativeEventRequest true "Event data"
// @Success 201 {object} controllers.CreateNativeEventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /manage/events [post]
func (c *NativeEventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateNativeEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.NativeEvent{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		Timezone:     req.Timezone,
		Location:     strings.TrimSpace(req.Location),
		FullAddress:  req.FullAddress,
		City:         req.City,
		Image:        req.Image,
		Tags:         req.Tags,
		MaxAttendees: req.MaxAttendees,
		StakeAmount:  req.StakeAmount,
		Organizer: domain.Organizer{
			Name:   strings.TrimSpace(req.Organizer.Name),
			Email:  strings.TrimSpace(req.Organizer.Email),
			Avatar: req.Organizer.Avatar,
		},
		IsActive: true,
	}
	if err := c.Service.Create(r.Context(), event); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListNativeEventsSuccessResponse is the success response envelope for GET /manage/events (200).
type ListNativeEventsSuccessResponse struct {
	Data  []*domain.NativeEvent `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ListEvents godoc
// @Summary List native events
// @Description Returns all locally managed events in creation order. Optional q searches title, description, location, city, organizer name, and tags; optional tag filters by exact tag match.
// @Tags manage
// @Produce json
// @Param q query string false "Free-text search"
// @Param tag query string false "Exact tag match (case-insensitive)"
// @Success 200 {object} controllers.ListNativeEventsSuccessResponse "data is an array of events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /manage/events [get]
func (c *NativeEventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var events []*domain.NativeEvent
	var err error
	switch {
	case strings.TrimSpace(query.Get("q")) != "":
		events, err = c.Service.Search(r.Context(), strings.TrimSpace(query.Get("q")))
	case strings.TrimSpace(query.Get("tag")) != "":
		events, err = c.Service.FilterByTag(r.Context(), strings.TrimSpace(query.Get("tag")))
	default:
		events, err = c.Service.List(r.Context())
	}
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.NativeEvent{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetNativeEventSuccessResponse is the success response envelope for GET /manage/events/{eventID} (200).
type GetNativeEventSuccessResponse struct {
	Data  *domain.NativeEvent `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// GetEventByID godoc
// @Summary Get a native event by ID
// @Tags manage
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GetNativeEventSuccessResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /manage/events/{eventID} [get]
func (c *NativeEventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateNativeEventRequest is the request body for PATCH /manage/events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateNativeEventRequest struct {
	Title        *string           `json:"title"`
	Description  *string           `json:"description"`
	StartAt      *string           `json:"start_at"`
	EndAt        *string           `json:"end_at"`
	Timezone     *string           `json:"timezone"`
	Location     *string           `json:"location"`
	FullAddress  *string           `json:"full_address"`
	City         *string           `json:"city"`
	Image        *string           `json:"image"`
	Tags         []string          `json:"tags"`
	MaxAttendees *int              `json:"max_attendees"`
	StakeAmount  *float64          `json:"stake_amount"`
	Organizer    *OrganizerRequest `json:"organizer"`
	IsActive     *bool             `json:"is_active"`
}

// Validate implements Validator. Patch ordering is checked only when both
// times are supplied; cross-checking a new start against a stored end is the
// service's concern, not the DTO's.
func (u UpdateNativeEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	if u.Location != nil && strings.TrimSpace(*u.Location) == "" {
		errs = append(errs, "location cannot be empty")
	}
	startAt, endAt := "", ""
	if u.StartAt != nil {
		startAt = *u.StartAt
	}
	if u.EndAt != nil {
		endAt = *u.EndAt
	}
	errs = append(errs, validateSchedule(startAt, endAt, false)...)
	if u.Organizer != nil {
		errs = append(errs, validateOrganizer(*u.Organizer)...)
	}
	if u.MaxAttendees != nil && *u.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must be non-negative")
	}
	if u.StakeAmount != nil && *u.StakeAmount < 0 {
		errs = append(errs, "stake_amount must be non-negative")
	}
	return errs
}

// UpdateNativeEventSuccessResponse is the success response envelope for PATCH /manage/events/{eventID} (200).
type UpdateNativeEventSuccessResponse struct {
	Data  *domain.NativeEvent `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// UpdateEvent godoc
// @Summary Update a native event
// @Description Partially updates an event. Omitted fields are unchanged; id and created_at are immutable; updated_at is refreshed by the server.
// @Tags manage
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param body body UpdateNativeEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.UpdateNativeEventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /manage/events/{eventID} [patch]
func (c *NativeEventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateNativeEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.NativeEventPatch{
		Title:        req.Title,
		Description:  req.Description,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		Timezone:     req.Timezone,
		Location:     req.Location,
		FullAddress:  req.FullAddress,
		City:         req.City,
		Image:        req.Image,
		Tags:         req.Tags,
		MaxAttendees: req.MaxAttendees,
		StakeAmount:  req.StakeAmount,
		IsActive:     req.IsActive,
	}
	if req.Organizer != nil {
		patch.Organizer = &domain.Organizer{
			Name:   strings.TrimSpace(req.Organizer.Name),
			Email:  strings.TrimSpace(req.Organizer.Email),
			Avatar: req.Organizer.Avatar,
		}
	}
	event, err := c.Service.Update(r.Context(), eventID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteNativeEventResponse is the data payload for DELETE /manage/events/{eventID} (200).
type DeleteNativeEventResponse struct {
	Deleted bool `json:"deleted"`
}

// DeleteNativeEventSuccessResponse is the success response envelope for DELETE /manage/events/{eventID} (200).
type DeleteNativeEventSuccessResponse struct {
	Data  DeleteNativeEventResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// DeleteEvent godoc
// @Summary Delete a native event
// @Description Deletes an event. Deleting an id that does not exist is not an error; the response reports deleted: false.
// @Tags manage
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.DeleteNativeEventSuccessResponse "data reports whether a record was removed"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /manage/events/{eventID} [delete]
func (c *NativeEventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	deleted, err := c.Service.Delete(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteNativeEventResponse{Deleted: deleted})
}
