package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventpulse/internal/delivery/http/helpers"
	"eventpulse/internal/domain"
	"eventpulse/internal/services"
)

// defaultRelatedLimit bounds GET /events/{eventID}/related when no limit
// query parameter is given.
const defaultRelatedLimit = 3

type FeedController struct {
	Logger *slog.Logger
	Feed   domain.EventFeed
	Now    func() time.Time
}

func NewFeedController(logger *slog.Logger, feed domain.EventFeed) *FeedController {
	return &FeedController{
		Logger: logger,
		Feed:   feed,
		Now:    time.Now,
	}
}

// FeedEvent is one event in the aggregated feed, annotated with the derived
// lifecycle status and display strings computed at response time.
type FeedEvent struct {
	domain.Event
	Status        domain.EventStatus `json:"status"`
	DisplayDate   string             `json:"display_date"`
	DisplayPrice  string             `json:"display_price"`
	RelativeStart string             `json:"relative_start"`
}

func (c *FeedController) annotate(e domain.Event) FeedEvent {
	now := c.Now()
	opts := services.DefaultDateFormat()
	if e.Timezone != "" {
		opts.Timezone = e.Timezone
	}
	return FeedEvent{
		Event:         e,
		Status:        services.StatusOf(e, now),
		DisplayDate:   services.FormatEventDate(e.StartAt, opts),
		DisplayPrice:  services.FormatEventPrice(e.Price),
		RelativeStart: services.RelativeTime(e.StartAt, now),
	}
}

func (c *FeedController) annotateAll(events []domain.Event) []FeedEvent {
	out := make([]FeedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, c.annotate(e))
	}
	return out
}

// ListEventsResponse is the data payload for GET /events (200).
type ListEventsResponse struct {
	Items      []FeedEvent            `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListEvents godoc
// @Summary List aggregated events
// @Description Returns the aggregated feed: externally sourced events followed by locally created ones, sorted by start date. Supports free-text search (q), tag filter (tag), date range (from/to, RFC 3339 or YYYY-MM-DD), cache bypass (refresh=true), and pagination.
// @Tags feed
// @Produce json
// @Param q query string false "Free-text search over title, description, location, city, tags, and hosts"
// @Param tag query string false "Exact tag match (case-insensitive)"
// @Param from query string false "Range start (inclusive)"
// @Param to query string false "Range end (inclusive)"
// @Param refresh query bool false "Bypass the external source cache"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *FeedController) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	refresh := query.Get("refresh") == "true"

	var events []domain.Event
	var err error
	switch {
	case strings.TrimSpace(query.Get("q")) != "":
		events, err = c.Feed.SearchEvents(r.Context(), strings.TrimSpace(query.Get("q")))
	case strings.TrimSpace(query.Get("tag")) != "":
		events, err = c.Feed.FilterByTag(r.Context(), strings.TrimSpace(query.Get("tag")))
	default:
		events, err = c.Feed.ListEvents(r.Context(), refresh)
	}
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	if from, to, rangeSet, badRange := parseDateRange(query.Get("from"), query.Get("to")); badRange != "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, badRange)
		return
	} else if rangeSet {
		events = services.FilterEventsByDateRange(events, from, to)
	}

	events = services.SortEventsByDate(events)

	params := helpers.ParsePagination(r)
	total := len(events)
	offset := params.Offset()
	if offset > total {
		offset = total
	}
	end := offset + params.PageSize
	if end > total {
		end = total
	}
	page := c.annotateAll(events[offset:end])

	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Items:      page,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// parseDateRange interprets the from/to query parameters. An open end of the
// range defaults to the far past or far future so a single bound works alone.
func parseDateRange(fromRaw, toRaw string) (from, to time.Time, set bool, badParam string) {
	fromRaw = strings.TrimSpace(fromRaw)
	toRaw = strings.TrimSpace(toRaw)
	if fromRaw == "" && toRaw == "" {
		return time.Time{}, time.Time{}, false, ""
	}

	from = time.Time{}
	to = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	if fromRaw != "" {
		t, ok := domain.ParseEventTime(fromRaw)
		if !ok {
			return time.Time{}, time.Time{}, false, "invalid from date"
		}
		from = t
	}
	if toRaw != "" {
		t, ok := domain.ParseEventTime(toRaw)
		if !ok {
			return time.Time{}, time.Time{}, false, "invalid to date"
		}
		to = t
	}
	return from, to, true, ""
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  FeedEvent         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventByID godoc
// @Summary Get one event from the feed
// @Description Looks the event up across every source, external and local alike.
// @Tags feed
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *FeedController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Feed.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.annotate(event))
}

// RelatedEventsSuccessResponse is the success response envelope for GET /events/{eventID}/related (200).
type RelatedEventsSuccessResponse struct {
	Data  []FeedEvent       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RelatedEvents godoc
// @Summary List events related to one event
// @Description Returns events from the feed sharing at least one tag with the given event, excluding the event itself. Feed order is preserved.
// @Tags feed
// @Produce json
// @Param eventID path string true "Event ID"
// @Param limit query int false "Maximum number of related events (default 3)"
// @Success 200 {object} controllers.RelatedEventsSuccessResponse "data is an array of events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/related [get]
func (c *FeedController) RelatedEvents(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	limit := defaultRelatedLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = v
		}
	}
	related, err := c.Feed.RelatedEvents(r.Context(), eventID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.annotateAll(related))
}
