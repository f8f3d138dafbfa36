package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventledger/internal/delivery/http/helpers"
	"eventledger/internal/domain"
)

// CreateEventRequest is the request body for POST /events/.
type CreateEventRequest struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// Validate implements helpers.Validator. The date's format is checked
// separately by the handler so it can report a format-specific message.
func (c CreateEventRequest) Validate() []string {
	if c.Name == "" || c.Date == "" || c.Location == "" {
		return []string{"Incomplete request: 'name', 'date', and 'location' are required"}
	}
	return nil
}

// AddUserRequest is the request body for POST /events/{id}/add_user/.
type AddUserRequest struct {
	UserID *int64 `json:"user_id"`
	Type   string `json:"type"`
}

// Validate implements helpers.Validator. Type values are checked after the
// event and user lookups, not here.
func (a AddUserRequest) Validate() []string {
	if a.UserID == nil || a.Type == "" {
		return []string{"Incomplete request"}
	}
	return nil
}

// ListEventsResponse is the response body for GET /events/.
type ListEventsResponse struct {
	Events []*domain.EventFull `json:"events"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// eventIDFromPath parses the {id} path segment. A non-integer id never
// identifies an event, so it reports not-found rather than bad-request.
func eventIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List all events
// @Description Returns every stored event in full view, creators and attendees embedded in basic view.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/ [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListEventsResponse{Events: events})
}

// Create godoc
// @Summary Create a new event
// @Description Creates an event from name, date (ISO 8601), and location. The created event is returned in full view with empty creator and attendee lists.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event fields"
// @Success 201 {object} domain.EventFull
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/ [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, err := domain.ParseISOTime(req.Date)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid date format. Use ISO 8601 (e.g., '2024-12-25T10:00:00')")
		return
	}
	event, err := c.Service.Create(r.Context(), req.Name, date, req.Location)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// GetByID godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.EventFull
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id}/ [get]
func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event by id
// @Description Deletes the event and returns a full-view snapshot of it as it was before deletion. Deleting an already-deleted event reports not-found.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.EventFull
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id}/ [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	event, err := c.Service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// AddUser godoc
// @Summary Link a user to an event
// @Description Appends the user to the event's creators or attendees, per type ("creator" or "attendee", case-insensitive). Appending the same user twice duplicates the link.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param link body AddUserRequest true "User id and link type"
// @Success 200 {object} domain.EventFull
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id}/add_user/ [post]
func (c *EventController) AddUser(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	var req AddUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.AddUser(r.Context(), id, *req.UserID, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidLinkRole):
			helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid user type specified. Must be 'attendee' or 'creator'.")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}
