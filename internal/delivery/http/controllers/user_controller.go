package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventledger/internal/delivery/http/helpers"
	"eventledger/internal/domain"
)

// CreateUserRequest is the request body for POST /users/.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate implements helpers.Validator.
func (c CreateUserRequest) Validate() []string {
	if c.Username == "" || c.Password == "" || c.Name == "" {
		return []string{"Incomplete request: 'username', 'password', and 'name' are required."}
	}
	return nil
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a new user
// @Description Creates a user from username, password, and name. Usernames are unique; a taken username reports a conflict.
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User fields"
// @Success 201 {object} domain.UserFull
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /users/ [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Create(r.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			helpers.WriteJSONError(w, http.StatusConflict, "Username already taken")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, user)
}

// GetByID godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.UserFull
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /users/{id}/ [get]
func (c *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, "User not found")
		return
	}
	user, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}
