package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventledger/internal/delivery/http/controllers"
	"eventledger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEventService implements domain.EventService with empty results.
type stubEventService struct{}

func (stubEventService) List(ctx context.Context) ([]*domain.EventFull, error) {
	return []*domain.EventFull{}, nil
}
func (stubEventService) Create(ctx context.Context, name string, date domain.ISOTime, location string) (*domain.EventFull, error) {
	return &domain.EventFull{}, nil
}
func (stubEventService) GetByID(ctx context.Context, id int64) (*domain.EventFull, error) {
	return nil, domain.ErrEventNotFound
}
func (stubEventService) Delete(ctx context.Context, id int64) (*domain.EventFull, error) {
	return nil, domain.ErrEventNotFound
}
func (stubEventService) AddUser(ctx context.Context, eventID, userID int64, role string) (*domain.EventFull, error) {
	return nil, domain.ErrEventNotFound
}

// stubUserService implements domain.UserService with empty results.
type stubUserService struct{}

func (stubUserService) Create(ctx context.Context, username, password, name string) (*domain.UserFull, error) {
	return &domain.UserFull{}, nil
}
func (stubUserService) GetByID(ctx context.Context, id int64) (*domain.UserFull, error) {
	return nil, domain.ErrUserNotFound
}

func newTestRouter() *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(
		controllers.NewEventController(logger, stubEventService{}),
		controllers.NewUserController(logger, stubUserService{}),
	)
}

func TestRouterRoutes(t *testing.T) {
	mux := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "list events", method: http.MethodGet, path: "/api/events/", wantStatus: http.StatusOK},
		{name: "get missing event", method: http.MethodGet, path: "/api/events/1/", wantStatus: http.StatusNotFound},
		{name: "get missing user", method: http.MethodGet, path: "/api/users/1/", wantStatus: http.StatusNotFound},
		{name: "health", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/api/venues/", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPut, path: "/api/events/", wantStatus: http.StatusMethodNotAllowed},
		{name: "user list not exposed", method: http.MethodGet, path: "/api/users/", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRouterPathsAreExact(t *testing.T) {
	mux := newTestRouter()

	// The API uses trailing slashes; the unslashed path is not a match
	// (ServeMux answers it with a redirect, not a handler).
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.NotEqual(t, http.StatusOK, rr.Code)
}
