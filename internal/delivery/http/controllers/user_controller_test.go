package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventledger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	createFull *domain.UserFull
	createErr  error
	getFull    *domain.UserFull
	getErr     error

	lastCreateUsername string
	lastCreatePassword string
	lastCreateName     string
}

func (f *fakeUserService) Create(ctx context.Context, username, password, name string) (*domain.UserFull, error) {
	f.lastCreateUsername = username
	f.lastCreatePassword = password
	f.lastCreateName = name
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createFull, nil
}

func (f *fakeUserService) GetByID(ctx context.Context, id int64) (*domain.UserFull, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getFull, nil
}

func testUserFull() *domain.UserFull {
	return &domain.UserFull{
		ID:              1,
		Name:            "A",
		Username:        "a",
		Password:        "p",
		EventsCreated:   []domain.EventBasic{},
		EventsAttending: []domain.EventBasic{},
	}
}

func TestUserController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeUserService
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			body:       `{"username":"a","password":"p","name":"A"}`,
			svc:        &fakeUserService{createFull: testUserFull()},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "empty body",
			body:       ``,
			svc:        &fakeUserService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "Empty request",
		},
		{
			name:       "empty object",
			body:       `{}`,
			svc:        &fakeUserService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "Empty request",
		},
		{
			name:       "missing password",
			body:       `{"username":"a","name":"A"}`,
			svc:        &fakeUserService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "Incomplete request: 'username', 'password', and 'name' are required.",
		},
		{
			name:       "empty username",
			body:       `{"username":"","password":"p","name":"A"}`,
			svc:        &fakeUserService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "Incomplete request: 'username', 'password', and 'name' are required.",
		},
		{
			name:       "non-string password",
			body:       `{"username":"a","password":1,"name":"A"}`,
			svc:        &fakeUserService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate username",
			body:       `{"username":"a","password":"p","name":"A"}`,
			svc:        &fakeUserService{createErr: domain.ErrDuplicateUsername},
			wantStatus: http.StatusConflict,
			wantError:  "Username already taken",
		},
		{
			name:       "service error",
			body:       `{"username":"a","password":"p","name":"A"}`,
			svc:        &fakeUserService{createErr: assert.AnError},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewUserController(testLogger(), tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/api/users/", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				// Empty relationship lists serialize as [], and the password
				// is echoed verbatim (legacy behavior, see DESIGN.md).
				body := rr.Body.String()
				assert.Contains(t, body, `"events_created":[]`)
				assert.Contains(t, body, `"events_attending":[]`)
				assert.Contains(t, body, `"password":"p"`)
				assert.Equal(t, "a", tt.svc.lastCreateUsername)
			} else if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr.Body))
			}
		})
	}
}

func TestUserController_GetByID(t *testing.T) {
	tests := []struct {
		name       string
		pathID     string
		svc        *fakeUserService
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			pathID:     "1",
			svc:        &fakeUserService{getFull: testUserFull()},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			pathID:     "99",
			svc:        &fakeUserService{getErr: domain.ErrUserNotFound},
			wantStatus: http.StatusNotFound,
			wantError:  "User not found",
		},
		{
			name:       "non-integer id",
			pathID:     "abc",
			svc:        &fakeUserService{},
			wantStatus: http.StatusNotFound,
			wantError:  "User not found",
		},
		{
			name:       "service error",
			pathID:     "1",
			svc:        &fakeUserService{getErr: assert.AnError},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewUserController(testLogger(), tt.svc)

			req := httptest.NewRequest(http.MethodGet, "/api/users/"+tt.pathID+"/", nil)
			req.SetPathValue("id", tt.pathID)
			rr := httptest.NewRecorder()
			ctrl.GetByID(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var full domain.UserFull
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&full))
				assert.Equal(t, int64(1), full.ID)
			} else if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr.Body))
			}
		})
	}
}
