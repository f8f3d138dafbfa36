package domain

import (
	"context"
	"strings"
)

// LinkRole is the role a user holds on an event. Each role is backed by its
// own association table.
type LinkRole string

const (
	RoleAttendee LinkRole = "attendee"
	RoleCreator  LinkRole = "creator"
)

// ParseLinkRole matches s against the recognized roles, case-insensitively.
func ParseLinkRole(s string) (LinkRole, error) {
	switch strings.ToLower(s) {
	case string(RoleAttendee):
		return RoleAttendee, nil
	case string(RoleCreator):
		return RoleCreator, nil
	}
	return "", ErrInvalidLinkRole
}

// LinkRepository defines storage for the event-user association tables.
// Add appends a link row; duplicates are permitted and appear once per row
// in listings. Listings are ordered by insertion.
type LinkRepository interface {
	Add(ctx context.Context, eventID, userID int64, role LinkRole) error
	ListUsersByEvent(ctx context.Context, eventID int64, role LinkRole) ([]*User, error)
	ListEventsByUser(ctx context.Context, userID int64, role LinkRole) ([]*Event, error)
}
