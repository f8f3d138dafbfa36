package domain

import "context"

// User represents a registered user. Password is stored and serialized
// verbatim for compatibility with the API this service replaces.
// TODO: hash passwords at rest and drop the field from UserFull; both are
// observable behavior changes and need API consumers to migrate first.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// NewUser returns a new User. ID is set by the repository on create.
func NewUser(username, password, name string) *User {
	return &User{
		Username: username,
		Password: password,
		Name:     name,
	}
}

// UserBasic is the minimal projection of a user, used when a user is
// embedded inside another entity's serialization.
type UserBasic struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Basic returns the basic view of the user.
func (u *User) Basic() UserBasic {
	return UserBasic{ID: u.ID, Username: u.Username, Name: u.Name}
}

// UserFull is the complete projection of a user: scalar fields plus basic
// views of every directly related event. Related entities are never expanded
// further than one hop.
type UserFull struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Username        string       `json:"username"`
	Password        string       `json:"password"`
	EventsCreated   []EventBasic `json:"events_created"`
	EventsAttending []EventBasic `json:"events_attending"`
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// UserService defines the business logic for user records.
type UserService interface {
	Create(ctx context.Context, username, password, name string) (*UserFull, error)
	GetByID(ctx context.Context, id int64) (*UserFull, error)
}
