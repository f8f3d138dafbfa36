package domain

import "context"

// Event represents a stored event.
type Event struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Date     ISOTime `json:"date"`
	Location string  `json:"location"`
}

// NewEvent returns a new Event. ID is set by the repository on create.
func NewEvent(name string, date ISOTime, location string) *Event {
	return &Event{
		Name:     name,
		Date:     date,
		Location: location,
	}
}

// EventBasic is the minimal projection of an event, used when an event is
// embedded inside another entity's serialization.
type EventBasic struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Basic returns the basic view of the event.
func (e *Event) Basic() EventBasic {
	return EventBasic{ID: e.ID, Name: e.Name}
}

// EventFull is the complete projection of an event: scalar fields plus basic
// views of its creators and attendees.
type EventFull struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Date      ISOTime     `json:"date"`
	Location  string      `json:"location"`
	Creators  []UserBasic `json:"creators"`
	Attendees []UserBasic `json:"attendees"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventService defines the business logic for event records.
type EventService interface {
	List(ctx context.Context) ([]*EventFull, error)
	Create(ctx context.Context, name string, date ISOTime, location string) (*EventFull, error)
	GetByID(ctx context.Context, id int64) (*EventFull, error)
	// Delete removes the event and returns a snapshot of it as it was
	// immediately before deletion.
	Delete(ctx context.Context, id int64) (*EventFull, error)
	// AddUser appends the user to the event's collection for the given role.
	// The role string is matched case-insensitively after both lookups
	// succeed; an unknown role returns ErrInvalidLinkRole.
	AddUser(ctx context.Context, eventID, userID int64, role string) (*EventFull, error)
}
