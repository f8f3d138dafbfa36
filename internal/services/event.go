package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventledger/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	linkRepo       domain.LinkRepository
	contextTimeout time.Duration
}

func NewEventService(
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	linkRepo domain.LinkRepository,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		linkRepo:       linkRepo,
		contextTimeout: timeout,
	}
}

// fullView assembles the event's full projection: the event plus basic views
// of its creators and attendees, in link insertion order.
func (s *eventService) fullView(ctx context.Context, e *domain.Event) (*domain.EventFull, error) {
	creators, err := s.linkRepo.ListUsersByEvent(ctx, e.ID, domain.RoleCreator)
	if err != nil {
		return nil, fmt.Errorf("list creators: %w", err)
	}
	attendees, err := s.linkRepo.ListUsersByEvent(ctx, e.ID, domain.RoleAttendee)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	full := &domain.EventFull{
		ID:        e.ID,
		Name:      e.Name,
		Date:      e.Date,
		Location:  e.Location,
		Creators:  make([]domain.UserBasic, 0, len(creators)),
		Attendees: make([]domain.UserBasic, 0, len(attendees)),
	}
	for _, u := range creators {
		full.Creators = append(full.Creators, u.Basic())
	}
	for _, u := range attendees {
		full.Attendees = append(full.Attendees, u.Basic())
	}
	return full, nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	fulls := make([]*domain.EventFull, 0, len(events))
	for _, e := range events {
		full, err := s.fullView(ctx, e)
		if err != nil {
			return nil, err
		}
		fulls = append(fulls, full)
	}
	return fulls, nil
}

func (s *eventService) Create(ctx context.Context, name string, date domain.ISOTime, location string) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := domain.NewEvent(name, date, location)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return s.fullView(ctx, event)
}

func (s *eventService) GetByID(ctx context.Context, id int64) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.fullView(ctx, event)
}

func (s *eventService) Delete(ctx context.Context, id int64) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	// Snapshot the full view before the row disappears; link rows are left
	// behind on delete, so the snapshot must be taken first.
	full, err := s.fullView(ctx, event)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("delete event: %w", err)
	}
	return full, nil
}

func (s *eventService) AddUser(ctx context.Context, eventID, userID int64, role string) (*domain.EventFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	// Role is validated only after both lookups so a bad role on a missing
	// event still reports not-found.
	parsed, err := domain.ParseLinkRole(role)
	if err != nil {
		return nil, domain.ErrInvalidLinkRole
	}
	if err := s.linkRepo.Add(ctx, eventID, userID, parsed); err != nil {
		return nil, fmt.Errorf("add link: %w", err)
	}
	return s.fullView(ctx, event)
}
