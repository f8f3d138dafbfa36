package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventledger/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	linkRepo       domain.LinkRepository
	contextTimeout time.Duration
}

func NewUserService(
	userRepo domain.UserRepository,
	linkRepo domain.LinkRepository,
	timeout time.Duration,
) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		linkRepo:       linkRepo,
		contextTimeout: timeout,
	}
}

// fullView assembles the user's full projection: the user plus basic views
// of the events they created and attend, in link insertion order.
func (s *userService) fullView(ctx context.Context, u *domain.User) (*domain.UserFull, error) {
	created, err := s.linkRepo.ListEventsByUser(ctx, u.ID, domain.RoleCreator)
	if err != nil {
		return nil, fmt.Errorf("list created events: %w", err)
	}
	attending, err := s.linkRepo.ListEventsByUser(ctx, u.ID, domain.RoleAttendee)
	if err != nil {
		return nil, fmt.Errorf("list attending events: %w", err)
	}

	full := &domain.UserFull{
		ID:              u.ID,
		Name:            u.Name,
		Username:        u.Username,
		Password:        u.Password,
		EventsCreated:   make([]domain.EventBasic, 0, len(created)),
		EventsAttending: make([]domain.EventBasic, 0, len(attending)),
	}
	for _, e := range created {
		full.EventsCreated = append(full.EventsCreated, e.Basic())
	}
	for _, e := range attending {
		full.EventsAttending = append(full.EventsAttending, e.Basic())
	}
	return full, nil
}

func (s *userService) Create(ctx context.Context, username, password, name string) (*domain.UserFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Lookup first for the common case; the UNIQUE constraint on username is
	// the real guarantee and catches the check-then-insert race.
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	user := domain.NewUser(username, password, name)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return s.fullView(ctx, user)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.UserFull, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return s.fullView(ctx, user)
}
