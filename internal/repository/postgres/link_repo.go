package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventledger/internal/domain"
)

type linkRepository struct {
	DB *sql.DB
}

func NewLinkRepository(db *sql.DB) domain.LinkRepository {
	return &linkRepository{DB: db}
}

// linkTable maps a role to its association table. Roles come from
// domain.ParseLinkRole, never from raw request input, so interpolating the
// table name is safe.
func linkTable(role domain.LinkRole) (string, error) {
	switch role {
	case domain.RoleAttendee:
		return "event_attendee_link", nil
	case domain.RoleCreator:
		return "event_creator_link", nil
	}
	return "", domain.ErrInvalidLinkRole
}

func (r *linkRepository) Add(ctx context.Context, eventID, userID int64, role domain.LinkRole) error {
	table, err := linkTable(role)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (event_id, user_id)
		VALUES ($1, $2)
	`, table)
	_, err = r.DB.ExecContext(ctx, query, eventID, userID)
	return err
}

func (r *linkRepository) ListUsersByEvent(ctx context.Context, eventID int64, role domain.LinkRole) ([]*domain.User, error) {
	table, err := linkTable(role)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT u.id, u.username, u.password, u.name
		FROM %s l
		JOIN users u ON u.id = l.user_id
		WHERE l.event_id = $1
		ORDER BY l.id
	`, table)
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make([]*domain.User, 0)
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *linkRepository) ListEventsByUser(ctx context.Context, userID int64, role domain.LinkRole) ([]*domain.Event, error) {
	table, err := linkTable(role)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT e.id, e.name, e.date, e.location
		FROM %s l
		JOIN events e ON e.id = l.event_id
		WHERE l.user_id = $1
		ORDER BY l.id
	`, table)
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Location); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
