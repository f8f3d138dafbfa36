package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventledger/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, date, location)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Name, e.Date, e.Location).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT id, name, date, location
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Date, &e.Location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, name, date, location
		FROM events
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
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

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
