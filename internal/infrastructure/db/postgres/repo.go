package postgres

import (
	"context"
	"database/sql"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, insertEventSQL,
		e.VenueID, e.Title, e.EventType, e.EventDate, e.BasePrice,
		string(e.Status), e.CancelledAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, getEventSQL, id)

	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("event not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EventRepo) Update(ctx context.Context, e *domain.Event) error {
	res, err := r.db.ExecContext(ctx, updateEventSQL,
		e.EventID,
		e.Title, e.EventType, e.EventDate, e.BasePrice,
		string(e.Status), e.CancelledAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("event not found")
	}
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteEventSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("event not found")
	}
	return nil
}

func (r *EventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	return r.query(ctx, selectEventCols+`ORDER BY e.event_date ASC`)
}

func (r *EventRepo) ListByVenue(ctx context.Context, venueID int64) ([]*domain.Event, error) {
	return r.query(ctx, selectEventCols+`WHERE e.venue_id = $1 ORDER BY e.event_date ASC`, venueID)
}

func (r *EventRepo) ListByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	return r.query(ctx, selectEventCols+`WHERE e.status = $1 ORDER BY e.event_date ASC`, string(status))
}

func (r *EventRepo) ListByCity(ctx context.Context, city string) ([]*domain.Event, error) {
	return r.query(ctx, selectEventCols+`WHERE v.city = $1 ORDER BY e.event_date ASC`, city)
}

func (r *EventRepo) Search(ctx context.Context, query string) ([]*domain.Event, error) {
	pattern := "%" + query + "%"
	return r.query(ctx, selectEventCols+`
WHERE e.title ILIKE $1 OR e.event_type ILIKE $1 OR v.name ILIKE $1 OR v.city ILIKE $1
ORDER BY e.event_date ASC`, pattern)
}

func (r *EventRepo) query(ctx context.Context, q string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	var status string
	if err := s.Scan(
		&e.EventID, &e.VenueID, &e.Title, &e.EventType, &e.EventDate,
		&e.BasePrice, &status, &e.CancelledAt,
		&e.VenueName, &e.VenueCity,
	); err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	if !e.Status.Valid() {
		return nil, domain.ErrInvalidState("invalid status in db")
	}
	return &e, nil
}
