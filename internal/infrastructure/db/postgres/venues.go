package postgres

import (
	"context"
	"database/sql"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

type VenueRepo struct {
	db *sql.DB
}

func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{db: db} }

func (r *VenueRepo) Create(ctx context.Context, v *domain.Venue) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, insertVenueSQL, v.Name, v.City, v.Capacity).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	row := r.db.QueryRowContext(ctx, getVenueSQL, id)

	var v domain.Venue
	err := row.Scan(&v.VenueID, &v.Name, &v.City, &v.Capacity, &v.EventCount)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("venue not found")
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VenueRepo) Update(ctx context.Context, v *domain.Venue) error {
	res, err := r.db.ExecContext(ctx, updateVenueSQL, v.VenueID, v.Name, v.City, v.Capacity)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("venue not found")
	}
	return nil
}

func (r *VenueRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteVenueSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("venue not found")
	}
	return nil
}

func (r *VenueRepo) List(ctx context.Context) ([]*domain.Venue, error) {
	return r.query(ctx, selectVenueCols+`ORDER BY v.name ASC`)
}

func (r *VenueRepo) ListByCity(ctx context.Context, city string) ([]*domain.Venue, error) {
	return r.query(ctx, selectVenueCols+`WHERE v.city = $1 ORDER BY v.name ASC`, city)
}

func (r *VenueRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM venues WHERE venue_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *VenueRepo) query(ctx context.Context, q string, args ...any) ([]*domain.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(&v.VenueID, &v.Name, &v.City, &v.Capacity, &v.EventCount); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
