package repository

import (
	"context"

	"azulhomes/internal/domain/booking"
	"azulhomes/internal/infra"
	"azulhomes/internal/pkg/pgconv"
	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, property_id, property_name, guest_name, guest_email, guest_phone, check_in, check_out, guests, total_price, status, created_at, updated_at`

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *BookingRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE property_id = $1 ORDER BY created_at DESC`,
		propertyID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for property", err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id,
	)
	view, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (r *BookingRepository) Create(ctx context.Context, rec *booking.Record) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (id, property_id, property_name, guest_name, guest_email, guest_phone, check_in, check_out, guests, total_price, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`,
		rec.ID, rec.PropertyID, rec.PropertyName, rec.GuestName, rec.GuestEmail,
		rec.GuestPhone, rec.CheckIn, rec.CheckOut, rec.Guests, rec.TotalPrice,
		rec.Status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2`,
		status.String(), id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "booking not found")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "booking not found")
	}
	return nil
}

func scanBookings(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func scanBooking(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.PropertyID, &view.PropertyName, &view.GuestName,
		&view.GuestEmail, &view.GuestPhone, &view.CheckIn, &view.CheckOut,
		&view.Guests, &view.TotalPrice, &view.Status,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
