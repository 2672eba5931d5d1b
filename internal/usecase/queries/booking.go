package queries

import (
	"context"

	"azulhomes/internal/infra"
	"azulhomes/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	List(ctx context.Context) ([]*BookingView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]*BookingView, error) {
	return q.store.FindAll(ctx)
}

func (q *bookingQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*BookingView, error) {
	return q.store.FindByProperty(ctx, propertyID)
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingNotFound)
	}
	return view, nil
}
