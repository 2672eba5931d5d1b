package queries

import (
	"context"

	"azulhomes/internal/infra"
	"azulhomes/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.New("listing not found")

// ListingReadStore abstracts the catalog source (static seed or the
// properties collection in the document store).
type ListingReadStore interface {
	FindAll(ctx context.Context) ([]*ListingView, error)
	FindAvailable(ctx context.Context) ([]*ListingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type ListingQueries interface {
	List(ctx context.Context, availableOnly bool) ([]*ListingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) List(ctx context.Context, availableOnly bool) ([]*ListingView, error) {
	if availableOnly {
		return q.store.FindAvailable(ctx)
	}
	return q.store.FindAll(ctx)
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, ErrListingNotFound)
	}
	return view, nil
}
