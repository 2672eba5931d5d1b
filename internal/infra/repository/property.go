package repository

import (
	"context"

	"azulhomes/internal/domain/listing"
	"azulhomes/internal/infra"
	"azulhomes/internal/pkg/patch"
	"azulhomes/internal/pkg/pgconv"
	"azulhomes/internal/usecase/commands"
	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `id, name, location, price, rating, reviews, image, amenities, available, owner_email, created_at, updated_at`

// PropertyRepository persists listings in the properties collection. It backs
// both the read store behind the catalog queries and the admin write
// operations.
type PropertyRepository struct {
	db *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*queries.ListingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties ORDER BY created_at`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *PropertyRepository) FindAvailable(ctx context.Context) ([]*queries.ListingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE available ORDER BY created_at`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available properties", err)
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id,
	)
	view, err := scanListing(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}
	return view, nil
}

func (r *PropertyRepository) Create(ctx context.Context, l *listing.Listing) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO properties (id, name, location, price, rating, reviews, image, amenities, available, owner_email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`,
		l.ID(), l.Name(), l.Location(), l.Price(), l.Rating(),
		l.Reviews(), l.Image(), l.Amenities(), l.Available(), l.OwnerEmail(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create property", err)
	}
	return nil
}

// UpdateFields overwrites only the fields present in the patch; nil fields
// keep their stored value.
func (r *PropertyRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields commands.PropertyPatch) error {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE properties
		 SET name = $1, location = $2, price = $3, rating = $4, reviews = $5,
		     image = $6, amenities = $7, available = $8, updated_at = now()
		 WHERE id = $9`,
		patch.Coalesce(fields.Name, current.Name),
		patch.Coalesce(fields.Location, current.Location),
		patch.Coalesce(fields.Price, current.Price),
		patch.Coalesce(fields.Rating, current.Rating),
		patch.Coalesce(fields.Reviews, current.Reviews),
		patch.Coalesce(fields.Image, current.Image),
		patch.Coalesce(fields.Amenities, current.Amenities),
		patch.Coalesce(fields.Available, current.Available),
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update property", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "property not found")
	}
	return nil
}

func (r *PropertyRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE properties SET available = $1, updated_at = now() WHERE id = $2`,
		available, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set property availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "property not found")
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete property", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "property not found")
	}
	return nil
}

func scanListings(rows pgx.Rows) ([]*queries.ListingView, error) {
	views := make([]*queries.ListingView, 0)
	for rows.Next() {
		view, err := scanListing(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan property row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate property rows", err)
	}
	return views, nil
}

func scanListing(row pgx.Row) (*queries.ListingView, error) {
	var view queries.ListingView
	err := row.Scan(
		&view.ID, &view.Name, &view.Location, &view.Price, &view.Rating,
		&view.Reviews, &view.Image, &view.Amenities, &view.Available,
		&view.OwnerEmail, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
