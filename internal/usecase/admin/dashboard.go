package admin

import (
	"context"
	"math/rand"
	"sync"

	"azulhomes/internal/pkg/config"
	"azulhomes/internal/pkg/errs"
	"azulhomes/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrPropertyNotFound = errs.New("property not found")

// unavailableChance is the probability a property starts the dashboard
// session flagged unavailable.
const unavailableChance = 0.3

type Overview struct {
	TotalProperties       int
	AvailableProperties   int
	UnavailableProperties int
	TotalRevenue          int
	AverageRating         float64
}

type Session struct {
	Name  string
	Email string
}

// Dashboard holds a session-local copy of the catalog so availability toggles
// never leak into the stored listings. The copy is seeded lazily on first
// access with randomized availability.
type Dashboard struct {
	mu         sync.Mutex
	store      queries.ListingReadStore
	rng        *rand.Rand
	cfg        config.AdminConfig
	seeded     bool
	properties []*queries.ListingView
}

// NewDashboard takes the random source as a dependency so tests can seed it.
func NewDashboard(store queries.ListingReadStore, rng *rand.Rand, cfg config.AdminConfig) *Dashboard {
	return &Dashboard{
		store: store,
		rng:   rng,
		cfg:   cfg,
	}
}

func (d *Dashboard) seedLocked(ctx context.Context) error {
	if d.seeded {
		return nil
	}
	views, err := d.store.FindAll(ctx)
	if err != nil {
		return err
	}
	d.properties = make([]*queries.ListingView, 0, len(views))
	for _, v := range views {
		cp := *v
		cp.Amenities = append([]string(nil), v.Amenities...)
		cp.Available = d.rng.Float64() > unavailableChance
		d.properties = append(d.properties, &cp)
	}
	d.seeded = true
	return nil
}

func (d *Dashboard) Properties(ctx context.Context) ([]*queries.ListingView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.seedLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]*queries.ListingView, 0, len(d.properties))
	for _, p := range d.properties {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Toggle flips the availability of exactly one property and returns its new
// state.
func (d *Dashboard) Toggle(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.seedLocked(ctx); err != nil {
		return nil, err
	}
	for _, p := range d.properties {
		if p.ID == id {
			p.Available = !p.Available
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrPropertyNotFound
}

// Reset discards the session copy; the next access re-seeds with fresh random
// availability.
func (d *Dashboard) Reset(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seeded = false
	d.properties = nil
	return d.seedLocked(ctx)
}

func (d *Dashboard) Overview(ctx context.Context) (Overview, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.seedLocked(ctx); err != nil {
		return Overview{}, err
	}
	var stats Overview
	var ratingSum float64
	for _, p := range d.properties {
		stats.TotalProperties++
		if p.Available {
			stats.AvailableProperties++
		} else {
			stats.UnavailableProperties++
		}
		stats.TotalRevenue += p.Price
		ratingSum += p.Rating
	}
	if stats.TotalProperties > 0 {
		stats.AverageRating = ratingSum / float64(stats.TotalProperties)
	}
	return stats, nil
}

// MockLogin is the demo sign-in used by the dashboard. It performs no
// credential check and simply labels the session with the configured
// display name.
func (d *Dashboard) MockLogin(email string) Session {
	return Session{
		Name:  d.cfg.DisplayName,
		Email: email,
	}
}
