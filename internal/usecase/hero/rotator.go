package hero

import (
	"context"
	"sync"
	"time"

	"azulhomes/internal/pkg/errs"
)

var ErrIndexOutOfRange = errs.New("hero image index out of range")

// DefaultImages is the landing page background slideshow.
var DefaultImages = []string{
	"/ocean-villa.jpg",
	"/image1.jpg",
	"/image2.jpg",
	"/image3.jpg",
	"/image4.jpg",
	"/image5.jpg",
	"/image6.jpg",
}

type State struct {
	Index  int
	Image  string
	Images []string
}

// Rotator cycles through the hero images on a fixed cadence. A manual Select
// jumps immediately but does not restart the ticker, so the next automatic
// advance still lands on schedule.
type Rotator struct {
	mu       sync.Mutex
	images   []string
	index    int
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewRotator(images []string, interval time.Duration) *Rotator {
	if len(images) == 0 {
		images = DefaultImages
	}
	return &Rotator{
		images:   images,
		interval: interval,
	}
}

func (r *Rotator) Current() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

func (r *Rotator) stateLocked() State {
	return State{
		Index:  r.index,
		Image:  r.images[r.index],
		Images: append([]string(nil), r.images...),
	}
}

// Advance moves to the next image, wrapping at the end.
func (r *Rotator) Advance() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % len(r.images)
	return r.stateLocked()
}

// Select jumps to a specific image without disturbing the rotation cadence.
func (r *Rotator) Select(index int) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.images) {
		return State{}, ErrIndexOutOfRange
	}
	r.index = index
	return r.stateLocked(), nil
}

// Start launches the background rotation. Stop or context cancellation ends
// it.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.loop(ctx)
}

func (r *Rotator) loop(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Advance()
		}
	}
}

func (r *Rotator) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	done := r.done
	r.cancel = nil
	r.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
}
