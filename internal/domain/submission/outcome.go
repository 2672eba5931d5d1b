package submission

import "sync"

// Status is the tri-state result of one submission attempt. The in-flight
// flag is orthogonal: a success stays visible for a short window while
// in-flight has already been dropped.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

type Snapshot struct {
	Status   Status
	InFlight bool
	Message  string
}

// Tracker reconciles the outcome of submission attempts.
// Transitions: idle -> in-flight -> {success, failure}. From success, control
// returns to idle after a delay driven by the pipeline; from failure, only a
// new attempt overwrites the message.
type Tracker struct {
	mu       sync.Mutex
	status   Status
	inFlight bool
	message  string
}

func NewTracker() *Tracker {
	return &Tracker{status: StatusIdle}
}

// Begin marks a new attempt in flight and clears any prior outcome.
func (t *Tracker) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusIdle
	t.inFlight = true
	t.message = ""
}

// Succeed records a successful delivery. The in-flight flag is left set;
// the pipeline drops it separately so the disabled state outlives the call.
func (t *Tracker) Succeed(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusSuccess
	t.message = message
}

// Fail records a failed or timed-out delivery and clears in-flight
// immediately.
func (t *Tracker) Fail(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusFailure
	t.inFlight = false
	t.message = message
}

// DropInFlight clears the in-flight flag while leaving the outcome visible.
func (t *Tracker) DropInFlight() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inFlight = false
}

// SettleIdle returns the tracker to idle, clearing the visible outcome.
func (t *Tracker) SettleIdle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = StatusIdle
	t.message = ""
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		Status:   t.status,
		InFlight: t.inFlight,
		Message:  t.message,
	}
}
