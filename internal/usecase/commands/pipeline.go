package commands

import (
	"context"
	"strings"
	"time"

	"azulhomes/internal/domain/submission"
	"azulhomes/internal/pkg/deadline"
	"azulhomes/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// How long the in-flight flag outlives a successful delivery before it
	// drops, and how long the success outcome stays visible before settling
	// back to idle.
	dropInFlightDelay = time.Second
	settleIdleDelay   = 3 * time.Second
)

// ErrSubmissionNotFound is returned when polling an unknown attempt ID.
var ErrSubmissionNotFound = errs.New("submission not found")

// SubmitResult identifies one submission attempt and carries the outcome at
// the moment the delivery race settled. Later transitions (in-flight drop,
// settle to idle) are observable through the registry.
type SubmitResult struct {
	SubmissionID uuid.UUID
	Outcome      submission.Snapshot
}

// pipeline is the shared validate -> send -> race-deadline -> reconcile flow
// behind the booking and contact forms. Delivery errors never propagate past
// it; they become the failure outcome.
type pipeline struct {
	mailer   Mailer
	registry *submission.Registry
	timeout  time.Duration
	after    After
}

// run executes one submission attempt against its own fresh tracker.
// onDelivered fires only on successful delivery, before the delayed
// transitions are scheduled.
func (p *pipeline) run(
	ctx context.Context,
	templateID string,
	params map[string]any,
	failurePrefix string,
	successMessage string,
	onDelivered func(),
) *SubmitResult {
	id, tracker := p.registry.Open()
	tracker.Begin()

	res := deadline.Await(ctx, p.timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.mailer.Send(ctx, templateID, params)
	})

	switch {
	case res.TimedOut:
		tracker.Fail(failurePrefix + "The request timed out. Please try again.")
	case res.Err != nil:
		tracker.Fail(failurePrefix + classifyDeliveryError(res.Err))
	default:
		tracker.Succeed(successMessage)
		if onDelivered != nil {
			onDelivered()
		}
		p.after(dropInFlightDelay, tracker.DropInFlight)
		p.after(settleIdleDelay, tracker.SettleIdle)
	}

	return &SubmitResult{SubmissionID: id, Outcome: tracker.Snapshot()}
}

// classifyDeliveryError distinguishes timeout, misconfigured credentials and
// everything else by inspecting the error text, the way the delivery channel
// reports them.
func classifyDeliveryError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "timeout"):
		return "The request timed out. Please try again."
	case strings.Contains(msg, "credentials"):
		return "Email service configuration error. Please contact support."
	default:
		return "Error: " + msg
	}
}

// Outcome returns the current snapshot for a past attempt.
func (p *pipeline) Outcome(id uuid.UUID) (submission.Snapshot, error) {
	tracker, ok := p.registry.Find(id)
	if !ok {
		return submission.Snapshot{}, ErrSubmissionNotFound
	}
	return tracker.Snapshot(), nil
}
