package commands

import (
	"context"
	"time"
)

// Mailer is the outbound email-delivery channel. The service identifier and
// public key are fixed inside the implementation; only the template and the
// flat payload vary per submission.
type Mailer interface {
	Send(ctx context.Context, templateID string, params map[string]any) error
}

// After schedules fn to run once d has elapsed. Injectable so tests can run
// the pipeline's delayed state transitions synchronously.
type After func(d time.Duration, fn func())

func RealAfter() After {
	return func(d time.Duration, fn func()) {
		time.AfterFunc(d, fn)
	}
}
