package commands

import (
	"azulhomes/internal/domain/submission"

	"github.com/google/uuid"
)

// SubmissionQueries exposes attempt outcomes for polling, independent of
// which form produced the attempt.
type SubmissionQueries interface {
	Outcome(id uuid.UUID) (submission.Snapshot, error)
}

type submissionQueriesImpl struct {
	registry *submission.Registry
}

func NewSubmissionQueries(registry *submission.Registry) SubmissionQueries {
	return &submissionQueriesImpl{registry: registry}
}

func (s *submissionQueriesImpl) Outcome(id uuid.UUID) (submission.Snapshot, error) {
	tracker, ok := s.registry.Find(id)
	if !ok {
		return submission.Snapshot{}, ErrSubmissionNotFound
	}
	return tracker.Snapshot(), nil
}
