package response

import (
	"azulhomes/internal/domain/submission"
	"azulhomes/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmissionResponse struct {
	SubmissionID uuid.UUID `json:"submissionId"`
	Status       string    `json:"status"`
	InFlight     bool      `json:"inFlight"`
	Message      string    `json:"message,omitempty"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmissionResponse {
	return &SubmissionResponse{
		SubmissionID: r.SubmissionID,
		Status:       string(r.Outcome.Status),
		InFlight:     r.Outcome.InFlight,
		Message:      r.Outcome.Message,
	}
}

func FromSnapshot(id uuid.UUID, snap submission.Snapshot) *SubmissionResponse {
	return &SubmissionResponse{
		SubmissionID: id,
		Status:       string(snap.Status),
		InFlight:     snap.InFlight,
		Message:      snap.Message,
	}
}
