package interfaces

import (
	"context"

	"go-offline-agent/internal/models"
)

//go:generate mockgen -package=mock -source=submission_queue.go -destination=mock/submission_queue.go

// SubmissionQueue captures form submissions for deferred delivery
type SubmissionQueue interface {
	Enqueue(ctx context.Context, queue string, payload []byte) (*models.Submission, error)
	Pending(queue string) ([]models.Submission, error)
}
