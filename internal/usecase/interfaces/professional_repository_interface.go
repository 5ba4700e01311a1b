package interfaces

import (
	"context"

	"hrx_backoffice/internal/domain/matching"
)

// IProfessionalRepository abstracts the registered-professionals store
// consumed by the suggestion scorer.
//
// eventDate (YYYY-MM-DD, may be empty) lets the store annotate each
// candidate's availability for that date.
type IProfessionalRepository interface {
	ListApproved(ctx context.Context, eventDate string) ([]matching.Candidate, error)
}
