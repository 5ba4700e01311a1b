package interfaces

import (
	"context"

	"hrx_backoffice/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Every status transition is a conditional write on the current status,
// so concurrent transitions cannot double-apply. As with the other
// repositories, a failed condition or a missing row comes back as a
// zero-value Quotation with a nil error.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Quotation, error)

	// MarkSubmitted moves pending -> submitted with the supplier's prices.
	MarkSubmitted(ctx context.Context, id string, prices entities.Quotation) (entities.Quotation, error)
	// MarkAccepted moves submitted -> accepted.
	MarkAccepted(ctx context.Context, id string) (entities.Quotation, error)
	// MarkRejected moves pending|submitted -> rejected.
	MarkRejected(ctx context.Context, id string) (entities.Quotation, error)
	// MarkSuperseded moves pending|submitted -> superseded.
	MarkSuperseded(ctx context.Context, id string) (entities.Quotation, error)
}
