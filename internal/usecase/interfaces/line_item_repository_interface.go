package interfaces

import (
	"context"

	"hrx_backoffice/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for the two kinds
// of project line items.
//
// ResolveEquipment is the guard for the at-most-one-accepted invariant:
// it must be a conditional write that fails (returning a zero-value
// item, nil error) when the line is already quoted by a different
// quotation, so two concurrent acceptances for the same line resolve
// to one winner while a retry of the winner stays a no-op success.

type ILineItemRepository interface {
	CreateTeamMember(ctx context.Context, t entities.TeamLineItem) (entities.TeamLineItem, error)
	ListTeamByProject(ctx context.Context, projectID string) ([]entities.TeamLineItem, error)
	UpdateTeamMemberRate(ctx context.Context, id string, dailyRateCents int64) (entities.TeamLineItem, error)

	CreateEquipment(ctx context.Context, e entities.EquipmentLineItem) (entities.EquipmentLineItem, error)
	ListEquipmentByProject(ctx context.Context, projectID string) ([]entities.EquipmentLineItem, error)
	// MarkEquipmentQuoting moves pending -> quoting; an already-quoted
	// line is left untouched (zero-value item, nil error).
	MarkEquipmentQuoting(ctx context.Context, id string) (entities.EquipmentLineItem, error)
	// ResolveEquipment sets the resolved unit price and status quoted,
	// recording quotationID as the winner; a line already quoted by
	// another quotation is left untouched.
	ResolveEquipment(ctx context.Context, id string, unitPriceCents int64, quotationID string) (entities.EquipmentLineItem, error)
}
