package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hrx_backoffice/internal/domain/entities"
	"hrx_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidQuotationID     = errors.New("invalid quotation id")
	ErrQuotationNotFound      = errors.New("quotation not found")
	ErrQuotationNotPending    = errors.New("quotation is not pending")
	ErrQuotationNotSubmitted  = errors.New("quotation is not submitted")
	ErrQuotationTerminal      = errors.New("quotation already in a terminal state")
	ErrInvalidSupplierID      = errors.New("invalid supplier id")
	ErrNoEquipmentItems       = errors.New("quotation must cover at least one equipment item")
	ErrInvalidQuotationPrice  = errors.New("invalid quotation price")
	ErrEquipmentItemNotFound  = errors.New("equipment line item not found in project")
	ErrEquipmentAlreadyQuoted = errors.New("equipment line already quoted by an accepted quotation")
)

// IQuotationUseCase drives the supplier-quotation lifecycle:
// request -> submit -> accept/reject, with acceptance feeding the
// winning price into the covered equipment lines and recomputing the
// project aggregates.

type IQuotationUseCase interface {
	RequestQuotation(ctx context.Context, projectID, supplierID string, equipmentItemIDs []string) (entities.Quotation, error)
	SubmitQuotation(ctx context.Context, id string, prices entities.Quotation) (entities.Quotation, error)
	AcceptQuotation(ctx context.Context, id string) (entities.Aggregates, error)
	RejectQuotation(ctx context.Context, id string) (entities.Quotation, error)
	GetQuotation(ctx context.Context, id string) (entities.Quotation, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Quotation, error)
}

type QuotationUseCase struct {
	quotations interfaces.IQuotationRepository
	lineItems  interfaces.ILineItemRepository
	recalc     IRecalculator
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	quotations interfaces.IQuotationRepository,
	lineItems interfaces.ILineItemRepository,
	recalc IRecalculator,
) *QuotationUseCase {
	return &QuotationUseCase{quotations: quotations, lineItems: lineItems, recalc: recalc}
}

// RequestQuotation opens a pending quotation for a supplier covering a
// batch of equipment lines, and moves those lines into quoting. Every
// requested line must belong to the project and not be quoted already.
func (u *QuotationUseCase) RequestQuotation(ctx context.Context, projectID, supplierID string, equipmentItemIDs []string) (entities.Quotation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Quotation{}, ErrInvalidProjectID
	}
	supplierID = strings.TrimSpace(supplierID)
	if supplierID == "" {
		return entities.Quotation{}, ErrInvalidSupplierID
	}
	if len(equipmentItemIDs) == 0 {
		return entities.Quotation{}, ErrNoEquipmentItems
	}

	lines, err := u.lineItems.ListEquipmentByProject(ctx, projectID)
	if err != nil {
		return entities.Quotation{}, err
	}
	byID := make(map[string]entities.EquipmentLineItem, len(lines))
	for _, line := range lines {
		byID[line.ID] = line
	}
	for _, itemID := range equipmentItemIDs {
		line, ok := byID[itemID]
		if !ok {
			return entities.Quotation{}, ErrEquipmentItemNotFound
		}
		if line.Status == entities.EquipmentStatusQuoted {
			return entities.Quotation{}, ErrEquipmentAlreadyQuoted
		}
	}

	q := entities.Quotation{
		ID:               uuid.NewString(),
		ProjectID:        projectID,
		SupplierID:       supplierID,
		EquipmentItemIDs: equipmentItemIDs,
		Status:           entities.QuotationStatusPending,
		CreatedAt:        time.Now().UTC(),
	}
	created, err := u.quotations.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}

	for _, itemID := range equipmentItemIDs {
		marked, err := u.lineItems.MarkEquipmentQuoting(ctx, itemID)
		if err != nil {
			return entities.Quotation{}, err
		}
		if marked.ID == "" {
			// An acceptance quoted this line between the check above
			// and the transition.
			return entities.Quotation{}, ErrEquipmentAlreadyQuoted
		}
	}
	return created, nil
}

// SubmitQuotation records the supplier's priced response.
func (u *QuotationUseCase) SubmitQuotation(ctx context.Context, id string, prices entities.Quotation) (entities.Quotation, error) {
	current, err := u.GetQuotation(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if current.Status != entities.QuotationStatusPending {
		return entities.Quotation{}, ErrQuotationNotPending
	}
	if prices.UnitPriceCents == nil || *prices.UnitPriceCents < 0 {
		return entities.Quotation{}, ErrInvalidQuotationPrice
	}
	if (prices.TotalPriceCents != nil && *prices.TotalPriceCents < 0) ||
		(prices.DeliveryFeeCents != nil && *prices.DeliveryFeeCents < 0) ||
		(prices.SetupFeeCents != nil && *prices.SetupFeeCents < 0) {
		return entities.Quotation{}, ErrInvalidQuotationPrice
	}

	updated, err := u.quotations.MarkSubmitted(ctx, current.ID, prices)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		// Lost a race with another transition.
		return entities.Quotation{}, ErrQuotationNotPending
	}
	return updated, nil
}

// AcceptQuotation transitions exactly one submitted quotation to
// accepted for its equipment lines.
//
// Order matters for the at-most-one-accepted invariant: the equipment
// lines are resolved first through conditional writes, so a competing
// acceptance that lost the race fails before any quotation status
// changes. Then the quotation is accepted, competitors covering the
// same lines are superseded, and the project aggregates are
// recalculated and returned.
//
// Each line records the quotation that resolved it, and the conditional
// write accepts a rewrite by the same quotation. A client retrying an
// acceptance that failed partway therefore converges on the same
// outcome instead of being rejected by its own earlier writes.
func (u *QuotationUseCase) AcceptQuotation(ctx context.Context, id string) (entities.Aggregates, error) {
	quotation, err := u.GetQuotation(ctx, id)
	if err != nil {
		return entities.Aggregates{}, err
	}
	if quotation.Status != entities.QuotationStatusSubmitted {
		return entities.Aggregates{}, ErrQuotationNotSubmitted
	}
	if quotation.UnitPriceCents == nil {
		return entities.Aggregates{}, ErrInvalidQuotationPrice
	}

	for _, itemID := range quotation.EquipmentItemIDs {
		resolved, err := u.lineItems.ResolveEquipment(ctx, itemID, *quotation.UnitPriceCents, quotation.ID)
		if err != nil {
			return entities.Aggregates{}, err
		}
		if resolved.ID == "" {
			// A concurrent acceptance already quoted this line.
			return entities.Aggregates{}, ErrEquipmentAlreadyQuoted
		}
	}

	accepted, err := u.quotations.MarkAccepted(ctx, quotation.ID)
	if err != nil {
		return entities.Aggregates{}, err
	}
	if accepted.ID == "" {
		return entities.Aggregates{}, ErrQuotationNotSubmitted
	}

	u.supersedeCompetitors(ctx, accepted)

	return u.recalc.Recalculate(ctx, accepted.ProjectID)
}

// supersedeCompetitors forces every other non-terminal quotation that
// covers any of the winner's equipment lines into superseded. Each
// transition is an independent conditional write; a competitor that
// reached a terminal state in the meantime is skipped silently.
//
// This pass is best-effort and never fails the acceptance: the resolved
// equipment lines are the authoritative record of the winner, so a
// competitor left submitted by a failed write here is stale bookkeeping
// only. Accepting it later fails at ResolveEquipment because its lines
// are already quoted by another quotation, keeping the invariant intact
// until a subsequent acceptance sweep or manual retry catches it up.
func (u *QuotationUseCase) supersedeCompetitors(ctx context.Context, winner entities.Quotation) {
	others, err := u.quotations.ListByProject(ctx, winner.ProjectID)
	if err != nil {
		log.WithFields(log.Fields{"project_id": winner.ProjectID, "quotation_id": winner.ID}).
			WithError(err).Warn("could not list competing quotations")
		return
	}
	for _, other := range others {
		if other.ID == winner.ID || other.Status.Terminal() {
			continue
		}
		overlaps := false
		for _, itemID := range winner.EquipmentItemIDs {
			if other.Covers(itemID) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			continue
		}
		if _, err := u.quotations.MarkSuperseded(ctx, other.ID); err != nil {
			log.WithFields(log.Fields{"quotation_id": other.ID}).
				WithError(err).Warn("could not supersede competing quotation")
		}
	}
}

func (u *QuotationUseCase) RejectQuotation(ctx context.Context, id string) (entities.Quotation, error) {
	current, err := u.GetQuotation(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if current.Status.Terminal() {
		return entities.Quotation{}, ErrQuotationTerminal
	}

	updated, err := u.quotations.MarkRejected(ctx, current.ID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationTerminal
	}
	return updated, nil
}

func (u *QuotationUseCase) GetQuotation(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.quotations.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.Quotation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.quotations.ListByProject(ctx, projectID)
}
