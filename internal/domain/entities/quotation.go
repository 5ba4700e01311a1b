package entities

import "time"

// QuotationStatus represents the lifecycle of a supplier quotation.
//
// pending -> submitted -> {accepted | rejected | superseded}
//
// accepted, rejected and superseded are terminal; a quotation never
// re-opens. At most one quotation per equipment line may ever reach
// accepted — when one is accepted, every other non-terminal quotation
// covering the same line is forced to superseded.

type QuotationStatus string

const (
	QuotationStatusPending    QuotationStatus = "pending"
	QuotationStatusSubmitted  QuotationStatus = "submitted"
	QuotationStatusAccepted   QuotationStatus = "accepted"
	QuotationStatusRejected   QuotationStatus = "rejected"
	QuotationStatusSuperseded QuotationStatus = "superseded"
)

// Terminal reports whether the status admits no further transition.
func (s QuotationStatus) Terminal() bool {
	switch s {
	case QuotationStatusAccepted, QuotationStatusRejected, QuotationStatusSuperseded:
		return true
	}
	return false
}

// Quotation is one supplier's priced response to a batch of equipment
// line items.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Price fields are nil until the supplier submits; all amounts are
// int64 cents. UnitPriceCents is the per-unit daily price fed into the
// covered equipment lines on acceptance.
type Quotation struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	SupplierID string `json:"supplier_id"`

	// Equipment line items this quotation batch covers.
	EquipmentItemIDs []string `json:"equipment_item_ids"`

	Status QuotationStatus `json:"status"`

	TotalPriceCents  *int64 `json:"total_price_cents,omitempty"`
	UnitPriceCents   *int64 `json:"unit_price_cents,omitempty"`
	DeliveryFeeCents *int64 `json:"delivery_fee_cents,omitempty"`
	SetupFeeCents    *int64 `json:"setup_fee_cents,omitempty"`

	ValidUntil *time.Time `json:"valid_until,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// Covers reports whether the quotation batch includes the given
// equipment line item.
func (q Quotation) Covers(equipmentItemID string) bool {
	for _, id := range q.EquipmentItemIDs {
		if id == equipmentItemID {
			return true
		}
	}
	return false
}
