package response

import (
	"time"

	"hrx_backoffice/internal/domain/entities"
)

type QuotationResponse struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	SupplierID string `json:"supplier_id"`

	EquipmentItemIDs []string `json:"equipment_item_ids"`

	Status string `json:"status"`

	UnitPrice   *float64 `json:"unit_price,omitempty"`
	TotalPrice  *float64 `json:"total_price,omitempty"`
	DeliveryFee *float64 `json:"delivery_fee,omitempty"`
	SetupFee    *float64 `json:"setup_fee,omitempty"`

	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:         q.ID,
		ProjectID:  q.ProjectID,
		SupplierID: q.SupplierID,

		EquipmentItemIDs: q.EquipmentItemIDs,

		Status: string(q.Status),

		UnitPrice:   fromCentsPtr(q.UnitPriceCents),
		TotalPrice:  fromCentsPtr(q.TotalPriceCents),
		DeliveryFee: fromCentsPtr(q.DeliveryFeeCents),
		SetupFee:    fromCentsPtr(q.SetupFeeCents),

		ValidUntil:  q.ValidUntil,
		CreatedAt:   q.CreatedAt,
		SubmittedAt: q.SubmittedAt,
		RespondedAt: q.RespondedAt,
	}
}

func FromQuotations(quotations []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, FromQuotation(q))
	}
	return out
}

// AcceptQuotationResponse returns the accepted quotation together with
// the project aggregates recomputed from the newly resolved lines.
type AcceptQuotationResponse struct {
	Quotation  QuotationResponse  `json:"quotation"`
	Aggregates AggregatesResponse `json:"aggregates"`
}
