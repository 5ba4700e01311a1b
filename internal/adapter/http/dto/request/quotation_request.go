package request

import (
	"time"

	"hrx_backoffice/internal/domain/entities"
)

// RequestQuotationRequest opens a pending quotation asking one supplier
// to price a batch of equipment lines.
type RequestQuotationRequest struct {
	SupplierID       string   `json:"supplier_id" binding:"required"`
	EquipmentItemIDs []string `json:"equipment_item_ids" binding:"required"`
}

// SubmitQuotationRequest carries the supplier's prices. UnitPrice is
// the per-unit daily price applied to the covered equipment lines on
// acceptance; the fee fields are informational.
type SubmitQuotationRequest struct {
	UnitPrice   *float64 `json:"unit_price" binding:"required"`
	TotalPrice  *float64 `json:"total_price"`
	DeliveryFee *float64 `json:"delivery_fee"`
	SetupFee    *float64 `json:"setup_fee"`

	ValidUntil *time.Time `json:"valid_until"`
}

func (r SubmitQuotationRequest) ToEntity() entities.Quotation {
	return entities.Quotation{
		UnitPriceCents:   toCentsPtr(r.UnitPrice),
		TotalPriceCents:  toCentsPtr(r.TotalPrice),
		DeliveryFeeCents: toCentsPtr(r.DeliveryFee),
		SetupFeeCents:    toCentsPtr(r.SetupFee),
		ValidUntil:       r.ValidUntil,
	}
}
