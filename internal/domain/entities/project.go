package entities

import "time"

// ProjectStatus represents the lifecycle of an event project.
//
// Domain notes:
//   - The pricing-service is the source of truth for project cost state.
//   - Aggregates are derived projections; they are recomputed on every
//     line-item or accepted-quotation change and never hand-edited.

type ProjectStatus string

const (
	ProjectStatusNew         ProjectStatus = "new"
	ProjectStatusAnalyzing   ProjectStatus = "analyzing"
	ProjectStatusQuoting     ProjectStatus = "quoting"
	ProjectStatusQuoted      ProjectStatus = "quoted"
	ProjectStatusProposed    ProjectStatus = "proposed"
	ProjectStatusApproved    ProjectStatus = "approved"
	ProjectStatusInExecution ProjectStatus = "in_execution"
	ProjectStatusCompleted   ProjectStatus = "completed"
	ProjectStatusCancelled   ProjectStatus = "cancelled"
)

// EquipmentStatus tracks how far an equipment line has progressed through
// the quotation funnel. Transitions only move forward:
// pending -> quoting -> quoted.

type EquipmentStatus string

const (
	EquipmentStatusPending EquipmentStatus = "pending"
	EquipmentStatusQuoting EquipmentStatus = "quoting"
	EquipmentStatusQuoted  EquipmentStatus = "quoted"
)

// Aggregates is the derived financial summary of a project.
//
// Monetary representation:
//   - All amounts are int64 minor currency units (cents).
//   - MarginBps is the applied profit margin in basis points
//     (3500 = 35.00%).
//
// Invariants:
//   - TotalCostCents == TotalTeamCostCents + TotalEquipmentCostCents
//   - TotalClientPriceCents == TotalCostCents + TotalProfitCents
type Aggregates struct {
	TotalTeamCostCents      int64 `json:"total_team_cost_cents"`
	TotalEquipmentCostCents int64 `json:"total_equipment_cost_cents"`
	TotalCostCents          int64 `json:"total_cost_cents"`
	TotalProfitCents        int64 `json:"total_profit_cents"`
	TotalClientPriceCents   int64 `json:"total_client_price_cents"`
	MarginBps               int64 `json:"margin_bps"`
}

// Project is one client event engagement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The urgency flag is fixed at creation. MarginOverrideBps, when set,
// wins over the urgency rule and suppresses the urgency alert.
// UrgencyNotifiedAt records the one-time urgency notification so
// repeated recomputations never re-send it.
type Project struct {
	ID            string `json:"id"`
	ProjectNumber string `json:"project_number"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email,omitempty"`

	EventName    string  `json:"event_name"`
	EventType    string  `json:"event_type"`
	EventDate    string  `json:"event_date,omitempty"`
	VenueAddress string  `json:"venue_address,omitempty"`
	VenueCity    string  `json:"venue_city,omitempty"`
	VenueState   string  `json:"venue_state,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`

	IsUrgent          bool   `json:"is_urgent"`
	MarginOverrideBps *int64 `json:"margin_override_bps,omitempty"`

	Status     ProjectStatus `json:"status"`
	Aggregates Aggregates    `json:"aggregates"`

	UrgencyNotifiedAt *time.Time `json:"urgency_notified_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TeamLineItem is one staffing need within a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// DailyRateCents is nil until a rate is assigned (e.g. after a
// professional accepts an invitation); an unrated line contributes zero
// to the aggregates.
type TeamLineItem struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`

	Role     string `json:"role"`
	Category string `json:"category"`

	Quantity     int `json:"quantity"`
	DurationDays int `json:"duration_days"`

	DailyRateCents *int64 `json:"daily_rate_cents,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineTotalCents is quantity x duration x daily rate, or 0 while the
// rate is unassigned.
func (t TeamLineItem) LineTotalCents() int64 {
	if t.DailyRateCents == nil {
		return 0
	}
	return int64(t.Quantity) * int64(t.DurationDays) * *t.DailyRateCents
}

// EquipmentLineItem is one equipment need within a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// ResolvedUnitPriceCents is set when a quotation covering this line is
// accepted; at that point Status becomes quoted and
// ResolvedByQuotationID records the winner. Only that same quotation
// may write the line again, which lets an interrupted acceptance be
// retried to completion.
type EquipmentLineItem struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`

	Name     string `json:"name"`
	Category string `json:"category"`

	Quantity     int `json:"quantity"`
	DurationDays int `json:"duration_days"`

	Status                 EquipmentStatus `json:"status"`
	ResolvedUnitPriceCents *int64          `json:"resolved_unit_price_cents,omitempty"`
	ResolvedByQuotationID  string          `json:"resolved_by_quotation_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineTotalCents is quantity x duration x resolved unit price, or 0
// while no quotation has been accepted for this line.
func (e EquipmentLineItem) LineTotalCents() int64 {
	if e.ResolvedUnitPriceCents == nil {
		return 0
	}
	return int64(e.Quantity) * int64(e.DurationDays) * *e.ResolvedUnitPriceCents
}
