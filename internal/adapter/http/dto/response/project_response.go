package response

import (
	"time"

	"hrx_backoffice/internal/domain/entities"
	"hrx_backoffice/internal/domain/matching"
)

// AggregatesResponse presents the derived financial summary in major
// currency units with the margin as a percentage.
type AggregatesResponse struct {
	TotalTeamCost      float64 `json:"total_team_cost"`
	TotalEquipmentCost float64 `json:"total_equipment_cost"`
	TotalCost          float64 `json:"total_cost"`
	TotalProfit        float64 `json:"total_profit"`
	TotalClientPrice   float64 `json:"total_client_price"`
	MarginPercent      float64 `json:"margin_percent"`
}

func FromAggregates(a entities.Aggregates) AggregatesResponse {
	return AggregatesResponse{
		TotalTeamCost:      fromCents(a.TotalTeamCostCents),
		TotalEquipmentCost: fromCents(a.TotalEquipmentCostCents),
		TotalCost:          fromCents(a.TotalCostCents),
		TotalProfit:        fromCents(a.TotalProfitCents),
		TotalClientPrice:   fromCents(a.TotalClientPriceCents),
		MarginPercent:      bpsToPercent(a.MarginBps),
	}
}

type ProjectResponse struct {
	ID            string `json:"id"`
	ProjectNumber string `json:"project_number"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email,omitempty"`

	EventName    string  `json:"event_name"`
	EventType    string  `json:"event_type,omitempty"`
	EventDate    string  `json:"event_date,omitempty"`
	VenueAddress string  `json:"venue_address,omitempty"`
	VenueCity    string  `json:"venue_city,omitempty"`
	VenueState   string  `json:"venue_state,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`

	IsUrgent              bool     `json:"is_urgent"`
	MarginOverridePercent *float64 `json:"margin_override_percent,omitempty"`

	Status     string             `json:"status"`
	Aggregates AggregatesResponse `json:"aggregates"`

	UrgencyNotifiedAt *time.Time `json:"urgency_notified_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:            p.ID,
		ProjectNumber: p.ProjectNumber,

		ClientName:  p.ClientName,
		ClientEmail: p.ClientEmail,

		EventName:    p.EventName,
		EventType:    p.EventType,
		EventDate:    p.EventDate,
		VenueAddress: p.VenueAddress,
		VenueCity:    p.VenueCity,
		VenueState:   p.VenueState,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,

		IsUrgent: p.IsUrgent,

		Status:     string(p.Status),
		Aggregates: FromAggregates(p.Aggregates),

		UrgencyNotifiedAt: p.UrgencyNotifiedAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.MarginOverrideBps != nil {
		pct := bpsToPercent(*p.MarginOverrideBps)
		resp.MarginOverridePercent = &pct
	}
	return resp
}

type TeamMemberResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`

	Role     string `json:"role"`
	Category string `json:"category,omitempty"`

	Quantity     int `json:"quantity"`
	DurationDays int `json:"duration_days"`

	DailyRate *float64 `json:"daily_rate,omitempty"`
	LineTotal float64  `json:"line_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTeamMember(m entities.TeamLineItem) TeamMemberResponse {
	return TeamMemberResponse{
		ID:        m.ID,
		ProjectID: m.ProjectID,

		Role:     m.Role,
		Category: m.Category,

		Quantity:     m.Quantity,
		DurationDays: m.DurationDays,

		DailyRate: fromCentsPtr(m.DailyRateCents),
		LineTotal: fromCents(m.LineTotalCents()),

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type EquipmentResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`

	Name     string `json:"name"`
	Category string `json:"category,omitempty"`

	Quantity     int `json:"quantity"`
	DurationDays int `json:"duration_days"`

	Status            string   `json:"status"`
	ResolvedUnitPrice *float64 `json:"resolved_unit_price,omitempty"`
	LineTotal         float64  `json:"line_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEquipment(e entities.EquipmentLineItem) EquipmentResponse {
	return EquipmentResponse{
		ID:        e.ID,
		ProjectID: e.ProjectID,

		Name:     e.Name,
		Category: e.Category,

		Quantity:     e.Quantity,
		DurationDays: e.DurationDays,

		Status:            string(e.Status),
		ResolvedUnitPrice: fromCentsPtr(e.ResolvedUnitPriceCents),
		LineTotal:         fromCents(e.LineTotalCents()),

		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// SuggestionResponse is one ranked professional with the component
// scores that produced the ranking.
type SuggestionResponse struct {
	ProfessionalID string   `json:"professional_id"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	City           string   `json:"city,omitempty"`
	State          string   `json:"state,omitempty"`

	DistanceKm float64 `json:"distance_km"`

	TotalScore        float64 `json:"total_score"`
	DistanceScore     float64 `json:"distance_score"`
	CategoryScore     float64 `json:"category_score"`
	ExperienceScore   float64 `json:"experience_score"`
	AvailabilityScore float64 `json:"availability_score"`
	PerformanceScore  float64 `json:"performance_score"`
}

func FromSuggestion(s matching.Suggestion) SuggestionResponse {
	return SuggestionResponse{
		ProfessionalID: s.Candidate.ID,
		FullName:       s.Candidate.FullName,
		Email:          s.Candidate.Email,
		Phone:          s.Candidate.Phone,
		Categories:     s.Candidate.Categories,
		City:           s.Candidate.City,
		State:          s.Candidate.State,

		DistanceKm: s.DistanceKm,

		TotalScore:        s.TotalScore,
		DistanceScore:     s.DistanceScore,
		CategoryScore:     s.CategoryScore,
		ExperienceScore:   s.ExperienceScore,
		AvailabilityScore: s.AvailabilityScore,
		PerformanceScore:  s.PerformanceScore,
	}
}

func FromSuggestions(suggestions []matching.Suggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, FromSuggestion(s))
	}
	return out
}
