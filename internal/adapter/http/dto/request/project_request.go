package request

import (
	"hrx_backoffice/internal/domain/entities"
)

// CreateProjectRequest is the admin-facing payload for opening a new
// event project. Monetary inputs arrive in major currency units and the
// margin override as a percentage; both are converted on entry so the
// rest of the service only ever sees cents and basis points.
type CreateProjectRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email"`

	EventName    string  `json:"event_name" binding:"required"`
	EventType    string  `json:"event_type"`
	EventDate    string  `json:"event_date"`
	VenueAddress string  `json:"venue_address"`
	VenueCity    string  `json:"venue_city"`
	VenueState   string  `json:"venue_state"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`

	IsUrgent              bool     `json:"is_urgent"`
	MarginOverridePercent *float64 `json:"margin_override_percent"`
}

func (r CreateProjectRequest) ToEntity() entities.Project {
	p := entities.Project{
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,

		EventName:    r.EventName,
		EventType:    r.EventType,
		EventDate:    r.EventDate,
		VenueAddress: r.VenueAddress,
		VenueCity:    r.VenueCity,
		VenueState:   r.VenueState,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,

		IsUrgent: r.IsUrgent,
	}
	if r.MarginOverridePercent != nil {
		bps := percentToBps(*r.MarginOverridePercent)
		p.MarginOverrideBps = &bps
	}
	return p
}

// AddTeamMemberRequest adds one staffing line to a project. DailyRate
// is optional; an unrated line prices at zero until a rate is set.
type AddTeamMemberRequest struct {
	Role     string `json:"role" binding:"required"`
	Category string `json:"category"`

	Quantity     int `json:"quantity" binding:"required"`
	DurationDays int `json:"duration_days" binding:"required"`

	DailyRate *float64 `json:"daily_rate"`
}

func (r AddTeamMemberRequest) ToEntity(projectID string) entities.TeamLineItem {
	return entities.TeamLineItem{
		ProjectID:      projectID,
		Role:           r.Role,
		Category:       r.Category,
		Quantity:       r.Quantity,
		DurationDays:   r.DurationDays,
		DailyRateCents: toCentsPtr(r.DailyRate),
	}
}

// SetTeamMemberRateRequest assigns or corrects a staffing line's daily
// rate.
type SetTeamMemberRateRequest struct {
	DailyRate *float64 `json:"daily_rate" binding:"required"`
}

func (r SetTeamMemberRateRequest) RateCents() int64 {
	if r.DailyRate == nil {
		return 0
	}
	return toCents(*r.DailyRate)
}

// AddEquipmentRequest adds one equipment line to a project. Equipment
// is always priced through supplier quotations, so no rate is accepted
// here.
type AddEquipmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`

	Quantity     int `json:"quantity" binding:"required"`
	DurationDays int `json:"duration_days" binding:"required"`
}

func (r AddEquipmentRequest) ToEntity(projectID string) entities.EquipmentLineItem {
	return entities.EquipmentLineItem{
		ProjectID:    projectID,
		Name:         r.Name,
		Category:     r.Category,
		Quantity:     r.Quantity,
		DurationDays: r.DurationDays,
	}
}

// SuggestProfessionalsRequest narrows the suggestion query. All fields
// are optional; zero values fall back to the matcher defaults.
type SuggestProfessionalsRequest struct {
	Categories    []string `form:"categories"`
	MaxDistanceKm float64  `form:"max_distance_km"`
	MinScore      float64  `form:"min_score"`
	Limit         int      `form:"limit"`
}
