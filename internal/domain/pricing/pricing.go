// Package pricing computes a project's financial aggregates from its
// line items and decides which profit margin applies.
//
// Everything here is a pure function of its inputs: no I/O, no shared
// state, safe to call from concurrent requests. All monetary amounts
// are int64 minor currency units (cents); margins are basis points.
// The single place rounding can occur — applying the margin to the
// total cost — rounds half-up to the cent, matching the numeric(12,2)
// columns of the surrounding system.
package pricing

import (
	"errors"
	"fmt"

	"hrx_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Default margins in basis points: 35% for standard projects, 80% when
// the client flagged the event as urgent.
const (
	StandardMarginBps int64 = 3500
	UrgentMarginBps   int64 = 8000

	maxMarginBps int64 = 10000
)

var (
	ErrNegativeAmount = errors.New("negative quantity, duration or amount")
	ErrInvalidMargin  = errors.New("margin out of range")
)

var oneBps = decimal.New(1, -4) // 1 basis point as a fraction

// ValidateMarginBps reports whether a margin is usable, so callers can
// reject a bad margin override at intake instead of discovering it on
// every later recalculation.
func ValidateMarginBps(marginBps int64) error {
	if marginBps < 0 || marginBps > maxMarginBps {
		return fmt.Errorf("%w: %d bps", ErrInvalidMargin, marginBps)
	}
	return nil
}

// ComputeAggregates derives the five aggregate figures from the current
// line items and the margin to apply.
//
// Line items with an unassigned rate/price contribute zero. Negative
// quantities, durations, rates or prices are a caller bug and are
// rejected with ErrNegativeAmount; validation is a precondition here,
// not a recovered condition.
func ComputeAggregates(team []entities.TeamLineItem, equipment []entities.EquipmentLineItem, marginBps int64) (entities.Aggregates, error) {
	if err := ValidateMarginBps(marginBps); err != nil {
		return entities.Aggregates{}, err
	}

	var teamCost int64
	for _, t := range team {
		if t.Quantity < 0 || t.DurationDays < 0 || (t.DailyRateCents != nil && *t.DailyRateCents < 0) {
			return entities.Aggregates{}, fmt.Errorf("%w: team item %s", ErrNegativeAmount, t.ID)
		}
		teamCost += t.LineTotalCents()
	}

	var equipmentCost int64
	for _, e := range equipment {
		if e.Quantity < 0 || e.DurationDays < 0 || (e.ResolvedUnitPriceCents != nil && *e.ResolvedUnitPriceCents < 0) {
			return entities.Aggregates{}, fmt.Errorf("%w: equipment item %s", ErrNegativeAmount, e.ID)
		}
		equipmentCost += e.LineTotalCents()
	}

	totalCost := teamCost + equipmentCost
	profit := applyMargin(totalCost, marginBps)

	return entities.Aggregates{
		TotalTeamCostCents:      teamCost,
		TotalEquipmentCostCents: equipmentCost,
		TotalCostCents:          totalCost,
		TotalProfitCents:        profit,
		TotalClientPriceCents:   totalCost + profit,
		MarginBps:               marginBps,
	}, nil
}

// applyMargin returns cost x margin, rounded half-up to the cent.
func applyMargin(costCents, marginBps int64) int64 {
	return decimal.NewFromInt(costCents).
		Mul(decimal.NewFromInt(marginBps)).
		Mul(oneBps).
		Round(0).
		IntPart()
}

// MarginDecision is the outcome of ResolveMargin.
//
// RequiresUrgencyNotification signals that the caller must dispatch the
// one-time urgency alert; the policy itself performs no I/O.
type MarginDecision struct {
	MarginBps                   int64
	RequiresUrgencyNotification bool
}

// ResolveMargin decides the margin for a project.
//
// A manual override always wins and never triggers the alert — an
// override is assumed to have been reviewed by whoever set it. An
// urgent project gets the urgent margin, with the alert requested only
// until the project has been marked notified.
func ResolveMargin(p entities.Project) MarginDecision {
	if p.MarginOverrideBps != nil {
		return MarginDecision{MarginBps: *p.MarginOverrideBps}
	}
	if p.IsUrgent {
		return MarginDecision{
			MarginBps:                   UrgentMarginBps,
			RequiresUrgencyNotification: p.UrgencyNotifiedAt == nil,
		}
	}
	return MarginDecision{MarginBps: StandardMarginBps}
}

// MarginForUrgency returns the default margin for a new project given
// only its urgency flag.
func MarginForUrgency(isUrgent bool) int64 {
	if isUrgent {
		return UrgentMarginBps
	}
	return StandardMarginBps
}
