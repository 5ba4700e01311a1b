package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hrx_backoffice/internal/domain/entities"
	"hrx_backoffice/internal/domain/matching"
	"hrx_backoffice/internal/domain/pricing"
	"hrx_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidProjectID         = errors.New("invalid project id")
	ErrProjectNotFound          = errors.New("project not found")
	ErrInvalidLineItem          = errors.New("invalid line item")
	ErrTeamMemberNotFound       = errors.New("team line item not found")
	ErrProjectMissingLocation   = errors.New("project has no venue location")
	ErrInvalidClientOrEventName = errors.New("client name and event name are required")
)

// IProjectUseCase exposes project and line-item operations.
//
// Every mutation ends in Recalculate, so the stored aggregates always
// reflect the committed line items (read-your-writes for the caller
// that issued the mutation). Recalculate itself is idempotent and safe
// to invoke redundantly; the urgency alert inside it fires at most once
// per project.

type IProjectUseCase interface {
	CreateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	AddTeamMember(ctx context.Context, projectID string, item entities.TeamLineItem) (entities.Aggregates, error)
	SetTeamMemberRate(ctx context.Context, projectID, memberID string, dailyRateCents int64) (entities.Aggregates, error)
	AddEquipment(ctx context.Context, projectID string, item entities.EquipmentLineItem) (entities.Aggregates, error)
	Recalculate(ctx context.Context, projectID string) (entities.Aggregates, error)
	SuggestProfessionals(ctx context.Context, projectID string, criteria matching.Criteria) ([]matching.Suggestion, error)
}

// IRecalculator is the slice of IProjectUseCase the quotation workflow
// needs to refresh aggregates after an acceptance.
type IRecalculator interface {
	Recalculate(ctx context.Context, projectID string) (entities.Aggregates, error)
}

type ProjectUseCase struct {
	projects      interfaces.IProjectRepository
	lineItems     interfaces.ILineItemRepository
	professionals interfaces.IProfessionalRepository
	notifier      interfaces.IUrgencyNotifier
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)
var _ IRecalculator = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	projects interfaces.IProjectRepository,
	lineItems interfaces.ILineItemRepository,
	professionals interfaces.IProfessionalRepository,
	notifier interfaces.IUrgencyNotifier,
) *ProjectUseCase {
	return &ProjectUseCase{
		projects:      projects,
		lineItems:     lineItems,
		professionals: professionals,
		notifier:      notifier,
	}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.ClientName = strings.TrimSpace(p.ClientName)
	p.EventName = strings.TrimSpace(p.EventName)
	if p.ClientName == "" || p.EventName == "" {
		return entities.Project{}, ErrInvalidClientOrEventName
	}
	if p.MarginOverrideBps != nil {
		if err := pricing.ValidateMarginBps(*p.MarginOverrideBps); err != nil {
			return entities.Project{}, err
		}
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.ProjectNumber = projectNumber(now)
	p.Status = entities.ProjectStatusNew
	p.Aggregates = entities.Aggregates{MarginBps: pricing.MarginForUrgency(p.IsUrgent)}
	if p.MarginOverrideBps != nil {
		p.Aggregates.MarginBps = *p.MarginOverrideBps
	}
	p.UrgencyNotifiedAt = nil
	p.CreatedAt = now
	p.UpdatedAt = now

	return u.projects.Create(ctx, p)
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) AddTeamMember(ctx context.Context, projectID string, item entities.TeamLineItem) (entities.Aggregates, error) {
	project, err := u.GetProject(ctx, projectID)
	if err != nil {
		return entities.Aggregates{}, err
	}
	if item.Quantity < 1 || item.DurationDays < 1 || (item.DailyRateCents != nil && *item.DailyRateCents < 0) {
		return entities.Aggregates{}, ErrInvalidLineItem
	}
	if strings.TrimSpace(item.Role) == "" {
		return entities.Aggregates{}, ErrInvalidLineItem
	}

	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.ProjectID = project.ID
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := u.lineItems.CreateTeamMember(ctx, item); err != nil {
		return entities.Aggregates{}, err
	}
	return u.Recalculate(ctx, project.ID)
}

func (u *ProjectUseCase) SetTeamMemberRate(ctx context.Context, projectID, memberID string, dailyRateCents int64) (entities.Aggregates, error) {
	project, err := u.GetProject(ctx, projectID)
	if err != nil {
		return entities.Aggregates{}, err
	}
	if dailyRateCents < 0 {
		return entities.Aggregates{}, ErrInvalidLineItem
	}

	updated, err := u.lineItems.UpdateTeamMemberRate(ctx, strings.TrimSpace(memberID), dailyRateCents)
	if err != nil {
		return entities.Aggregates{}, err
	}
	if updated.ID == "" || updated.ProjectID != project.ID {
		return entities.Aggregates{}, ErrTeamMemberNotFound
	}
	return u.Recalculate(ctx, project.ID)
}

func (u *ProjectUseCase) AddEquipment(ctx context.Context, projectID string, item entities.EquipmentLineItem) (entities.Aggregates, error) {
	project, err := u.GetProject(ctx, projectID)
	if err != nil {
		return entities.Aggregates{}, err
	}
	if item.Quantity < 1 || item.DurationDays < 1 {
		return entities.Aggregates{}, ErrInvalidLineItem
	}
	if strings.TrimSpace(item.Name) == "" {
		return entities.Aggregates{}, ErrInvalidLineItem
	}

	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.ProjectID = project.ID
	item.Status = entities.EquipmentStatusPending
	item.ResolvedUnitPriceCents = nil
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := u.lineItems.CreateEquipment(ctx, item); err != nil {
		return entities.Aggregates{}, err
	}
	return u.Recalculate(ctx, project.ID)
}

// Recalculate refreshes a project's stored aggregates from its current
// line items.
//
// The five derived figures are persisted in a single write; if that
// write fails the whole recalculation fails and the caller may retry.
// The urgency alert is dispatched after the aggregates land, guarded by
// a conditional mark so exactly one recompute sends it; a dispatch
// failure is logged and does not fail the operation.
func (u *ProjectUseCase) Recalculate(ctx context.Context, projectID string) (entities.Aggregates, error) {
	project, err := u.GetProject(ctx, projectID)
	if err != nil {
		return entities.Aggregates{}, err
	}

	team, err := u.lineItems.ListTeamByProject(ctx, project.ID)
	if err != nil {
		return entities.Aggregates{}, err
	}
	equipment, err := u.lineItems.ListEquipmentByProject(ctx, project.ID)
	if err != nil {
		return entities.Aggregates{}, err
	}

	decision := pricing.ResolveMargin(project)
	agg, err := pricing.ComputeAggregates(team, equipment, decision.MarginBps)
	if err != nil {
		return entities.Aggregates{}, err
	}

	saved, err := u.projects.SaveAggregates(ctx, project.ID, agg)
	if err != nil {
		return entities.Aggregates{}, err
	}
	if saved.ID == "" {
		return entities.Aggregates{}, ErrProjectNotFound
	}

	if decision.RequiresUrgencyNotification {
		u.notifyUrgency(ctx, saved)
	}

	return agg, nil
}

func (u *ProjectUseCase) notifyUrgency(ctx context.Context, project entities.Project) {
	won, err := u.projects.MarkUrgencyNotified(ctx, project.ID, time.Now().UTC())
	if err != nil {
		log.WithFields(log.Fields{"project_id": project.ID}).
			WithError(err).Warn("could not mark urgency notification")
		return
	}
	if !won {
		// Another recompute already sent it.
		return
	}
	if u.notifier == nil {
		return
	}
	if err := u.notifier.SendUrgencyAlert(ctx, project); err != nil {
		log.WithFields(log.Fields{"project_id": project.ID}).
			WithError(err).Warn("urgency alert dispatch failed")
	}
}

func (u *ProjectUseCase) SuggestProfessionals(ctx context.Context, projectID string, criteria matching.Criteria) ([]matching.Suggestion, error) {
	project, err := u.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Latitude == 0 && project.Longitude == 0 {
		return nil, ErrProjectMissingLocation
	}

	candidates, err := u.professionals.ListApproved(ctx, project.EventDate)
	if err != nil {
		return nil, err
	}

	criteria.EventLatitude = project.Latitude
	criteria.EventLongitude = project.Longitude
	return matching.Rank(candidates, criteria), nil
}

func projectNumber(now time.Time) string {
	return fmt.Sprintf("EVT-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}
