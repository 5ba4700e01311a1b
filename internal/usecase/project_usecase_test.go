package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrx_backoffice/internal/domain/entities"
	"hrx_backoffice/internal/domain/matching"
	"hrx_backoffice/internal/domain/pricing"
	mock_interfaces "hrx_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func cents(v int64) *int64 { return &v }

type projectMocks struct {
	projects      *mock_interfaces.MockIProjectRepository
	lineItems     *mock_interfaces.MockILineItemRepository
	professionals *mock_interfaces.MockIProfessionalRepository
	notifier      *mock_interfaces.MockIUrgencyNotifier
}

func newProjectUseCase(t *testing.T) (*ProjectUseCase, projectMocks) {
	ctrl := gomock.NewController(t)
	m := projectMocks{
		projects:      mock_interfaces.NewMockIProjectRepository(ctrl),
		lineItems:     mock_interfaces.NewMockILineItemRepository(ctrl),
		professionals: mock_interfaces.NewMockIProfessionalRepository(ctrl),
		notifier:      mock_interfaces.NewMockIUrgencyNotifier(ctrl),
	}
	return NewProjectUseCase(m.projects, m.lineItems, m.professionals, m.notifier), m
}

func TestProjectUseCase_CreateProject(t *testing.T) {
	t.Run("missing names", func(t *testing.T) {
		uc, _ := newProjectUseCase(t)
		_, err := uc.CreateProject(context.Background(), entities.Project{ClientName: "  "})
		if !errors.Is(err, ErrInvalidClientOrEventName) {
			t.Fatalf("expected ErrInvalidClientOrEventName, got %v", err)
		}
	})

	t.Run("standard project", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		m.projects.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" || p.ProjectNumber == "" {
					t.Fatalf("expected generated identifiers: %+v", p)
				}
				if p.Status != entities.ProjectStatusNew {
					t.Fatalf("expected status new, got %s", p.Status)
				}
				if p.Aggregates.MarginBps != pricing.StandardMarginBps {
					t.Fatalf("expected standard margin, got %d", p.Aggregates.MarginBps)
				}
				if p.UrgencyNotifiedAt != nil {
					t.Fatalf("expected no urgency notification timestamp")
				}
				return p, nil
			},
		)

		p, err := uc.CreateProject(context.Background(), entities.Project{ClientName: " ACME ", EventName: "Launch"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ClientName != "ACME" {
			t.Fatalf("expected trimmed client name, got %q", p.ClientName)
		}
	})

	t.Run("urgent project gets urgent margin", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		m.projects.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Aggregates.MarginBps != pricing.UrgentMarginBps {
					t.Fatalf("expected urgent margin, got %d", p.Aggregates.MarginBps)
				}
				return p, nil
			},
		)
		if _, err := uc.CreateProject(context.Background(), entities.Project{ClientName: "ACME", EventName: "Launch", IsUrgent: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("override beats urgency at creation", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		override := int64(5000)
		m.projects.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Aggregates.MarginBps != 5000 {
					t.Fatalf("expected override margin, got %d", p.Aggregates.MarginBps)
				}
				return p, nil
			},
		)
		_, err := uc.CreateProject(context.Background(), entities.Project{
			ClientName: "ACME", EventName: "Launch", IsUrgent: true, MarginOverrideBps: &override,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("override above 100 percent rejected", func(t *testing.T) {
		uc, _ := newProjectUseCase(t)
		override := int64(15000)
		_, err := uc.CreateProject(context.Background(), entities.Project{
			ClientName: "ACME", EventName: "Launch", MarginOverrideBps: &override,
		})
		if !errors.Is(err, pricing.ErrInvalidMargin) {
			t.Fatalf("expected ErrInvalidMargin, got %v", err)
		}
	})

	t.Run("negative override rejected", func(t *testing.T) {
		uc, _ := newProjectUseCase(t)
		override := int64(-100)
		_, err := uc.CreateProject(context.Background(), entities.Project{
			ClientName: "ACME", EventName: "Launch", MarginOverrideBps: &override,
		})
		if !errors.Is(err, pricing.ErrInvalidMargin) {
			t.Fatalf("expected ErrInvalidMargin, got %v", err)
		}
	})
}

func TestProjectUseCase_GetProject(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newProjectUseCase(t)
		if _, err := uc.GetProject(context.Background(), "  "); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)
		if _, err := uc.GetProject(context.Background(), "p-1"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, errors.New("db"))
		if _, err := uc.GetProject(context.Background(), "p-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func expectRecalculate(m projectMocks, project entities.Project, team []entities.TeamLineItem, equipment []entities.EquipmentLineItem) {
	m.projects.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	m.lineItems.EXPECT().ListTeamByProject(gomock.Any(), project.ID).Return(team, nil)
	m.lineItems.EXPECT().ListEquipmentByProject(gomock.Any(), project.ID).Return(equipment, nil)
	m.projects.EXPECT().SaveAggregates(gomock.Any(), project.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, agg entities.Aggregates) (entities.Project, error) {
			saved := project
			saved.Aggregates = agg
			return saved, nil
		},
	)
}

func TestProjectUseCase_Recalculate(t *testing.T) {
	project := entities.Project{ID: "p-1", ClientName: "ACME", EventName: "Launch"}
	team := []entities.TeamLineItem{
		{ID: "t-1", ProjectID: "p-1", Quantity: 2, DurationDays: 3, DailyRateCents: cents(50000)},
	}
	equipment := []entities.EquipmentLineItem{
		{ID: "e-1", ProjectID: "p-1", Quantity: 1, DurationDays: 3, ResolvedUnitPriceCents: cents(100000)},
	}

	t.Run("standard project computes 35% margin", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		expectRecalculate(m, project, team, equipment)

		agg, err := uc.Recalculate(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agg.TotalCostCents != 600000 || agg.TotalProfitCents != 210000 || agg.TotalClientPriceCents != 810000 {
			t.Fatalf("unexpected aggregates: %+v", agg)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		expectRecalculate(m, project, team, equipment)
		expectRecalculate(m, project, team, equipment)

		first, err := uc.Recalculate(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Recalculate(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Fatalf("recalculation not idempotent: %+v vs %+v", first, second)
		}
	})

	t.Run("urgent project notifies exactly once", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		urgent := project
		urgent.IsUrgent = true

		expectRecalculate(m, urgent, team, equipment)
		m.projects.EXPECT().MarkUrgencyNotified(gomock.Any(), "p-1", gomock.Any()).Return(true, nil)
		m.notifier.EXPECT().SendUrgencyAlert(gomock.Any(), gomock.Any()).Return(nil)

		agg, err := uc.Recalculate(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agg.MarginBps != pricing.UrgentMarginBps || agg.TotalClientPriceCents != 1080000 {
			t.Fatalf("unexpected aggregates: %+v", agg)
		}

		// Second pass: the conditional mark loses, no alert goes out.
		expectRecalculate(m, urgent, team, equipment)
		m.projects.EXPECT().MarkUrgencyNotified(gomock.Any(), "p-1", gomock.Any()).Return(false, nil)

		if _, err := uc.Recalculate(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already notified urgent project skips alert", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		notified := project
		notified.IsUrgent = true
		at := time.Now().UTC()
		notified.UrgencyNotifiedAt = &at

		expectRecalculate(m, notified, team, equipment)

		if _, err := uc.Recalculate(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("notifier failure does not fail recalculation", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		urgent := project
		urgent.IsUrgent = true

		expectRecalculate(m, urgent, team, equipment)
		m.projects.EXPECT().MarkUrgencyNotified(gomock.Any(), "p-1", gomock.Any()).Return(true, nil)
		m.notifier.EXPECT().SendUrgencyAlert(gomock.Any(), gomock.Any()).Return(errors.New("webhook down"))

		if _, err := uc.Recalculate(context.Background(), "p-1"); err != nil {
			t.Fatalf("expected best-effort notification, got %v", err)
		}
	})

	t.Run("manual override wins and suppresses alert", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		override := int64(5000)
		overridden := project
		overridden.IsUrgent = true
		overridden.MarginOverrideBps = &override

		expectRecalculate(m, overridden, team, equipment)

		agg, err := uc.Recalculate(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agg.MarginBps != 5000 || agg.TotalProfitCents != 300000 {
			t.Fatalf("unexpected aggregates: %+v", agg)
		}
	})

	t.Run("aggregate write failure fails the operation", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(project, nil)
		m.lineItems.EXPECT().ListTeamByProject(gomock.Any(), "p-1").Return(team, nil)
		m.lineItems.EXPECT().ListEquipmentByProject(gomock.Any(), "p-1").Return(equipment, nil)
		m.projects.EXPECT().SaveAggregates(gomock.Any(), "p-1", gomock.Any()).Return(entities.Project{}, errors.New("write failed"))

		if _, err := uc.Recalculate(context.Background(), "p-1"); err == nil || err.Error() != "write failed" {
			t.Fatalf("expected write failure, got %v", err)
		}
	})
}

func TestProjectUseCase_AddTeamMember(t *testing.T) {
	project := entities.Project{ID: "p-1", ClientName: "ACME", EventName: "Launch"}

	t.Run("invalid quantity", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(project, nil)
		_, err := uc.AddTeamMember(context.Background(), "p-1", entities.TeamLineItem{Role: "Security", Quantity: 0, DurationDays: 1})
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("creates then recalculates", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		item := entities.TeamLineItem{Role: "Security", Category: "Staff", Quantity: 2, DurationDays: 3, DailyRateCents: cents(50000)}

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(project, nil)
		m.lineItems.EXPECT().CreateTeamMember(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, created entities.TeamLineItem) (entities.TeamLineItem, error) {
				if created.ID == "" || created.ProjectID != "p-1" {
					t.Fatalf("unexpected line item: %+v", created)
				}
				return created, nil
			},
		)
		expectRecalculate(m, project, []entities.TeamLineItem{item}, nil)

		agg, err := uc.AddTeamMember(context.Background(), "p-1", item)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agg.TotalTeamCostCents != 300000 {
			t.Fatalf("unexpected aggregates: %+v", agg)
		}
	})
}

func TestProjectUseCase_SetTeamMemberRate(t *testing.T) {
	project := entities.Project{ID: "p-1", ClientName: "ACME", EventName: "Launch"}

	t.Run("negative rate", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(project, nil)
		if _, err := uc.SetTeamMemberRate(context.Background(), "p-1", "t-1", -1); !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("member of another project rejected", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(project, nil)
		m.lineItems.EXPECT().UpdateTeamMemberRate(gomock.Any(), "t-1", int64(50000)).
			Return(entities.TeamLineItem{ID: "t-1", ProjectID: "other"}, nil)
		if _, err := uc.SetTeamMemberRate(context.Background(), "p-1", "t-1", 50000); !errors.Is(err, ErrTeamMemberNotFound) {
			t.Fatalf("expected ErrTeamMemberNotFound, got %v", err)
		}
	})

	t.Run("sets rate then recalculates", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		updated := entities.TeamLineItem{ID: "t-1", ProjectID: "p-1", Quantity: 1, DurationDays: 2, DailyRateCents: cents(50000)}

		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(project, nil)
		m.lineItems.EXPECT().UpdateTeamMemberRate(gomock.Any(), "t-1", int64(50000)).Return(updated, nil)
		expectRecalculate(m, project, []entities.TeamLineItem{updated}, nil)

		agg, err := uc.SetTeamMemberRate(context.Background(), "p-1", "t-1", 50000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agg.TotalTeamCostCents != 100000 {
			t.Fatalf("unexpected aggregates: %+v", agg)
		}
	})
}

func TestProjectUseCase_SuggestProfessionals(t *testing.T) {
	t.Run("missing location", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
		if _, err := uc.SuggestProfessionals(context.Background(), "p-1", matching.Criteria{}); !errors.Is(err, ErrProjectMissingLocation) {
			t.Fatalf("expected ErrProjectMissingLocation, got %v", err)
		}
	})

	t.Run("ranks approved candidates around the venue", func(t *testing.T) {
		uc, m := newProjectUseCase(t)
		project := entities.Project{ID: "p-1", EventDate: "2026-10-01", Latitude: -23.5505, Longitude: -46.6333}
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(project, nil)
		m.professionals.EXPECT().ListApproved(gomock.Any(), "2026-10-01").Return([]matching.Candidate{
			{ID: "near", Latitude: -23.5505, Longitude: -46.6333, AvailableOnDate: true, YearsOfExperience: 10, PerformanceRating: 5},
			{ID: "far", Latitude: -22.9068, Longitude: -43.1729, AvailableOnDate: true, YearsOfExperience: 10, PerformanceRating: 5},
		}, nil)

		got, err := uc.SuggestProfessionals(context.Background(), "p-1", matching.Criteria{Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Candidate.ID != "near" {
			t.Fatalf("unexpected ranking: %+v", got)
		}
	})
}
