package interfaces

import (
	"context"
	"time"

	"hrx_backoffice/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// The pricing-service must be able to:
//   - create a project with its margin fixed from the urgency flag
//   - persist all five derived aggregates in one atomic write
//   - mark the one-time urgency notification exactly once under
//     concurrent recomputations (conditional write)
//
// Update methods return a zero-value Project (and nil error) when the
// target row does not exist or the condition fails; the use case maps
// that to its own sentinel errors.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	SaveAggregates(ctx context.Context, id string, agg entities.Aggregates) (entities.Project, error)
	// MarkUrgencyNotified succeeds only if the project has never been
	// notified; returns false without error when another recompute won.
	MarkUrgencyNotified(ctx context.Context, id string, at time.Time) (bool, error)
}
