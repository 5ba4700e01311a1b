package interfaces

import (
	"context"

	"hrx_backoffice/internal/domain/entities"
)

// IUrgencyNotifier abstracts the external alert channel (webhook in the
// current deployment) used to tell admins a project was priced with the
// urgent margin.
//
// Dispatch is best-effort: a failure is logged by the caller and never
// rolls back pricing state.
type IUrgencyNotifier interface {
	SendUrgencyAlert(ctx context.Context, p entities.Project) error
}
