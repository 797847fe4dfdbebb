package port

import (
	"context"

	"github.com/lqhuy182/art-registry/internal/core/domain"
)

type EventRepository interface {
	// RecordEvent appends one notification to the audit trail.
	RecordEvent(ctx context.Context, event domain.Event) error
}
