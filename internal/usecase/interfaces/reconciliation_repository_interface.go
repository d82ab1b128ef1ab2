package interfaces

import (
	"context"

	"debt_reconciler/internal/domain/entities"
)

// IReconciliationRepository abstracts DynamoDB persistence for reconciliation
// run snapshots.

type IReconciliationRepository interface {
	Create(ctx context.Context, r entities.Reconciliation) (entities.Reconciliation, error)
	GetByID(ctx context.Context, id string) (entities.Reconciliation, error)
}
