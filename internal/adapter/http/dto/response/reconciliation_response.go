package response

import (
	"time"

	"debt_reconciler/internal/domain/entities"
)

type ReconciliationResponse struct {
	ID        string         `json:"id"`
	RunAt     time.Time      `json:"run_at"`
	DebtCount int            `json:"debt_count"`
	Records   []DebtResponse `json:"records"`
}

func FromReconciliation(r entities.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		ID:        r.ID,
		RunAt:     r.RunAt,
		DebtCount: len(r.Records),
		Records:   FromReconciledDebts(r.Records),
	}
}
