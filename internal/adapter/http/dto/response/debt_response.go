package response

import (
	"encoding/json"

	"debt_reconciler/internal/domain/entities"
)

// DebtResponse is one reconciled debt record. Amounts are emitted as bare
// JSON numbers. next_payment_due_date is omitted entirely (not null) when the
// debt has no active plan or the plan is satisfied.
type DebtResponse struct {
	ID                 int64       `json:"id"`
	Amount             json.Number `json:"amount"`
	IsInPaymentPlan    bool        `json:"is_in_payment_plan"`
	RemainingAmount    json.Number `json:"remaining_amount"`
	NextPaymentDueDate string      `json:"next_payment_due_date,omitempty"`
}

func FromReconciledDebt(d entities.ReconciledDebt) DebtResponse {
	res := DebtResponse{
		ID:              d.ID,
		Amount:          json.Number(d.Amount.String()),
		IsInPaymentPlan: d.IsInPaymentPlan,
		RemainingAmount: json.Number(d.RemainingAmount.String()),
	}
	if d.NextPaymentDueDate != nil {
		res.NextPaymentDueDate = d.NextPaymentDueDate.Format(entities.DateLayout)
	}
	return res
}

func FromReconciledDebts(records []entities.ReconciledDebt) []DebtResponse {
	out := make([]DebtResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromReconciledDebt(rec))
	}
	return out
}
