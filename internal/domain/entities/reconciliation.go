package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciledDebt is the derived record computed for one debt at the end of a
// reconciliation run. NextPaymentDueDate is nil when the debt has no active
// plan or the plan is satisfied.
type ReconciledDebt struct {
	ID                 int64           `json:"id"`
	Amount             decimal.Decimal `json:"amount"`
	IsInPaymentPlan    bool            `json:"is_in_payment_plan"`
	RemainingAmount    decimal.Decimal `json:"remaining_amount"`
	NextPaymentDueDate *time.Time      `json:"next_payment_due_date,omitempty"`
}

// Reconciliation is one full run over the three source streams.
//
// Storage model (DynamoDB):
//   - PK: id
//   - records stored as a list attribute, amounts as exact decimal strings.
//
// Either every debt gets a derived record or the run fails and produces
// nothing; there is no partial-success mode.
type Reconciliation struct {
	ID      string           `json:"id"`
	RunAt   time.Time        `json:"run_at"`
	Records []ReconciledDebt `json:"records"`
}
