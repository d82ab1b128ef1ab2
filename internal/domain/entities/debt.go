package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrDuplicatePlanAssignment = errors.New("debt is already associated with a payment plan")

// Debt is a customer obligation of a fixed original amount, optionally under a
// payment plan. The plan is assigned at most once and never replaced.
type Debt struct {
	id     int64
	amount decimal.Decimal
	plan   *PaymentPlan
}

func NewDebt(id int64, amount decimal.Decimal) *Debt {
	return &Debt{id: id, amount: amount}
}

func (d *Debt) ID() int64 {
	return d.id
}

func (d *Debt) Amount() decimal.Decimal {
	return d.amount
}

// PaymentPlan returns the attached plan, or nil when none is attached.
func (d *Debt) PaymentPlan() *PaymentPlan {
	return d.plan
}

// AttachPaymentPlan assigns a plan to the debt. Assignment is one-way: a
// second attachment fails with ErrDuplicatePlanAssignment.
func (d *Debt) AttachPaymentPlan(plan *PaymentPlan) error {
	if d.plan != nil {
		return fmt.Errorf("%w: debt %d", ErrDuplicatePlanAssignment, d.id)
	}
	d.plan = plan
	return nil
}

// IsInPaymentPlan reports whether the debt is actively owing under a plan. A
// fully paid plan reverts this to false even though the plan stays attached.
func (d *Debt) IsInPaymentPlan() bool {
	return d.plan != nil && d.plan.RemainingAmount().IsPositive()
}

// RemainingAmount is the original debt amount when no plan is attached,
// otherwise the plan's remaining balance. Negative balances from overpayment
// pass through unmodified.
func (d *Debt) RemainingAmount() decimal.Decimal {
	if d.plan == nil {
		return d.amount
	}
	return d.plan.RemainingAmount()
}

// NextPaymentDueDate delegates to the plan's schedule. The second return is
// false when the debt has no active plan.
func (d *Debt) NextPaymentDueDate() (time.Time, bool, error) {
	if !d.IsInPaymentPlan() {
		return time.Time{}, false, nil
	}
	return d.plan.NextPaymentDueDate()
}
