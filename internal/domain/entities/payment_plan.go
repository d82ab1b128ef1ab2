package entities

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used everywhere in the system.
// Dates carry no time-of-day or time-zone component.
const DateLayout = "2006-01-02"

// DefaultMaxScheduleSteps bounds the next-due-date walk. It is a safety limit
// against corrupted schedule parameters, not a domain rule, and can be
// overridden per plan via PaymentPlanParams.
const DefaultMaxScheduleSteps = 10000

var (
	ErrUnknownFrequency = errors.New("unknown installment frequency")
	ErrScheduleOverflow = errors.New("exceeded the max possible number of installments")
)

// Frequency is the fixed interval between scheduled installment due dates.

type Frequency string

const (
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyBiWeekly Frequency = "BI_WEEKLY"
)

// ParseFrequency validates a wire value against the closed frequency set.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyWeekly, FrequencyBiWeekly:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

// Days returns the number of days between scheduled installments.
func (f Frequency) Days() (int, error) {
	switch f {
	case FrequencyWeekly:
		return 7, nil
	case FrequencyBiWeekly:
		return 14, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, string(f))
}

// Payment is one recorded amount applied against a plan on a given date. A
// payment's date need not align with the plan's schedule; it always counts
// toward the balance regardless of date.
type Payment struct {
	Date   time.Time
	Amount decimal.Decimal
}

// PaymentPlan is an agreement to forgive a debt upon payment of a fixed total
// via scheduled installments at a fixed frequency from a start date.
//
// Schedule model:
//   - The theoretical due dates are start_date + k*frequency_days for k >= 1.
//     The start date itself is never a due date.
//   - The sequence is fixed at construction. Off-schedule or partial payments
//     reduce the balance but never move the schedule.
//
// The payment list is append-only and synchronized per plan, so the three
// ingestion streams may be recorded concurrently.
type PaymentPlan struct {
	id                int64
	debtID            int64
	amountToPay       decimal.Decimal
	installmentAmount decimal.Decimal
	frequency         Frequency
	startDate         time.Time
	maxScheduleSteps  int

	mu       sync.Mutex
	payments []Payment
}

// PaymentPlanParams fully parameterizes a plan. Plans are immutable once
// constructed, apart from appended payments.
type PaymentPlanParams struct {
	ID          int64
	DebtID      int64
	AmountToPay decimal.Decimal
	// InstallmentAmount is informational only. It takes no part in balance or
	// schedule math.
	InstallmentAmount decimal.Decimal
	Frequency         Frequency
	StartDate         time.Time
	// MaxScheduleSteps bounds the next-due-date walk. Zero or negative falls
	// back to DefaultMaxScheduleSteps.
	MaxScheduleSteps int
}

func NewPaymentPlan(p PaymentPlanParams) *PaymentPlan {
	steps := p.MaxScheduleSteps
	if steps <= 0 {
		steps = DefaultMaxScheduleSteps
	}
	return &PaymentPlan{
		id:                p.ID,
		debtID:            p.DebtID,
		amountToPay:       p.AmountToPay,
		installmentAmount: p.InstallmentAmount,
		frequency:         p.Frequency,
		startDate:         p.StartDate,
		maxScheduleSteps:  steps,
	}
}

func (p *PaymentPlan) ID() int64 {
	return p.id
}

func (p *PaymentPlan) DebtID() int64 {
	return p.debtID
}

func (p *PaymentPlan) AmountToPay() decimal.Decimal {
	return p.amountToPay
}

func (p *PaymentPlan) InstallmentAmount() decimal.Decimal {
	return p.installmentAmount
}

func (p *PaymentPlan) Frequency() Frequency {
	return p.frequency
}

func (p *PaymentPlan) StartDate() time.Time {
	return p.startDate
}

// RecordPayment appends a payment to the plan. Payments may arrive in any
// order relative to their dates.
func (p *PaymentPlan) RecordPayment(date time.Time, amount decimal.Decimal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payments = append(p.payments, Payment{Date: date, Amount: amount})
}

// Payments returns a copy of the recorded payments.
func (p *PaymentPlan) Payments() []Payment {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Payment, len(p.payments))
	copy(out, p.payments)
	return out
}

// RemainingAmount is amount_to_pay minus the sum of all recorded payments,
// computed with exact decimal arithmetic. It may go negative on overpayment;
// that is permitted, not clamped.
func (p *PaymentPlan) RemainingAmount() decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()
	remaining := p.amountToPay
	for _, payment := range p.payments {
		remaining = remaining.Sub(payment.Amount)
	}
	return remaining
}

// LastPaymentDate returns the maximum date among all recorded payments. The
// second return is false when no payments exist.
func (p *PaymentPlan) LastPaymentDate() (time.Time, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.payments) == 0 {
		return time.Time{}, false
	}
	last := p.payments[0].Date
	for _, payment := range p.payments[1:] {
		if payment.Date.After(last) {
			last = payment.Date
		}
	}
	return last, true
}

// NextPaymentDueDate returns the first scheduled date strictly after the most
// recent payment, per the fixed schedule anchored at the start date. With no
// payments it is the first scheduled date. The second return is false when the
// plan is satisfied (remaining amount <= 0); the date may be in the past if
// the account has fallen behind, since only payment history is consulted,
// never the wall clock.
func (p *PaymentPlan) NextPaymentDueDate() (time.Time, bool, error) {
	if !p.RemainingAmount().IsPositive() {
		return time.Time{}, false, nil
	}
	days, err := p.frequency.Days()
	if err != nil {
		return time.Time{}, false, err
	}

	due := p.startDate.AddDate(0, 0, days)
	last, ok := p.LastPaymentDate()
	if !ok {
		return due, true, nil
	}
	for i := 0; i < p.maxScheduleSteps; i++ {
		if due.After(last) {
			return due, true, nil
		}
		due = due.AddDate(0, 0, days)
	}
	return time.Time{}, false, fmt.Errorf("%w: %d (payment plan %d)", ErrScheduleOverflow, p.maxScheduleSteps, p.id)
}
