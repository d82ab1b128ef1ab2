package interfaces

import (
	"context"
	"encoding/json"
)

// Wire records for the three upstream streams. Amounts stay json.Number so
// decimal parsing sees the exact wire text instead of a float round trip.

type DebtRecord struct {
	ID     int64       `json:"id"`
	Amount json.Number `json:"amount"`
}

type PaymentPlanRecord struct {
	ID                   int64       `json:"id"`
	DebtID               int64       `json:"debt_id"`
	AmountToPay          json.Number `json:"amount_to_pay"`
	InstallmentAmount    json.Number `json:"installment_amount"`
	InstallmentFrequency string      `json:"installment_frequency"`
	StartDate            string      `json:"start_date"`
}

type PaymentRecord struct {
	PaymentPlanID int64       `json:"payment_plan_id"`
	Date          string      `json:"date"`
	Amount        json.Number `json:"amount"`
}

// IDebtSource abstracts the upstream collections API that serves the debts,
// payment_plans and payments streams.
type IDebtSource interface {
	FetchDebts(ctx context.Context) ([]DebtRecord, error)
	FetchPaymentPlans(ctx context.Context) ([]PaymentPlanRecord, error)
	FetchPayments(ctx context.Context) ([]PaymentRecord, error)
}
