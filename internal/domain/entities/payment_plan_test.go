package entities

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parsing date %q: %v", s, err)
	}
	return d
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parsing decimal %q: %v", s, err)
	}
	return d
}

func newWeeklyPlan(t *testing.T) *PaymentPlan {
	t.Helper()
	return NewPaymentPlan(PaymentPlanParams{
		ID:                10,
		DebtID:            0,
		AmountToPay:       mustDecimal(t, "1500"),
		InstallmentAmount: mustDecimal(t, "50"),
		Frequency:         FrequencyWeekly,
		StartDate:         mustDate(t, "2021-01-01"),
	})
}

func TestParseFrequency(t *testing.T) {
	t.Run("weekly", func(t *testing.T) {
		f, err := ParseFrequency("WEEKLY")
		if err != nil || f != FrequencyWeekly {
			t.Fatalf("got %q, %v", f, err)
		}
	})

	t.Run("bi-weekly", func(t *testing.T) {
		f, err := ParseFrequency("BI_WEEKLY")
		if err != nil || f != FrequencyBiWeekly {
			t.Fatalf("got %q, %v", f, err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := ParseFrequency("MONTHLY"); !errors.Is(err, ErrUnknownFrequency) {
			t.Fatalf("expected ErrUnknownFrequency, got %v", err)
		}
	})
}

func TestFrequencyDays(t *testing.T) {
	if days, err := FrequencyWeekly.Days(); err != nil || days != 7 {
		t.Fatalf("weekly: got %d, %v", days, err)
	}
	if days, err := FrequencyBiWeekly.Days(); err != nil || days != 14 {
		t.Fatalf("bi-weekly: got %d, %v", days, err)
	}
	if _, err := Frequency("DAILY").Days(); !errors.Is(err, ErrUnknownFrequency) {
		t.Fatalf("expected ErrUnknownFrequency, got %v", err)
	}
}

func TestPaymentPlanRemainingAmount(t *testing.T) {
	t.Run("no payments", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		if !plan.RemainingAmount().Equal(mustDecimal(t, "1500")) {
			t.Fatalf("got %s, want 1500", plan.RemainingAmount())
		}
	})

	t.Run("payments reduce the balance", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		plan.RecordPayment(mustDate(t, "2021-01-08"), mustDecimal(t, "50"))
		plan.RecordPayment(mustDate(t, "2021-01-15"), mustDecimal(t, "50"))
		if !plan.RemainingAmount().Equal(mustDecimal(t, "1400")) {
			t.Fatalf("got %s, want 1400", plan.RemainingAmount())
		}
	})

	t.Run("order independent", func(t *testing.T) {
		a := newWeeklyPlan(t)
		a.RecordPayment(mustDate(t, "2021-01-08"), mustDecimal(t, "102.5"))
		a.RecordPayment(mustDate(t, "2021-01-15"), mustDecimal(t, "37.25"))

		b := newWeeklyPlan(t)
		b.RecordPayment(mustDate(t, "2021-01-15"), mustDecimal(t, "37.25"))
		b.RecordPayment(mustDate(t, "2021-01-08"), mustDecimal(t, "102.5"))

		if !a.RemainingAmount().Equal(b.RemainingAmount()) {
			t.Fatalf("insertion order changed the balance: %s vs %s", a.RemainingAmount(), b.RemainingAmount())
		}
	})

	t.Run("overpayment goes negative, not clamped", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		plan.RecordPayment(mustDate(t, "2021-02-01"), mustDecimal(t, "1600"))
		if !plan.RemainingAmount().Equal(mustDecimal(t, "-100")) {
			t.Fatalf("got %s, want -100", plan.RemainingAmount())
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		plan.RecordPayment(mustDate(t, "2021-01-08"), mustDecimal(t, "50"))
		first := plan.RemainingAmount()
		second := plan.RemainingAmount()
		if !first.Equal(second) {
			t.Fatalf("repeated computation differed: %s vs %s", first, second)
		}
	})
}

func TestPaymentPlanLastPaymentDate(t *testing.T) {
	t.Run("no payments", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		if _, ok := plan.LastPaymentDate(); ok {
			t.Fatal("expected no last payment date")
		}
	})

	t.Run("maximum date wins regardless of insertion order", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		plan.RecordPayment(mustDate(t, "2021-01-15"), mustDecimal(t, "50"))
		plan.RecordPayment(mustDate(t, "2021-01-08"), mustDecimal(t, "50"))
		last, ok := plan.LastPaymentDate()
		if !ok || !last.Equal(mustDate(t, "2021-01-15")) {
			t.Fatalf("got %v, %v", last, ok)
		}
	})
}

func TestPaymentPlanNextPaymentDueDate(t *testing.T) {
	t.Run("no payments is one interval after start", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		due, ok, err := plan.NextPaymentDueDate()
		if err != nil || !ok {
			t.Fatalf("got ok=%v err=%v", ok, err)
		}
		if !due.Equal(mustDate(t, "2021-01-08")) {
			t.Fatalf("got %v, want 2021-01-08", due)
		}
	})

	t.Run("payment before first installment does not move the schedule", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		plan.RecordPayment(mustDate(t, "2021-01-02"), mustDecimal(t, "50"))
		due, ok, err := plan.NextPaymentDueDate()
		if err != nil || !ok {
			t.Fatalf("got ok=%v err=%v", ok, err)
		}
		if !due.Equal(mustDate(t, "2021-01-08")) {
			t.Fatalf("got %v, want 2021-01-08", due)
		}
	})

	t.Run("out of order payments resolve to the max date", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		plan.RecordPayment(mustDate(t, "2021-01-14"), mustDecimal(t, "50"))
		plan.RecordPayment(mustDate(t, "2021-01-13"), mustDecimal(t, "50"))
		plan.RecordPayment(mustDate(t, "2021-01-08"), mustDecimal(t, "50"))
		due, ok, err := plan.NextPaymentDueDate()
		if err != nil || !ok {
			t.Fatalf("got ok=%v err=%v", ok, err)
		}
		if !due.Equal(mustDate(t, "2021-01-15")) {
			t.Fatalf("got %v, want 2021-01-15", due)
		}
	})

	t.Run("bi-weekly on-schedule payments", func(t *testing.T) {
		plan := NewPaymentPlan(PaymentPlanParams{
			ID:                11,
			DebtID:            1,
			AmountToPay:       mustDecimal(t, "1500"),
			InstallmentAmount: mustDecimal(t, "100"),
			Frequency:         FrequencyBiWeekly,
			StartDate:         mustDate(t, "2021-01-01"),
		})
		plan.RecordPayment(mustDate(t, "2021-01-08"), mustDecimal(t, "100"))
		plan.RecordPayment(mustDate(t, "2021-01-15"), mustDecimal(t, "100"))
		due, ok, err := plan.NextPaymentDueDate()
		if err != nil || !ok {
			t.Fatalf("got ok=%v err=%v", ok, err)
		}
		if !due.Equal(mustDate(t, "2021-01-29")) {
			t.Fatalf("got %v, want 2021-01-29", due)
		}
		if !plan.RemainingAmount().Equal(mustDecimal(t, "1300")) {
			t.Fatalf("remaining %s, want 1300", plan.RemainingAmount())
		}
	})

	t.Run("satisfied plan has no next due date", func(t *testing.T) {
		plan := newWeeklyPlan(t)
		plan.RecordPayment(mustDate(t, "2021-02-01"), mustDecimal(t, "1500"))
		_, ok, err := plan.NextPaymentDueDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("expected no next due date for a satisfied plan")
		}
	})

	t.Run("due date stays congruent to the schedule", func(t *testing.T) {
		start := mustDate(t, "2021-01-01")
		for _, paymentDate := range []string{"2021-01-03", "2021-01-08", "2021-02-20", "2021-06-30"} {
			plan := newWeeklyPlan(t)
			plan.RecordPayment(mustDate(t, paymentDate), mustDecimal(t, "50"))
			due, ok, err := plan.NextPaymentDueDate()
			if err != nil || !ok {
				t.Fatalf("payment on %s: got ok=%v err=%v", paymentDate, ok, err)
			}
			if !due.After(mustDate(t, paymentDate)) {
				t.Fatalf("payment on %s: due %v is not strictly after the last payment", paymentDate, due)
			}
			if days := int(due.Sub(start).Hours() / 24); days%7 != 0 {
				t.Fatalf("payment on %s: due %v is off the weekly schedule (%d days after start)", paymentDate, due, days)
			}
		}
	})

	t.Run("walk is bounded", func(t *testing.T) {
		plan := NewPaymentPlan(PaymentPlanParams{
			ID:                12,
			DebtID:            2,
			AmountToPay:       mustDecimal(t, "1500"),
			InstallmentAmount: mustDecimal(t, "50"),
			Frequency:         FrequencyWeekly,
			StartDate:         mustDate(t, "2021-01-01"),
			MaxScheduleSteps:  5,
		})
		// Far beyond 5 weekly steps from the start date.
		plan.RecordPayment(mustDate(t, "2022-01-01"), mustDecimal(t, "50"))
		_, _, err := plan.NextPaymentDueDate()
		if !errors.Is(err, ErrScheduleOverflow) {
			t.Fatalf("expected ErrScheduleOverflow, got %v", err)
		}
	})
}

func TestPaymentPlanConcurrentRecording(t *testing.T) {
	plan := newWeeklyPlan(t)
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plan.RecordPayment(mustDate(t, "2021-01-08"), mustDecimal(t, "10"))
		}()
	}
	wg.Wait()

	if got := len(plan.Payments()); got != 30 {
		t.Fatalf("got %d payments, want 30", got)
	}
	if !plan.RemainingAmount().Equal(mustDecimal(t, "1200")) {
		t.Fatalf("remaining %s, want 1200", plan.RemainingAmount())
	}
}
