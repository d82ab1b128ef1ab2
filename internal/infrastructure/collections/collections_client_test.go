package collections

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(ClientParams{
		DebtsURL:        srv.URL + "/debts",
		PaymentPlansURL: srv.URL + "/payment_plans",
		PaymentsURL:     srv.URL + "/payments",
	})
}

func TestClientFetchesAllStreams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/debts":
			w.Write([]byte(`[{"id":0,"amount":123.46},{"id":1,"amount":100}]`))
		case "/payment_plans":
			w.Write([]byte(`[{"id":0,"debt_id":0,"amount_to_pay":102.5,"installment_frequency":"WEEKLY","installment_amount":51.25,"start_date":"2020-09-28"}]`))
		case "/payments":
			w.Write([]byte(`[{"payment_plan_id":0,"amount":51.25,"date":"2020-09-29"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newTestClient(srv)
	ctx := context.Background()

	debts, err := client.FetchDebts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(debts) != 2 || debts[0].ID != 0 || debts[0].Amount.String() != "123.46" {
		t.Fatalf("unexpected debts: %+v", debts)
	}

	plans, err := client.FetchPaymentPlans(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("unexpected payment plans: %+v", plans)
	}
	plan := plans[0]
	if plan.DebtID != 0 || plan.AmountToPay.String() != "102.5" || plan.InstallmentFrequency != "WEEKLY" || plan.StartDate != "2020-09-28" {
		t.Fatalf("unexpected payment plan: %+v", plan)
	}

	payments, err := client.FetchPayments(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 1 || payments[0].PaymentPlanID != 0 || payments[0].Amount.String() != "51.25" || payments[0].Date != "2020-09-29" {
		t.Fatalf("unexpected payments: %+v", payments)
	}
}

func TestClientRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	if _, err := client.FetchDebts(context.Background()); !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestClientRejectsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	if _, err := client.FetchDebts(context.Background()); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestClientHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(srv)
	if _, err := client.FetchDebts(ctx); err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
