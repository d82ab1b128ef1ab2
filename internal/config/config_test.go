package config

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port %q, want 8080", cfg.Port)
	}
	for name, endpoint := range map[string]string{
		"debts":         cfg.DebtsEndpoint,
		"payment plans": cfg.PaymentPlansEndpoint,
		"payments":      cfg.PaymentsEndpoint,
	} {
		if !strings.HasPrefix(endpoint, "https://") {
			t.Fatalf("%s endpoint default %q is not an absolute URL", name, endpoint)
		}
	}
	if cfg.FetchTimeoutSeconds != 3 {
		t.Fatalf("fetch timeout %d, want 3", cfg.FetchTimeoutSeconds)
	}
	if cfg.MaxScheduleSteps != 10000 {
		t.Fatalf("max schedule steps %d, want 10000", cfg.MaxScheduleSteps)
	}
	if cfg.ReconcileJobSchedule != "@hourly" {
		t.Fatalf("job schedule %q, want @hourly", cfg.ReconcileJobSchedule)
	}
	if cfg.ReconciliationsTable != "reconciliations" {
		t.Fatalf("table %q, want reconciliations", cfg.ReconciliationsTable)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DEBTS_ENDPOINT", "http://localhost:3000/debts")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "10")
	t.Setenv("MAX_SCHEDULE_STEPS", "50")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9999" {
		t.Fatalf("port %q, want 9999", cfg.Port)
	}
	if cfg.DebtsEndpoint != "http://localhost:3000/debts" {
		t.Fatalf("debts endpoint %q", cfg.DebtsEndpoint)
	}
	if cfg.FetchTimeoutSeconds != 10 {
		t.Fatalf("fetch timeout %d, want 10", cfg.FetchTimeoutSeconds)
	}
	if cfg.MaxScheduleSteps != 50 {
		t.Fatalf("max schedule steps %d, want 50", cfg.MaxScheduleSteps)
	}
}
