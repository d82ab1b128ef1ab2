package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	response "debt_reconciler/internal/adapter/http/dto/response"
	"debt_reconciler/internal/config"
	"debt_reconciler/internal/infrastructure/collections"
	"debt_reconciler/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// One-shot reconciliation: fetches the three streams, reconciles them and
// prints one JSON line per debt to stdout, ascending by debt id.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrus.New()
	// Keep stdout clean for the JSON lines.
	logger.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	source := collections.NewClient(collections.ClientParams{
		DebtsURL:        cfg.DebtsEndpoint,
		PaymentPlansURL: cfg.PaymentPlansEndpoint,
		PaymentsURL:     cfg.PaymentsEndpoint,
		Timeout:         time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		Logger:          logger,
	})
	reconcileUseCase := usecase.NewReconcileUseCase(source, nil, logger, cfg.MaxScheduleSteps)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	run, err := reconcileUseCase.Reconcile(ctx)
	if err != nil {
		logger.Fatalf("reconciliation failed: %v", err)
	}
	for _, rec := range run.Records {
		line, err := json.Marshal(response.FromReconciledDebt(rec))
		if err != nil {
			logger.Fatalf("encoding debt %d: %v", rec.ID, err)
		}
		fmt.Println(string(line))
	}
}
