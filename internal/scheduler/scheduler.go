package scheduler

import (
	"context"

	"debt_reconciler/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs reconciliation snapshots on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	usecase  usecase.IReconcileUseCase
	log      *logrus.Logger
	schedule string
}

func New(uc usecase.IReconcileUseCase, log *logrus.Logger, schedule string) *Scheduler {
	c := cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(log))))
	return &Scheduler{
		cron:     c,
		usecase:  uc,
		log:      log,
		schedule: schedule,
	}
}

// Start registers the reconciliation job and starts the cron scheduler.
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc(s.schedule, s.runReconciliation); err != nil {
		s.log.Errorf("[reconcile][scheduler] failed to schedule job: %v", err)
		return
	}
	s.log.Infof("[reconcile][scheduler] scheduled reconciliation job schedule=%s", s.schedule)
	s.cron.Start()
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runReconciliation() {
	run, err := s.usecase.RunAndStore(context.Background())
	if err != nil {
		s.log.Errorf("[reconcile][scheduler] run failed: %v", err)
		return
	}
	s.log.Infof("[reconcile][scheduler] run stored id=%s debts=%d", run.ID, len(run.Records))
}
