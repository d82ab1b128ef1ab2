package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"debt_reconciler/internal/domain/entities"
	"debt_reconciler/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownReference        = errors.New("unknown reference")
	ErrMalformedRecord         = errors.New("malformed record")
	ErrSourceFetchFailed       = errors.New("source fetch failed")
	ErrInvalidReconciliationID = errors.New("invalid reconciliation id")
	ErrReconciliationNotFound  = errors.New("reconciliation not found")
)

// IReconcileUseCase encapsulates the reconciliation engine.
//
// A run joins payments into payment plans, payment plans into debts, and
// derives per debt: is_in_payment_plan, remaining_amount and
// next_payment_due_date. All join failures are fatal to the whole batch;
// silently dropping an orphaned record would corrupt a balance.
type IReconcileUseCase interface {
	Reconcile(ctx context.Context) (entities.Reconciliation, error)
	RunAndStore(ctx context.Context) (entities.Reconciliation, error)
	GetByID(ctx context.Context, id string) (entities.Reconciliation, error)
}

type ReconcileUseCase struct {
	source           interfaces.IDebtSource
	repo             interfaces.IReconciliationRepository
	log              *logrus.Logger
	maxScheduleSteps int
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

// NewReconcileUseCase wires the engine. repo may be nil for callers that never
// persist (the one-shot CLI). maxScheduleSteps <= 0 falls back to the default
// ceiling.
func NewReconcileUseCase(source interfaces.IDebtSource, repo interfaces.IReconciliationRepository, log *logrus.Logger, maxScheduleSteps int) *ReconcileUseCase {
	if log == nil {
		log = logrus.New()
	}
	return &ReconcileUseCase{source: source, repo: repo, log: log, maxScheduleSteps: maxScheduleSteps}
}

// Reconcile fetches the three streams, performs the joins and computes the
// derived record for every debt, ordered by ascending debt id.
func (u *ReconcileUseCase) Reconcile(ctx context.Context) (entities.Reconciliation, error) {
	if u.source == nil {
		return entities.Reconciliation{}, errors.New("debt source not configured")
	}

	start := time.Now().UTC()
	u.log.Infof("[reconcile][usecase] run start")

	debtRecs, planRecs, payRecs, err := u.fetchAll(ctx)
	if err != nil {
		u.log.Errorf("[reconcile][usecase] fetch failed err=%v", err)
		return entities.Reconciliation{}, err
	}
	u.log.Infof("[reconcile][usecase] fetched debts=%d payment_plans=%d payments=%d", len(debtRecs), len(planRecs), len(payRecs))

	debts, err := u.buildDebts(debtRecs)
	if err != nil {
		return entities.Reconciliation{}, err
	}
	plans, err := u.buildPaymentPlans(planRecs)
	if err != nil {
		return entities.Reconciliation{}, err
	}
	if err := u.recordPayments(plans, payRecs); err != nil {
		return entities.Reconciliation{}, err
	}
	if err := u.attachPlans(debts, plans); err != nil {
		return entities.Reconciliation{}, err
	}

	records, err := summarize(debts)
	if err != nil {
		u.log.Errorf("[reconcile][usecase] summarize failed err=%v", err)
		return entities.Reconciliation{}, err
	}

	run := entities.Reconciliation{
		ID:      uuid.NewString(),
		RunAt:   start,
		Records: records,
	}
	u.log.Infof("[reconcile][usecase] run success id=%s debts=%d", run.ID, len(run.Records))
	return run, nil
}

// RunAndStore reconciles and persists the run as a snapshot.
func (u *ReconcileUseCase) RunAndStore(ctx context.Context) (entities.Reconciliation, error) {
	if u.repo == nil {
		return entities.Reconciliation{}, errors.New("reconciliation repository not configured")
	}
	run, err := u.Reconcile(ctx)
	if err != nil {
		return entities.Reconciliation{}, err
	}
	created, err := u.repo.Create(ctx, run)
	if err != nil {
		u.log.Errorf("[reconcile][usecase] store failed id=%s err=%v", run.ID, err)
		return entities.Reconciliation{}, err
	}
	u.log.Infof("[reconcile][usecase] stored id=%s", created.ID)
	return created, nil
}

// GetByID returns a persisted run snapshot.
func (u *ReconcileUseCase) GetByID(ctx context.Context, id string) (entities.Reconciliation, error) {
	if u.repo == nil {
		return entities.Reconciliation{}, errors.New("reconciliation repository not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Reconciliation{}, ErrInvalidReconciliationID
	}
	run, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Reconciliation{}, err
	}
	if run.ID == "" {
		return entities.Reconciliation{}, ErrReconciliationNotFound
	}
	return run, nil
}

// fetchAll retrieves the three independent streams concurrently. The join
// phases must not start until every stream is fully ingested, so this is a
// hard barrier.
func (u *ReconcileUseCase) fetchAll(ctx context.Context) ([]interfaces.DebtRecord, []interfaces.PaymentPlanRecord, []interfaces.PaymentRecord, error) {
	var (
		wg       sync.WaitGroup
		debtRecs []interfaces.DebtRecord
		planRecs []interfaces.PaymentPlanRecord
		payRecs  []interfaces.PaymentRecord
		debtsErr error
		plansErr error
		paysErr  error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		debtRecs, debtsErr = u.source.FetchDebts(ctx)
	}()
	go func() {
		defer wg.Done()
		planRecs, plansErr = u.source.FetchPaymentPlans(ctx)
	}()
	go func() {
		defer wg.Done()
		payRecs, paysErr = u.source.FetchPayments(ctx)
	}()
	wg.Wait()

	if debtsErr != nil {
		return nil, nil, nil, fmt.Errorf("%w: debts: %v", ErrSourceFetchFailed, debtsErr)
	}
	if plansErr != nil {
		return nil, nil, nil, fmt.Errorf("%w: payment plans: %v", ErrSourceFetchFailed, plansErr)
	}
	if paysErr != nil {
		return nil, nil, nil, fmt.Errorf("%w: payments: %v", ErrSourceFetchFailed, paysErr)
	}
	return debtRecs, planRecs, payRecs, nil
}

func (u *ReconcileUseCase) buildDebts(recs []interfaces.DebtRecord) (map[int64]*entities.Debt, error) {
	debts := make(map[int64]*entities.Debt, len(recs))
	for _, rec := range recs {
		amount, err := decimal.NewFromString(rec.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("%w: debt %d amount %q: %v", ErrMalformedRecord, rec.ID, rec.Amount.String(), err)
		}
		debts[rec.ID] = entities.NewDebt(rec.ID, amount)
	}
	return debts, nil
}

func (u *ReconcileUseCase) buildPaymentPlans(recs []interfaces.PaymentPlanRecord) (map[int64]*entities.PaymentPlan, error) {
	plans := make(map[int64]*entities.PaymentPlan, len(recs))
	for _, rec := range recs {
		amountToPay, err := decimal.NewFromString(rec.AmountToPay.String())
		if err != nil {
			return nil, fmt.Errorf("%w: payment plan %d amount_to_pay %q: %v", ErrMalformedRecord, rec.ID, rec.AmountToPay.String(), err)
		}
		installmentAmount, err := decimal.NewFromString(rec.InstallmentAmount.String())
		if err != nil {
			return nil, fmt.Errorf("%w: payment plan %d installment_amount %q: %v", ErrMalformedRecord, rec.ID, rec.InstallmentAmount.String(), err)
		}
		frequency, err := entities.ParseFrequency(rec.InstallmentFrequency)
		if err != nil {
			return nil, fmt.Errorf("%w: payment plan %d: %v", ErrMalformedRecord, rec.ID, err)
		}
		startDate, err := time.Parse(entities.DateLayout, rec.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: payment plan %d start_date %q: %v", ErrMalformedRecord, rec.ID, rec.StartDate, err)
		}
		plans[rec.ID] = entities.NewPaymentPlan(entities.PaymentPlanParams{
			ID:                rec.ID,
			DebtID:            rec.DebtID,
			AmountToPay:       amountToPay,
			InstallmentAmount: installmentAmount,
			Frequency:         frequency,
			StartDate:         startDate,
			MaxScheduleSteps:  u.maxScheduleSteps,
		})
	}
	return plans, nil
}

// recordPayments routes each payment to its owning plan. An unresolvable
// payment_plan_id aborts the batch.
func (u *ReconcileUseCase) recordPayments(plans map[int64]*entities.PaymentPlan, recs []interfaces.PaymentRecord) error {
	for _, rec := range recs {
		plan, ok := plans[rec.PaymentPlanID]
		if !ok {
			return fmt.Errorf("%w: unknown payment plan id %d", ErrUnknownReference, rec.PaymentPlanID)
		}
		date, err := time.Parse(entities.DateLayout, rec.Date)
		if err != nil {
			return fmt.Errorf("%w: payment for plan %d date %q: %v", ErrMalformedRecord, rec.PaymentPlanID, rec.Date, err)
		}
		amount, err := decimal.NewFromString(rec.Amount.String())
		if err != nil {
			return fmt.Errorf("%w: payment for plan %d amount %q: %v", ErrMalformedRecord, rec.PaymentPlanID, rec.Amount.String(), err)
		}
		plan.RecordPayment(date, amount)
	}
	return nil
}

// attachPlans joins payment plans onto their owning debts. A plan referencing
// a debt id absent from the debt set aborts the batch.
func (u *ReconcileUseCase) attachPlans(debts map[int64]*entities.Debt, plans map[int64]*entities.PaymentPlan) error {
	for _, plan := range plans {
		debt, ok := debts[plan.DebtID()]
		if !ok {
			return fmt.Errorf("%w: unknown debt id %d from payment plan %d", ErrUnknownReference, plan.DebtID(), plan.ID())
		}
		if err := debt.AttachPaymentPlan(plan); err != nil {
			return err
		}
	}
	return nil
}

// summarize computes the derived record for every debt, ordered by ascending
// debt id. Derived fields are computed here on demand, never cached.
func summarize(debts map[int64]*entities.Debt) ([]entities.ReconciledDebt, error) {
	ids := make([]int64, 0, len(debts))
	for id := range debts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	records := make([]entities.ReconciledDebt, 0, len(ids))
	for _, id := range ids {
		debt := debts[id]
		due, ok, err := debt.NextPaymentDueDate()
		if err != nil {
			return nil, err
		}
		rec := entities.ReconciledDebt{
			ID:              debt.ID(),
			Amount:          debt.Amount(),
			IsInPaymentPlan: debt.IsInPaymentPlan(),
			RemainingAmount: debt.RemainingAmount(),
		}
		if ok {
			d := due
			rec.NextPaymentDueDate = &d
		}
		records = append(records, rec)
	}
	return records, nil
}
