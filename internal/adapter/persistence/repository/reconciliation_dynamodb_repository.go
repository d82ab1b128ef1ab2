package repository

import (
	"context"
	"time"

	"debt_reconciler/internal/domain/entities"
	"debt_reconciler/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultReconciliationsTableName = "reconciliations"

type reconciledDebtItem struct {
	ID                 int64  `dynamodbav:"id"`
	Amount             string `dynamodbav:"amount"`
	IsInPaymentPlan    bool   `dynamodbav:"is_in_payment_plan"`
	RemainingAmount    string `dynamodbav:"remaining_amount"`
	NextPaymentDueDate string `dynamodbav:"next_payment_due_date,omitempty"`
}

type reconciliationItem struct {
	ID        string               `dynamodbav:"id"`
	RunAt     string               `dynamodbav:"run_at"`
	DebtCount int                  `dynamodbav:"debt_count"`
	Records   []reconciledDebtItem `dynamodbav:"records"`
}

// ReconciliationDynamoRepository persists Reconciliation run snapshots in
// DynamoDB. Amounts are stored as exact decimal strings.
//
// Table requirements:
//   - PK: id (string)
type ReconciliationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReconciliationRepository = (*ReconciliationDynamoRepository)(nil)

func NewReconciliationDynamoRepository(ddb *dynamodb.Client) *ReconciliationDynamoRepository {
	return &ReconciliationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECONCILIATIONS_TABLE", defaultReconciliationsTableName),
	}
}

func (r *ReconciliationDynamoRepository) Create(ctx context.Context, run entities.Reconciliation) (entities.Reconciliation, error) {
	it := toReconciliationItem(run)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Reconciliation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Reconciliation{}, err
	}
	return run, nil
}

func (r *ReconciliationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Reconciliation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Reconciliation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Reconciliation{}, nil
	}

	var it reconciliationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Reconciliation{}, err
	}
	return fromReconciliationItem(it), nil
}

func toReconciliationItem(run entities.Reconciliation) reconciliationItem {
	records := make([]reconciledDebtItem, 0, len(run.Records))
	for _, rec := range run.Records {
		it := reconciledDebtItem{
			ID:              rec.ID,
			Amount:          rec.Amount.String(),
			IsInPaymentPlan: rec.IsInPaymentPlan,
			RemainingAmount: rec.RemainingAmount.String(),
		}
		if rec.NextPaymentDueDate != nil {
			it.NextPaymentDueDate = rec.NextPaymentDueDate.Format(entities.DateLayout)
		}
		records = append(records, it)
	}
	return reconciliationItem{
		ID:        run.ID,
		RunAt:     run.RunAt.UTC().Format(time.RFC3339Nano),
		DebtCount: len(run.Records),
		Records:   records,
	}
}

func fromReconciliationItem(it reconciliationItem) entities.Reconciliation {
	runAt, _ := time.Parse(time.RFC3339Nano, it.RunAt)
	records := make([]entities.ReconciledDebt, 0, len(it.Records))
	for _, recIt := range it.Records {
		amount, _ := decimal.NewFromString(recIt.Amount)
		remaining, _ := decimal.NewFromString(recIt.RemainingAmount)
		rec := entities.ReconciledDebt{
			ID:              recIt.ID,
			Amount:          amount,
			IsInPaymentPlan: recIt.IsInPaymentPlan,
			RemainingAmount: remaining,
		}
		if recIt.NextPaymentDueDate != "" {
			due, err := time.Parse(entities.DateLayout, recIt.NextPaymentDueDate)
			if err == nil {
				rec.NextPaymentDueDate = &due
			}
		}
		records = append(records, rec)
	}
	return entities.Reconciliation{
		ID:      it.ID,
		RunAt:   runAt,
		Records: records,
	}
}
