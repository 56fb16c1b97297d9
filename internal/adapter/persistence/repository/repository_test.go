package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type fakeDynamo struct {
	put    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	get    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	update func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	pages  []*dynamodb.QueryOutput
	calls  int
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.put(in)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.get(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.update(in)
}

func (f *fakeDynamo) Query(_ context.Context, _ *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	out := f.pages[f.calls]
	f.calls++
	return out, nil
}

func sampleJob() entities.Job {
	paidAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return entities.Job{
		ID:                  "job-1",
		CustomerID:          "cust-1",
		CompanyID:           "comp-1",
		Title:               "Paint",
		RequiresOnsiteVisit: true,
		OnsiteFeeAmount:     decimal.NullDecimal{Decimal: decimal.RequireFromString("150.50"), Valid: true},
		OnsiteFeePaid:       true,
		OnsiteFeePaidAt:     &paidAt,
		QuotedPrice:         decimal.RequireFromString("1999.99"),
		Status:              entities.JobStatusPriceSet,
		CreatedAt:           paidAt,
		UpdatedAt:           paidAt,
	}
}

func TestJobItemRoundTrip(t *testing.T) {
	in := sampleJob()
	out, err := fromJobItem(toJobItem(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.QuotedPrice.Equal(in.QuotedPrice) || !out.OnsiteFeeAmount.Decimal.Equal(in.OnsiteFeeAmount.Decimal) || !out.OnsiteFeeAmount.Valid {
		t.Fatalf("amounts lost: %+v", out)
	}
	if out.OnsiteFeePaidAt == nil || !out.OnsiteFeePaidAt.Equal(*in.OnsiteFeePaidAt) {
		t.Fatalf("paid_at lost")
	}

	noFee := in
	noFee.OnsiteFeeAmount = decimal.NullDecimal{}
	noFee.OnsiteFeePaidAt = nil
	out, err = fromJobItem(toJobItem(noFee))
	if err != nil || out.OnsiteFeeAmount.Valid || out.OnsiteFeePaidAt != nil {
		t.Fatalf("expected empty optional fields, got %+v (%v)", out, err)
	}
}

func TestFromJobItemRejectsBadAmount(t *testing.T) {
	it := toJobItem(sampleJob())
	it.QuotedPrice = "12,5"
	if _, err := fromJobItem(it); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestJobRepository_GetByIDMissing(t *testing.T) {
	repo := NewJobDynamoRepository(&fakeDynamo{
		get: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if !aws.ToBool(in.ConsistentRead) {
				t.Fatalf("job reads must be consistent")
			}
			return &dynamodb.GetItemOutput{}, nil
		},
	})
	job, err := repo.GetByID(context.Background(), "job-1")
	if err != nil || job.ID != "" {
		t.Fatalf("expected zero job, got %+v (%v)", job, err)
	}
}

func TestJobRepository_SaveIsConditional(t *testing.T) {
	t.Run("condition on expected status", func(t *testing.T) {
		repo := NewJobDynamoRepository(&fakeDynamo{
			update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				if !strings.Contains(aws.ToString(in.ConditionExpression), "#status = :expected") {
					t.Fatalf("missing status guard: %s", aws.ToString(in.ConditionExpression))
				}
				expected := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS)
				if expected.Value != string(entities.JobStatusPending) {
					t.Fatalf("unexpected guard value %s", expected.Value)
				}
				if strings.Contains(aws.ToString(in.UpdateExpression), "#id =") {
					t.Fatalf("key must not be updated")
				}
				return &dynamodb.UpdateItemOutput{}, nil
			},
		})
		if _, err := repo.Save(context.Background(), sampleJob(), entities.JobStatusPending); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("returns stored attributes", func(t *testing.T) {
		stored, _ := attributevalue.MarshalMap(toJobItem(sampleJob()))
		repo := NewJobDynamoRepository(&fakeDynamo{
			update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return &dynamodb.UpdateItemOutput{Attributes: stored}, nil
			},
		})
		job, err := repo.Save(context.Background(), sampleJob(), entities.JobStatusPending)
		if err != nil || job.ID != "job-1" || !job.QuotedPrice.Equal(decimal.RequireFromString("1999.99")) {
			t.Fatalf("unexpected result %+v (%v)", job, err)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		repo := NewJobDynamoRepository(&fakeDynamo{
			update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("nope")}
			},
		})
		_, err := repo.Save(context.Background(), sampleJob(), entities.JobStatusPending)
		if !errors.Is(err, interfaces.ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})
}

func TestTransactionRepository_AppendDuplicate(t *testing.T) {
	repo := NewTransactionDynamoRepository(&fakeDynamo{
		put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
				t.Fatalf("append must never overwrite")
			}
			return nil, &types.ConditionalCheckFailedException{}
		},
	})
	_, err := repo.Append(context.Background(), entities.FinancialTransaction{ID: "t1", JobID: "job-1"})
	if !errors.Is(err, interfaces.ErrTransactionExists) {
		t.Fatalf("expected ErrTransactionExists, got %v", err)
	}
}

func TestTransactionRepository_ListReadsAllPages(t *testing.T) {
	item := func(id, amount string) map[string]types.AttributeValue {
		av, _ := attributevalue.MarshalMap(transactionItem{
			JobID: "job-1", ID: id, Type: "deposit", Amount: amount, PlatformFee: "0", Status: "completed",
		})
		return av
	}
	fake := &fakeDynamo{pages: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{item("t1", "10.25")}, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "t1"}}},
		{Items: []map[string]types.AttributeValue{item("t2", "5")}},
	}}
	txs, err := NewTransactionDynamoRepository(fake).ListByJobID(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 2 || fake.calls != 2 {
		t.Fatalf("expected two rows over two pages, got %d rows in %d calls", len(txs), fake.calls)
	}
	if !txs[0].Amount.Equal(decimal.RequireFromString("10.25")) {
		t.Fatalf("unexpected amount %s", txs[0].Amount)
	}
}

func TestJobEventRepository_ListOrdersByTime(t *testing.T) {
	item := func(id string, at time.Time) map[string]types.AttributeValue {
		av, _ := attributevalue.MarshalMap(jobEventItem{
			JobID: "job-1", ID: id, Operation: "report_issue", OccurredAt: formatTime(at), Reason: id,
		})
		return av
	}
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fake := &fakeDynamo{pages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{
		item("second", t0.Add(time.Hour)), item("first", t0),
	}}}}

	events, err := NewJobEventDynamoRepository(fake).ListByJobID(context.Background(), "job-1")
	if err != nil || len(events) != 2 {
		t.Fatalf("unexpected result %v (%v)", events, err)
	}
	if events[0].Reason != "first" || events[1].Reason != "second" {
		t.Fatalf("events out of order: %+v", events)
	}
}
