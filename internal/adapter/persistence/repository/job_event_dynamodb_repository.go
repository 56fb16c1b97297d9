package repository

import (
	"context"
	"sort"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobEventsTableName = "job_events"

type jobEventItem struct {
	JobID      string `dynamodbav:"job_id"`
	ID         string `dynamodbav:"id"`
	Operation  string `dynamodbav:"operation"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	ActorRole  string `dynamodbav:"actor_role"`
	ActorID    string `dynamodbav:"actor_id"`
	Reason     string `dynamodbav:"reason,omitempty"`
	Amount     string `dynamodbav:"amount,omitempty"`
	OccurredAt string `dynamodbav:"occurred_at"`
}

// JobEventDynamoRepository stores the audit trail.
//
// Table requirements:
//   - PK: job_id (string)
//   - SK: id (string)
type JobEventDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IJobEventRepository = (*JobEventDynamoRepository)(nil)

func NewJobEventDynamoRepository(ddb dynamoAPI) *JobEventDynamoRepository {
	return &JobEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_EVENTS_TABLE", defaultJobEventsTableName),
	}
}

func (r *JobEventDynamoRepository) Append(ctx context.Context, e entities.JobEvent) error {
	av, err := attributevalue.MarshalMap(jobEventItem{
		JobID:      e.JobID,
		ID:         e.ID,
		Operation:  e.Operation,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		ActorRole:  string(e.Actor.Role),
		ActorID:    e.Actor.ID,
		Reason:     e.Reason,
		Amount:     formatNullAmount(e.Amount),
		OccurredAt: formatTime(e.OccurredAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// ListByJobID returns the events oldest first.
func (r *JobEventDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.JobEvent, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})

	var events []entities.JobEvent
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it jobEventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			amount, err := parseNullAmount("amount", it.Amount)
			if err != nil {
				return nil, err
			}
			events = append(events, entities.JobEvent{
				ID:         it.ID,
				JobID:      it.JobID,
				Operation:  it.Operation,
				FromStatus: entities.JobStatus(it.FromStatus),
				ToStatus:   entities.JobStatus(it.ToStatus),
				Actor:      entities.Actor{Role: entities.ActorRole(it.ActorRole), ID: it.ActorID},
				Reason:     it.Reason,
				Amount:     amount,
				OccurredAt: parseTime(it.OccurredAt),
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OccurredAt.Before(events[j].OccurredAt)
	})
	return events, nil
}
