package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID                  string `dynamodbav:"id"`
	CustomerID          string `dynamodbav:"customer_id"`
	CompanyID           string `dynamodbav:"company_id"`
	Title               string `dynamodbav:"title"`
	Description         string `dynamodbav:"description"`
	RequiresOnsiteVisit bool   `dynamodbav:"requires_onsite_visit"`
	OnsiteFeeAmount     string `dynamodbav:"onsite_fee_amount"`
	OnsiteFeePaid       bool   `dynamodbav:"onsite_fee_paid"`
	OnsiteFeePaidAt     string `dynamodbav:"onsite_fee_paid_at"`
	QuotedPrice         string `dynamodbav:"quoted_price"`
	Status              string `dynamodbav:"status"`
	DisputeReason       string `dynamodbav:"dispute_reason"`
	DeclineReason       string `dynamodbav:"decline_reason"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write after creation is conditioned on the status the caller read,
// which is the optimistic guard for concurrent actors.
type JobDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb dynamoAPI) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return job, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it)
}

// Save rewrites every mutable attribute of job in one UpdateItem,
// conditioned on the stored status still being expectedStatus.
func (r *JobDynamoRepository) Save(ctx context.Context, job entities.Job, expectedStatus entities.JobStatus) (entities.Job, error) {
	if job.UpdatedAt.IsZero() {
		job.UpdatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Job{}, err
	}
	delete(av, "id")

	fields := make([]string, 0, len(av))
	for k := range av {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	names := map[string]string{"#id": "id", "#status": "status"}
	values := map[string]types.AttributeValue{
		":expected": &types.AttributeValueMemberS{Value: string(expectedStatus)},
	}
	sets := make([]string, 0, len(fields))
	for _, f := range fields {
		names["#"+f] = f
		values[":"+f] = av[f]
		sets = append(sets, fmt.Sprintf("#%s = :%s", f, f))
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: job.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrStatusConflict
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return job, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it)
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                  j.ID,
		CustomerID:          j.CustomerID,
		CompanyID:           j.CompanyID,
		Title:               j.Title,
		Description:         j.Description,
		RequiresOnsiteVisit: j.RequiresOnsiteVisit,
		OnsiteFeeAmount:     formatNullAmount(j.OnsiteFeeAmount),
		OnsiteFeePaid:       j.OnsiteFeePaid,
		OnsiteFeePaidAt:     formatTimePtr(j.OnsiteFeePaidAt),
		QuotedPrice:         j.QuotedPrice.String(),
		Status:              string(j.Status),
		DisputeReason:       j.DisputeReason,
		DeclineReason:       j.DeclineReason,
		CreatedAt:           formatTime(j.CreatedAt),
		UpdatedAt:           formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) (entities.Job, error) {
	quoted, err := parseAmount("quoted_price", it.QuotedPrice)
	if err != nil {
		return entities.Job{}, err
	}
	fee, err := parseNullAmount("onsite_fee_amount", it.OnsiteFeeAmount)
	if err != nil {
		return entities.Job{}, err
	}
	return entities.Job{
		ID:                  it.ID,
		CustomerID:          it.CustomerID,
		CompanyID:           it.CompanyID,
		Title:               it.Title,
		Description:         it.Description,
		RequiresOnsiteVisit: it.RequiresOnsiteVisit,
		OnsiteFeeAmount:     fee,
		OnsiteFeePaid:       it.OnsiteFeePaid,
		OnsiteFeePaidAt:     parseTimePtr(it.OnsiteFeePaidAt),
		QuotedPrice:         quoted,
		Status:              entities.JobStatus(it.Status),
		DisputeReason:       it.DisputeReason,
		DeclineReason:       it.DeclineReason,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}, nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
