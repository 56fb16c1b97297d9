package repository

import (
	"context"
	"errors"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "financial_transactions"

type transactionItem struct {
	JobID             string `dynamodbav:"job_id"`
	ID                string `dynamodbav:"id"`
	Type              string `dynamodbav:"type"`
	Amount            string `dynamodbav:"amount"`
	PlatformFee       string `dynamodbav:"platform_fee"`
	Status            string `dynamodbav:"status"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// TransactionDynamoRepository is the append-only ledger.
//
// Table requirements:
//   - PK: job_id (string)
//   - SK: id (string)
//
// Keying by job lets the ledger be read with a strongly consistent Query,
// which a GSI cannot offer.
type TransactionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb dynamoAPI) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Append(ctx context.Context, tx entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(tx))
	if err != nil {
		return entities.FinancialTransaction{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FinancialTransaction{}, interfaces.ErrTransactionExists
		}
		return entities.FinancialTransaction{}, err
	}
	return tx, nil
}

// ListByJobID pages through the whole ledger; a partial ledger would
// reconcile to a wrong balance.
func (r *TransactionDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.FinancialTransaction, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
		ConsistentRead: aws.Bool(true),
	})

	var items []entities.FinancialTransaction
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it transactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			tx, err := fromTransactionItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, tx)
		}
	}
	return items, nil
}

func toTransactionItem(tx entities.FinancialTransaction) transactionItem {
	return transactionItem{
		JobID:             tx.JobID,
		ID:                tx.ID,
		Type:              string(tx.Type),
		Amount:            tx.Amount.String(),
		PlatformFee:       tx.PlatformFee.String(),
		Status:            string(tx.Status),
		ProviderPaymentID: tx.ProviderPaymentID,
		CreatedAt:         formatTime(tx.CreatedAt),
	}
}

func fromTransactionItem(it transactionItem) (entities.FinancialTransaction, error) {
	amount, err := parseAmount("amount", it.Amount)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	fee, err := parseAmount("platform_fee", it.PlatformFee)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	return entities.FinancialTransaction{
		ID:                it.ID,
		JobID:             it.JobID,
		Type:              entities.TransactionType(it.Type),
		Amount:            amount,
		PlatformFee:       fee,
		Status:            entities.TransactionStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         parseTime(it.CreatedAt),
	}, nil
}
