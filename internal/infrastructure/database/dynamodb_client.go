package database

import (
	"context"
	"log"

	appconfig "job_engagement/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client or exits. Local DynamoDB does
// not validate credentials, but the SDK still requires some.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDB) *dynamodb.Client {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	if cfg.Endpoint != "" {
		log.Printf("[database][dynamodb] using endpoint %s", cfg.Endpoint)
	}
	return dynamodb.NewFromConfig(awsCfg, endpointOption(cfg.Endpoint))
}

func NewAWSConfig(ctx context.Context, cfg appconfig.DynamoDB) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
}

func endpointOption(endpoint string) func(*dynamodb.Options) {
	return func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}
}
