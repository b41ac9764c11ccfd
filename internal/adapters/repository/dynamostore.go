package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/config"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
	"github.com/armandopadilla/lasttimei-lamdbda/pkg/logger"
)

// insertCondition turns PutItem into "insert new item".
const insertCondition = "attribute_not_exists(id)"

// DynamoAPI is the subset of *dynamodb.Client used by DynamoStore.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoStore writes ActionRecords to a DynamoDB table.
type DynamoStore struct {
	client    DynamoAPI
	tableName string
	logger    logger.Logger
}

// NewDynamoStore wraps a process-wide client. The client must not be nil.
func NewDynamoStore(client DynamoAPI, opts ...DynamoOption) (*DynamoStore, error) {
	if client == nil {
		return nil, fmt.Errorf("dynamodb client is not initialized")
	}

	s := &DynamoStore{
		client:    client,
		tableName: config.DefaultTableName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Backend implements Store.
func (s *DynamoStore) Backend() string { return "dynamodb" }

// TableName returns the target table.
func (s *DynamoStore) TableName() string { return s.tableName }

// Insert implements Store with one conditional PutItem.
func (s *DynamoStore) Insert(ctx context.Context, rec model.ActionRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal action record: %w", ErrInvalidRecord, err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String(insertCondition),
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
		if s.logger != nil {
			s.logger.Debug(ctx, "dynamodb put failed",
				logger.String("table", s.tableName),
				logger.String("id", rec.ID),
				logger.Error(err),
			)
		}
		return fmt.Errorf("%w: failed to store action record in dynamodb: %w", ErrInsertFailed, err)
	}

	return nil
}

// Get implements Store with a consistent GetItem.
func (s *DynamoStore) Get(ctx context.Context, id string) (model.ActionRecord, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return model.ActionRecord{}, fmt.Errorf("failed to get action record from dynamodb: %w", err)
	}
	if len(out.Item) == 0 {
		return model.ActionRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var rec model.ActionRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return model.ActionRecord{}, fmt.Errorf("failed to unmarshal action record: %w", err)
	}
	return rec, nil
}
