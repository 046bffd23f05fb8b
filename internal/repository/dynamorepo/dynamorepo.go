package dynamorepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mrled/suns/numcheck/internal/model"
	"github.com/mrled/suns/numcheck/internal/recordid"
)

// DynamoAPI is the subset of the DynamoDB client used by the repository
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoRepository is a DynamoDB implementation of CheckRepository
type DynamoRepository struct {
	client    DynamoAPI
	tableName string
}

// NewDynamoRepository creates a new DynamoDB-backed repository
func NewDynamoRepository(client DynamoAPI, tableName string) *DynamoRepository {
	return &DynamoRepository{
		client:    client,
		tableName: tableName,
	}
}

// itemKey builds the primary key for a record ID.
// The kind is the partition key, and it is recovered from the ID itself.
func itemKey(id string) (map[string]types.AttributeValue, error) {
	parsed, err := recordid.ParseV1(id)
	if err != nil {
		return nil, err
	}
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: parsed.Kind},
		"sk": &types.AttributeValueMemberS{Value: id},
	}, nil
}

// Store saves a check record to DynamoDB
func (r *DynamoRepository) Store(ctx context.Context, record *model.CheckRecord) error {
	if record == nil {
		return fmt.Errorf("check record cannot be nil")
	}

	item, err := attributevalue.MarshalMap(FromDomain(record))
	if err != nil {
		return fmt.Errorf("failed to marshal check record: %w", err)
	}

	// Matches MemoryRepository.Store, which returns ErrAlreadyExists
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(pk) AND attribute_not_exists(sk)"),
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("failed to store check record: %w", err)
	}

	return nil
}

// Get retrieves a check record by ID from DynamoDB
func (r *DynamoRepository) Get(ctx context.Context, id string) (*model.CheckRecord, error) {
	key, err := itemKey(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNotFound, err)
	}

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get check record: %w", err)
	}

	if result.Item == nil {
		return nil, model.ErrNotFound
	}

	var dto DynamoDTO
	if err := attributevalue.UnmarshalMap(result.Item, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal check record: %w", err)
	}

	return dto.ToDomain(), nil
}

// List retrieves all check records from DynamoDB, following scan pagination
func (r *DynamoRepository) List(ctx context.Context) ([]*model.CheckRecord, error) {
	var dtos []*DynamoDTO

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check records: %w", err)
		}

		var pageDTOs []*DynamoDTO
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageDTOs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal check records: %w", err)
		}
		dtos = append(dtos, pageDTOs...)
	}

	return ToDomainList(dtos), nil
}

// Delete removes a check record by ID from DynamoDB
func (r *DynamoRepository) Delete(ctx context.Context, id string) error {
	key, err := itemKey(id)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrNotFound, err)
	}

	// Matches MemoryRepository.Delete, which returns ErrNotFound
	_, err = r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(pk) AND attribute_exists(sk)"),
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete check record: %w", err)
	}

	return nil
}
