package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ZaguanLabs/golingo"
)

// DynamoAPI captures the DynamoDB operations the store uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// DynamoStore is a DynamoDB-backed translation cache store using a
// single-table append layout: every Put writes a fresh item under
// PK=CACHE#<key>, so duplicates for the same key coexist. Lookups query
// the partition with a liveness filter and treat the live item with the
// latest expiry as authoritative; usage counts are incremented with an
// ADD update, which is atomic per item.
type DynamoStore struct {
	client    DynamoAPI
	tableName string
	logger    *zap.Logger
}

// DynamoConfig holds configuration for the DynamoDB store.
type DynamoConfig struct {
	TableName string // DynamoDB table name
	Region    string // AWS region (empty = default resolution)
}

// NewDynamoStore creates a new DynamoDB store with the given client.
func NewDynamoStore(client DynamoAPI, tableName string, logger *zap.Logger) *DynamoStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DynamoStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// NewDynamoStoreFromConfig creates a DynamoDB store using the default AWS
// configuration chain.
func NewDynamoStoreFromConfig(ctx context.Context, cfg DynamoConfig, logger *zap.Logger) (*DynamoStore, error) {
	var optFns []func(*config.LoadOptions) error
	if cfg.Region != "" {
		optFns = append(optFns, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, &golingo.StorageError{Op: "connect", Message: "loading AWS config", Cause: err}
	}

	return NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.TableName, logger), nil
}

// cacheItem represents the DynamoDB item structure for a cache entry.
// ExpiresAt is epoch milliseconds so the liveness filter compares numbers.
type cacheItem struct {
	PK         string  `dynamodbav:"PK"` // CACHE#<key>
	SK         string  `dynamodbav:"SK"` // ENTRY#<created>#<entry id>
	EntryID    string  `dynamodbav:"EntryID"`
	CacheKey   string  `dynamodbav:"CacheKey"`
	SourceLang string  `dynamodbav:"SourceLang"`
	TargetLang string  `dynamodbav:"TargetLang"`
	Content    string  `dynamodbav:"Content"`
	Translated string  `dynamodbav:"Translated"`
	Backend    string  `dynamodbav:"Backend"`
	Confidence float64 `dynamodbav:"Confidence"`
	CreatedAt  string  `dynamodbav:"CreatedAt"`
	ExpiresAt  int64   `dynamodbav:"ExpiresAt"`
	UsageCount int64   `dynamodbav:"UsageCount"`
}

func cachePK(key string) string {
	return "CACHE#" + key
}

// Get queries the key's partition for live entries and atomically
// increments the usage count of the authoritative one.
func (s *DynamoStore) Get(ctx context.Context, key, sourceLang, targetLang string) (*golingo.CacheEntry, bool, error) {
	keyEx := expression.Key("PK").Equal(expression.Value(cachePK(key)))
	keyEx = keyEx.And(expression.Key("SK").BeginsWith("ENTRY#"))

	filter := expression.Name("ExpiresAt").GreaterThan(expression.Value(time.Now().UTC().UnixMilli()))
	filter = filter.And(expression.Name("SourceLang").Equal(expression.Value(sourceLang)))
	filter = filter.And(expression.Name("TargetLang").Equal(expression.Value(targetLang)))

	expr, err := expression.NewBuilder().
		WithKeyCondition(keyEx).
		WithFilter(filter).
		Build()
	if err != nil {
		return nil, false, &golingo.StorageError{Op: "get", Message: "building query expression", Cause: err}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false),
	}

	var best *cacheItem
	for {
		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, false, &golingo.StorageError{Op: "get", Message: "querying entries", Cause: err}
		}

		for _, raw := range out.Items {
			var item cacheItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, false, &golingo.StorageError{Op: "get", Message: "corrupt entry", Cause: err}
			}
			if best == nil || item.ExpiresAt > best.ExpiresAt {
				best = &item
			}
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	if best == nil {
		return nil, false, nil
	}

	updated, err := s.incrementUsage(ctx, best)
	if err != nil {
		return nil, false, err
	}

	s.logger.Debug("cache hit",
		zap.String("key", golingo.ShortKey(key)),
		zap.Int64("usage", updated.UsageCount),
	)

	entry, err := entryFromItem(updated)
	if err != nil {
		return nil, false, &golingo.StorageError{Op: "get", Message: "corrupt entry", Cause: err}
	}
	return entry, true, nil
}

// incrementUsage bumps the item's usage count and returns the updated item.
func (s *DynamoStore) incrementUsage(ctx context.Context, item *cacheItem) (*cacheItem, error) {
	update := expression.Add(expression.Name("UsageCount"), expression.Value(1))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, &golingo.StorageError{Op: "update", Message: "building update expression", Cause: err}
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: item.PK},
			"SK": &types.AttributeValueMemberS{Value: item.SK},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, &golingo.StorageError{Op: "update", Message: "incrementing usage", Cause: err}
	}

	var updated cacheItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return nil, &golingo.StorageError{Op: "update", Message: "corrupt entry", Cause: err}
	}
	return &updated, nil
}

// Put writes the entry as a fresh item. Earlier items for the same key are
// kept.
func (s *DynamoStore) Put(ctx context.Context, entry *golingo.CacheEntry) error {
	id := uuid.New().String()
	created := entry.CreatedAt.UTC()

	item := cacheItem{
		PK:         cachePK(entry.Key),
		SK:         fmt.Sprintf("ENTRY#%s#%s", created.Format(time.RFC3339), id),
		EntryID:    id,
		CacheKey:   entry.Key,
		SourceLang: entry.SourceLang,
		TargetLang: entry.TargetLang,
		Content:    entry.Content,
		Translated: entry.Translated,
		Backend:    entry.Backend,
		Confidence: entry.Confidence,
		CreatedAt:  created.Format(time.RFC3339Nano),
		ExpiresAt:  entry.ExpiresAt.UTC().UnixMilli(),
		UsageCount: entry.UsageCount,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return &golingo.StorageError{Op: "put", Message: "marshaling entry", Cause: err}
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return &golingo.StorageError{Op: "put", Message: "writing entry", Cause: err}
	}

	s.logger.Debug("stored cache entry",
		zap.String("key", golingo.ShortKey(entry.Key)),
		zap.String("target", entry.TargetLang),
	)
	return nil
}

// entryFromItem rebuilds a cache entry from its DynamoDB item.
func entryFromItem(item *cacheItem) (*golingo.CacheEntry, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &golingo.CacheEntry{
		Key:        item.CacheKey,
		SourceLang: item.SourceLang,
		TargetLang: item.TargetLang,
		Content:    item.Content,
		Translated: item.Translated,
		Backend:    item.Backend,
		Confidence: item.Confidence,
		CreatedAt:  createdAt,
		ExpiresAt:  time.UnixMilli(item.ExpiresAt).UTC(),
		UsageCount: item.UsageCount,
	}, nil
}

// Verify DynamoStore implements Store
var _ Store = (*DynamoStore)(nil)
