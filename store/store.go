package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Store provides record operations against a single DynamoDB table.
// It is stateless and safe for concurrent use.
type Store struct {
	client DynamoDBAPI
	config Config
	logger *zap.Logger
}

// New creates a new Store instance around a shared client.
func New(client DynamoDBAPI, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the structured logger used for operation and retry logging.
func (s *Store) SetLogger(logger *zap.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// opContext bounds a store call with the configured operation timeout.
func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.config.OperationTimeout)
}

// Get performs a point lookup by name, returning ErrNotFound if no record
// exists. The read is retried on transient backend failures.
func (s *Store) Get(ctx context.Context, name string) (*Record, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var out *dynamodb.GetItemOutput
	err := s.retryRead(ctx, "get", func() error {
		var err error
		out, err = s.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(s.config.TableName),
			Key:       recordKey(name),
		})
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var rec Record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record %q: %w", name, err)
	}

	s.logger.Debug("fetched record",
		zap.String("name", rec.Name),
		zap.Int64("score", rec.Score),
	)
	return &rec, nil
}

// Put writes a record unconditionally, creating it if absent and replacing
// it otherwise. The record's UpdatedAt field is set to the write time.
func (s *Store) Put(ctx context.Context, rec Record) error {
	if rec.Name == "" {
		return ErrInvalidName
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", rec.Name, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.TableName),
		Item:      item,
	})
	if err != nil {
		return classify(err)
	}

	s.logger.Debug("put record",
		zap.String("name", rec.Name),
		zap.Int64("score", rec.Score),
	)
	return nil
}

// AddScore adds delta to the named record's score as a single atomic
// update. If no record exists for the name, the call is a silent no-op:
// no record is created and no error is returned. Concurrent calls for the
// same name all apply; there is no lost-update window.
func (s *Store) AddScore(ctx context.Context, name string, delta int64) error {
	if name == "" {
		return ErrInvalidName
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	update := expression.
		Add(expression.Name("score"), expression.Value(delta)).
		Set(expression.Name("updated_at"), expression.Value(now))
	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("name"))).
		Build()
	if err != nil {
		return fmt.Errorf("build update expression: %w", err)
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.config.TableName),
		Key:                       recordKey(name),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	// Absent record: records are only created by an explicit write.
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		s.logger.Debug("add score skipped, record absent", zap.String("name", name))
		return nil
	}
	if err != nil {
		return classify(err)
	}

	s.logger.Debug("added score",
		zap.String("name", name),
		zap.Int64("delta", delta),
	)
	return nil
}

// ScanAll reads every record in the table, draining all scan pages.
// Latency and cost are proportional to table size; prefer Get wherever the
// name is known. Each page read is retried on transient failures, and the
// whole scan is bounded by the operation timeout.
func (s *Store) ScanAll(ctx context.Context) ([]Record, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var records []Record
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: aws.String(s.config.TableName),
	})

	for paginator.HasMorePages() {
		var page *dynamodb.ScanOutput
		err := s.retryRead(ctx, "scan", func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, classify(err)
		}

		for _, raw := range page.Items {
			var rec Record
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, fmt.Errorf("unmarshal scanned record: %w", err)
			}
			records = append(records, rec)
		}
	}

	s.logger.Debug("scanned table", zap.Int("records", len(records)))
	return records, nil
}

// Delete removes the named record, returning ErrNotFound if no record
// existed for the name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidName
	}
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	out, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(s.config.TableName),
		Key:          recordKey(name),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return classify(err)
	}
	if len(out.Attributes) == 0 {
		return ErrNotFound
	}

	s.logger.Debug("deleted record", zap.String("name", name))
	return nil
}

// Ping verifies the configured table is reachable with the resolved
// credentials. Call it at startup to fail fast on a bad table name,
// region, or credential chain.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.config.TableName),
	})
	return classify(err)
}
