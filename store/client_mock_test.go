package store_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/arcadehq/scorestore/store"
)

// mockClient implements store.DynamoDBAPI with per-operation functions.
// Operations without a function set fail the test.
type mockClient struct {
	t *testing.T

	getFunc      func(ctx context.Context, params *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putFunc      func(ctx context.Context, params *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateFunc   func(ctx context.Context, params *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteFunc   func(ctx context.Context, params *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	scanFunc     func(ctx context.Context, params *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	describeFunc func(ctx context.Context, params *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error)
}

var _ store.DynamoDBAPI = (*mockClient)(nil)

func newMockClient(t *testing.T) *mockClient {
	return &mockClient{t: t}
}

func (m *mockClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.getFunc == nil {
		m.t.Fatal("unexpected GetItem call")
	}
	return m.getFunc(ctx, params)
}

func (m *mockClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.putFunc == nil {
		m.t.Fatal("unexpected PutItem call")
	}
	return m.putFunc(ctx, params)
}

func (m *mockClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if m.updateFunc == nil {
		m.t.Fatal("unexpected UpdateItem call")
	}
	return m.updateFunc(ctx, params)
}

func (m *mockClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if m.deleteFunc == nil {
		m.t.Fatal("unexpected DeleteItem call")
	}
	return m.deleteFunc(ctx, params)
}

func (m *mockClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if m.scanFunc == nil {
		m.t.Fatal("unexpected Scan call")
	}
	return m.scanFunc(ctx, params)
}

func (m *mockClient) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if m.describeFunc == nil {
		m.t.Fatal("unexpected DescribeTable call")
	}
	return m.describeFunc(ctx, params)
}
