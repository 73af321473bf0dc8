package store

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Record is a named score entry. Name is the table's partition key and the
// only identity a record has; no two records share a name.
type Record struct {
	// Name uniquely identifies the record.
	Name string `dynamodbav:"name"`

	// Score is the accumulated score value.
	Score int64 `dynamodbav:"score"`

	// UpdatedAt is the ISO 8601 timestamp of the last write, maintained
	// by the store.
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// recordKey builds the primary key for a record name.
func recordKey(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"name": &types.AttributeValueMemberS{Value: name},
	}
}
