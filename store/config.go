package store

import "time"

// Config holds configuration for the Store.
type Config struct {
	// TableName is the DynamoDB table holding score records.
	// Default: "scores"
	TableName string

	// OperationTimeout bounds every store call, including all pages of a
	// scan. Default: 10s
	OperationTimeout time.Duration

	// RetryTimeout is the maximum elapsed time spent retrying a transient
	// read failure before giving up. Writes are never retried.
	// Default: 30s
	RetryTimeout time.Duration
}

// DefaultConfig returns sensible defaults for development environments.
func DefaultConfig() Config {
	return Config{
		TableName:        "scores",
		OperationTimeout: 10 * time.Second,
		RetryTimeout:     30 * time.Second,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = "scores"
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = 10 * time.Second
	}
	if c.RetryTimeout <= 0 {
		c.RetryTimeout = 30 * time.Second
	}
}
