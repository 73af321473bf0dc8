// Package store provides a DynamoDB data access layer for score records
// keyed by name.
//
// A [Store] wraps a single shared DynamoDB client and translates record
// operations into point calls against one configured table. It holds no
// state between calls; the table is the sole source of truth.
//
// # Operations
//
//   - [Store.Get] - point lookup by name
//   - [Store.Put] - unconditional upsert
//   - [Store.AddScore] - atomic score increment, no-op if the record is absent
//   - [Store.Delete] - point delete by name
//   - [Store.ScanAll] - full-table scan, expensive at production scale
//   - [Store.Ping] - fail-fast check that the configured table is reachable
//
// AddScore adds a contribution to the current score rather than replacing
// it. The increment is a single conditional UpdateItem, so concurrent calls
// for the same name all apply; there is no read-modify-write window.
//
// # Configuration
//
// Use [DefaultConfig] and override the table name per environment:
//
//	cfg := store.DefaultConfig()
//	cfg.TableName = "scores-prod"
//
// Every operation runs under Config.OperationTimeout. Reads are retried
// with exponential backoff on throttling and 5xx failures for up to
// Config.RetryTimeout; writes are attempted once.
//
// # Errors
//
// Expected absence is a value, not a failure: Get and Delete return
// [ErrNotFound] for a missing name. Backend failures are classified onto
// sentinels usable with errors.Is:
//
//   - [ErrNotFound] - no record with the given name
//   - [ErrInvalidName] - empty name
//   - [ErrAccessDenied] - the backend rejected the caller's authorization
//   - [ErrTableNotFound] - the configured table does not exist
//   - [ErrNoCredentials] - no credentials in the default provider chain
package store
