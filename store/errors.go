package store

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrNotFound is returned when no record exists for the given name.
	// Absence is an expected outcome, not a backend failure.
	ErrNotFound = errors.New("scorestore: record not found")

	// ErrInvalidName is returned when the identifying name is empty.
	ErrInvalidName = errors.New("scorestore: record name must not be empty")

	// ErrAccessDenied is returned when the backend rejects the caller's
	// authorization for the requested operation.
	ErrAccessDenied = errors.New("scorestore: access denied")

	// ErrTableNotFound is returned when the configured table does not exist
	// at the resolved endpoint and region.
	ErrTableNotFound = errors.New("scorestore: table not found")

	// ErrNoCredentials is returned when the default provider chain yields
	// no usable credentials.
	ErrNoCredentials = errors.New("scorestore: no AWS credentials available")
)

// classify maps backend failures onto the package sentinels so callers can
// branch with errors.Is. Failures with no mapping propagate unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return fmt.Errorf("%w: %v", ErrTableNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException", "AccessDenied":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		case "UnrecognizedClientException", "InvalidSignatureException", "MissingAuthenticationToken":
			return fmt.Errorf("%w: %v", ErrNoCredentials, err)
		}
	}

	return err
}
