package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrInvalidConfig means the bucket or region is missing.
	ErrInvalidConfig = errors.New("s3: bucket and region are required")

	// ErrInvalidKey means the object key failed validation.
	ErrInvalidKey = errors.New("s3: invalid object key")

	// ErrObjectNotFound means the key does not exist in the bucket.
	ErrObjectNotFound = errors.New("s3: object not found")

	// ErrAccessDenied means the credentials lack permission for the
	// operation.
	ErrAccessDenied = errors.New("s3: access denied")

	// ErrUnavailable means the service asked us to back off.
	ErrUnavailable = errors.New("s3: service unavailable")
)

// classifyError converts SDK errors to the package sentinels so callers
// can branch without importing AWS types.
func classifyError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("s3: %s: %w", operation, err)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, operation)
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, operation)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrObjectNotFound, operation)
		case "AccessDenied":
			return fmt.Errorf("%w: %s", ErrAccessDenied, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s", ErrUnavailable, operation)
		default:
			return fmt.Errorf("s3: %s failed (code %s): %w", operation, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("s3: %s failed: %w", operation, err)
}
