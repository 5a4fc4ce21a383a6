package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrMissingSecret       = errors.New("webhook signing secret is not configured")
	ErrUnsupportedDatabase = errors.New("unsupported database uri")
)

// VerificationReason classifies webhook signature failures.
type VerificationReason string

const (
	ReasonMalformedHeader   VerificationReason = "malformed_header"
	ReasonSignatureMismatch VerificationReason = "signature_mismatch"
	ReasonExpired           VerificationReason = "expired"
)

// VerificationError reports that a notification could not be authenticated.
type VerificationError struct {
	Reason VerificationReason
	Err    error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("signature verification failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("signature verification failed (%s)", e.Reason)
}

func (e *VerificationError) Unwrap() error { return e.Err }

// DecodeReason classifies payload decoding failures.
type DecodeReason string

const (
	ReasonInvalidJSON          DecodeReason = "invalid_json"
	ReasonMissingRequiredField DecodeReason = "missing_required_field"
)

// DecodeError reports a verified payload that cannot be turned into an event.
type DecodeError struct {
	Reason DecodeReason
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("decode event (%s): %s", e.Reason, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("decode event (%s): %v", e.Reason, e.Err)
	default:
		return fmt.Sprintf("decode event (%s)", e.Reason)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ReconcileReason classifies fulfillment failures.
type ReconcileReason string

const (
	ReasonOrderNotFound ReconcileReason = "order_not_found"
	ReasonStorage       ReconcileReason = "storage_failure"
)

// ReconcileError reports that a payment event could not be applied to its order.
type ReconcileError struct {
	Reason  ReconcileReason
	OrderID string
	Err     error
}

func (e *ReconcileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reconcile order %q (%s): %v", e.OrderID, e.Reason, e.Err)
	}
	return fmt.Sprintf("reconcile order %q (%s)", e.OrderID, e.Reason)
}

func (e *ReconcileError) Unwrap() error { return e.Err }
