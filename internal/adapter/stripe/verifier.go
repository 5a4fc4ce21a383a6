package stripe

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82/webhook"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
)

// SignatureHeader carries the provider signature over the raw request body.
const SignatureHeader = "Stripe-Signature"

// Verifier authenticates webhook payloads signed with the endpoint secret
// using Stripe's timestamped HMAC-SHA256 scheme.
type Verifier struct {
	secret    string
	tolerance time.Duration
}

// NewVerifier builds a verifier. An empty secret is rejected so that
// verification can never be silently skipped.
func NewVerifier(secret string, tolerance time.Duration) (*Verifier, error) {
	if secret == "" {
		return nil, domainErrors.ErrMissingSecret
	}
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &Verifier{secret: secret, tolerance: tolerance}, nil
}

// Verify checks the signature header against the exact payload bytes.
func (v *Verifier) Verify(payload []byte, header string) error {
	if header == "" {
		return &domainErrors.VerificationError{Reason: domainErrors.ReasonMalformedHeader, Err: webhook.ErrNotSigned}
	}
	if !wellFormedHeader(header) {
		return &domainErrors.VerificationError{Reason: domainErrors.ReasonMalformedHeader, Err: webhook.ErrInvalidHeader}
	}

	err := webhook.ValidatePayloadWithTolerance(payload, header, v.secret, v.tolerance)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, webhook.ErrNotSigned), errors.Is(err, webhook.ErrInvalidHeader):
		return &domainErrors.VerificationError{Reason: domainErrors.ReasonMalformedHeader, Err: err}
	case errors.Is(err, webhook.ErrTooOld):
		return &domainErrors.VerificationError{Reason: domainErrors.ReasonExpired, Err: err}
	default:
		return &domainErrors.VerificationError{Reason: domainErrors.ReasonSignatureMismatch, Err: err}
	}
}

// wellFormedHeader reports whether header carries an integer t= pair and at
// least one hex encoded v1= pair. Unknown keys are allowed.
func wellFormedHeader(header string) bool {
	var hasTimestamp, hasSignature bool
	for _, pair := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				return false
			}
			hasTimestamp = true
		case "v1":
			if value == "" {
				continue
			}
			if _, err := hex.DecodeString(value); err == nil {
				hasSignature = true
			}
		}
	}
	return hasTimestamp && hasSignature
}
