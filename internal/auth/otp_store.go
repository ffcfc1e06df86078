package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"careervector/internal/cache"
)

const (
	otpKeyPrefix = "otp:"

	// OTPTTL is how long an issued verification code stays valid.
	OTPTTL = 5 * time.Minute
)

// OTPStoreInterface defines the interface for pending verification codes.
type OTPStoreInterface interface {
	Issue(ctx context.Context, email, code string) error
	Verify(ctx context.Context, email, candidate string) (bool, error)
}

// OTPStore holds pending verification codes in Redis, one per email, with
// expiry enforced by Redis itself.
type OTPStore struct {
	cache *cache.Client
}

// Ensure OTPStore implements OTPStoreInterface
var _ OTPStoreInterface = (*OTPStore)(nil)

// NewOTPStore creates a new OTP store.
func NewOTPStore(cache *cache.Client) *OTPStore {
	return &OTPStore{cache: cache}
}

// Issue stores code for email with the standard TTL, overwriting any code
// previously pending for that address.
func (s *OTPStore) Issue(ctx context.Context, email, code string) error {
	if err := s.cache.Set(ctx, otpKeyPrefix+email, code, OTPTTL); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	return nil
}

// Verify checks candidate against the pending code for email and consumes it
// on a match. The compare-and-delete is a single Redis operation, so a code
// verifies true at most once even under concurrent attempts. Absent, expired,
// and mismatched codes all report false.
func (s *OTPStore) Verify(ctx context.Context, email, candidate string) (bool, error) {
	ok, err := s.cache.CompareAndDelete(ctx, otpKeyPrefix+email, candidate)
	if err != nil {
		return false, fmt.Errorf("verify code: %w", err)
	}
	return ok, nil
}

// GenerateCode returns a random 6-digit verification code.
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand only fails when the platform source is broken
		panic(fmt.Sprintf("generate otp: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
