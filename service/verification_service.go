// file: service/verification_service.go

package service

import (
	"context"
	"fmt"
	"math/rand"
	"member-api/common"
	"member-api/logger"
	"member-api/repository"
	"time"
)

const phoneVerificationKeyFormat = "phone_verification:%s"

// InvalidMobilePhoneFormatError reports a phone number that does not match
// the accepted format. The offending value is echoed back to the caller.
type InvalidMobilePhoneFormatError struct {
	MobilePhone string
}

func (e *InvalidMobilePhoneFormatError) Error() string {
	return fmt.Sprintf("invalid mobile phone format: %q", e.MobilePhone)
}

// TooManyPhoneRetryAttemptError reports a request inside the minimum retry
// window. TimeLeft is how long the caller must wait before retrying.
type TooManyPhoneRetryAttemptError struct {
	TimeLeft time.Duration
}

func (e *TooManyPhoneRetryAttemptError) Error() string {
	return fmt.Sprintf("too many phone verification attempts, retry in %d seconds", int64(e.TimeLeft.Seconds()))
}

func PhoneVerificationKey(mobilePhone string) string {
	return fmt.Sprintf(phoneVerificationKeyFormat, mobilePhone)
}

// VerificationService issues phone verification codes, rate limited through
// the TTL of the previous code: a new code is only allowed once the old
// record has aged past the minimum retry interval.
type VerificationService struct {
	store            repository.ISessionStore
	otpTTL           time.Duration
	minRetryInterval time.Duration
}

func NewVerificationService(store repository.ISessionStore, otpTTL, minRetryInterval time.Duration) *VerificationService {
	return &VerificationService{
		store:            store,
		otpTTL:           otpTTL,
		minRetryInterval: minRetryInterval,
	}
}

// GeneratePhoneVerificationCode validates the phone number, enforces the
// retry window, and stores a fresh 6-digit code under the phone's key.
//
// Two concurrent requests for the same number can both pass the TTL check
// before either writes; the second write wins. That race is accepted, the
// store's last-write-wins semantics are the only coordination used.
func (s *VerificationService) GeneratePhoneVerificationCode(ctx context.Context, mobilePhone string) (string, error) {
	if !common.IsValidMobilePhone(mobilePhone) {
		return "", &InvalidMobilePhoneFormatError{MobilePhone: mobilePhone}
	}

	key := PhoneVerificationKey(mobilePhone)

	remaining, found, err := s.store.GetTTL(ctx, key)
	if err != nil {
		return "", err
	}
	allowedThreshold := s.otpTTL - s.minRetryInterval
	if found && remaining > allowedThreshold {
		logger.Log.WithField("mobile_phone", mobilePhone).Info("Phone verification rejected: retry too soon")
		return "", &TooManyPhoneRetryAttemptError{TimeLeft: remaining - allowedThreshold}
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	if err := s.store.Set(ctx, key, code, s.otpTTL); err != nil {
		return "", err
	}

	logger.Log.WithField("mobile_phone", mobilePhone).Info("Phone verification code issued")
	return code, nil
}
