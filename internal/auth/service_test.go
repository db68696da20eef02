package auth

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"loantracker/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttl time.Duration, opts ...Option) *Service {
	t.Helper()

	svc, err := NewService(NewOTPStore(), "123456", ttl, []byte("0123456789abcdef0123456789abcdef"), opts...)
	require.NoError(t, err)
	return svc
}

func TestRequestAndVerify(t *testing.T) {
	svc := newTestService(t, 0)

	code := svc.RequestOTP("9990001111")
	assert.Equal(t, "123456", code)

	token, err := svc.VerifyOTP("9990001111", code)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "9990001111", "token should be opaque")

	phone, err := svc.PhoneFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "9990001111", phone)
}

func TestVerifyWithoutRequest(t *testing.T) {
	svc := newTestService(t, 0)

	_, err := svc.VerifyOTP("9990001111", "123456")
	assert.ErrorIs(t, err, types.ErrInvalidOTP)
}

func TestVerifyWrongCode(t *testing.T) {
	svc := newTestService(t, 0)
	svc.RequestOTP("9990001111")

	_, err := svc.VerifyOTP("9990001111", "654321")
	assert.ErrorIs(t, err, types.ErrInvalidOTP)

	_, err = svc.VerifyOTP("9990001111", "")
	assert.ErrorIs(t, err, types.ErrInvalidOTP)
}

func TestVerifyIsPerPhone(t *testing.T) {
	svc := newTestService(t, 0)
	svc.RequestOTP("1")

	_, err := svc.VerifyOTP("2", "123456")
	assert.ErrorIs(t, err, types.ErrInvalidOTP)
}

func TestRerequestOverwritesCode(t *testing.T) {
	otps := NewOTPStore()
	first, err := NewService(otps, "111111", 0, nil)
	require.NoError(t, err)
	second, err := NewService(otps, "222222", 0, nil)
	require.NoError(t, err)

	first.RequestOTP("1")
	second.RequestOTP("1")

	_, err = first.VerifyOTP("1", "111111")
	assert.ErrorIs(t, err, types.ErrInvalidOTP, "old code must be invalid after a new request")

	_, err = second.VerifyOTP("1", "222222")
	assert.NoError(t, err)
	assert.Equal(t, 1, otps.Len())
}

func TestVerifyDoesNotConsumeCode(t *testing.T) {
	svc := newTestService(t, 0)
	svc.RequestOTP("1")

	_, err := svc.VerifyOTP("1", "123456")
	require.NoError(t, err)
	_, err = svc.VerifyOTP("1", "123456")
	assert.NoError(t, err)
}

func TestExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, time.Minute, WithClock(func() time.Time { return now }))

	svc.RequestOTP("1")

	now = now.Add(30 * time.Second)
	_, err := svc.VerifyOTP("1", "123456")
	assert.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = svc.VerifyOTP("1", "123456")
	assert.ErrorIs(t, err, types.ErrInvalidOTP)
}

func TestNoExpiryByDefault(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, 0, WithClock(func() time.Time { return now }))

	svc.RequestOTP("1")
	now = now.Add(365 * 24 * time.Hour)

	_, err := svc.VerifyOTP("1", "123456")
	assert.NoError(t, err)
}

func TestTokenFromOtherKeyRejected(t *testing.T) {
	a := newTestService(t, 0)
	b, err := NewService(NewOTPStore(), "123456", 0, nil)
	require.NoError(t, err)

	a.RequestOTP("1")
	token, err := a.VerifyOTP("1", "123456")
	require.NoError(t, err)

	_, err = b.PhoneFromToken(token)
	assert.Error(t, err)
}

func TestNewServiceRequiresCode(t *testing.T) {
	_, err := NewService(NewOTPStore(), "", 0, nil)
	assert.Error(t, err)
}

func TestNewServiceFromConfig(t *testing.T) {
	_, err := NewServiceFromConfig(&types.Config{OTPDemoCode: "123456", TokenHashKey: "not base64!"}, NewOTPStore())
	assert.ErrorContains(t, err, "TOKEN_HASH_KEY")

	svc, err := NewServiceFromConfig(&types.Config{OTPDemoCode: "999999", OTPTTLSec: 60}, NewOTPStore())
	require.NoError(t, err)
	assert.Equal(t, "999999", svc.RequestOTP("1"))
	assert.Equal(t, time.Minute, svc.ttl)
}

func TestConcurrentRequests(t *testing.T) {
	svc := newTestService(t, 0)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			phone := fmt.Sprintf("%d", i%5)
			svc.RequestOTP(phone)
			_, _ = svc.VerifyOTP(phone, "123456")
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, svc.otps.Len())
}
