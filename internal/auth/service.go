// Package auth implements the demo phone-number login: a fixed OTP code is
// issued per phone and exchanged for an opaque signed token.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"time"

	"loantracker/pkg/types"

	"github.com/gorilla/securecookie"
)

const tokenName = "loantracker-phone"

type Service struct {
	otps  *OTPStore
	code  string
	ttl   time.Duration
	codec *securecookie.SecureCookie
	now   func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source used to stamp and expire codes.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService builds the auth stub around an OTP store. A ttl of zero keeps
// codes valid until they are replaced. An empty hashKey signs tokens with a
// random per-process key.
func NewService(otps *OTPStore, code string, ttl time.Duration, hashKey []byte, opts ...Option) (*Service, error) {
	if code == "" {
		return nil, fmt.Errorf("otp demo code must not be empty")
	}

	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, fmt.Errorf("failed to generate token hash key")
		}
	}

	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(0)
	codec.SetSerializer(securecookie.JSONEncoder{})

	s := &Service{
		otps:  otps,
		code:  code,
		ttl:   ttl,
		codec: codec,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewServiceFromConfig wires the service from environment configuration.
func NewServiceFromConfig(config *types.Config, otps *OTPStore) (*Service, error) {
	var hashKey []byte
	if config.TokenHashKey != "" {
		key, err := base64.StdEncoding.DecodeString(config.TokenHashKey)
		if err != nil {
			return nil, fmt.Errorf("decode TOKEN_HASH_KEY: %w", err)
		}
		hashKey = key
	}

	return NewService(otps, config.OTPDemoCode, time.Duration(config.OTPTTLSec)*time.Second, hashKey)
}

// RequestOTP issues the demo code for phone, replacing any earlier code.
func (s *Service) RequestOTP(phone string) string {
	s.otps.Put(phone, types.OTPRecord{
		Code:      s.code,
		CreatedAt: s.now().UTC(),
	})
	return s.code
}

// VerifyOTP checks code against the latest code issued for phone and returns
// a token bound to the phone on success.
func (s *Service) VerifyOTP(phone, code string) (string, error) {
	record, ok := s.otps.Get(phone)
	if !ok {
		return "", types.ErrInvalidOTP
	}

	if subtle.ConstantTimeCompare([]byte(record.Code), []byte(code)) != 1 {
		return "", types.ErrInvalidOTP
	}

	if s.ttl > 0 && s.now().Sub(record.CreatedAt) > s.ttl {
		return "", types.ErrInvalidOTP
	}

	token, err := s.codec.Encode(tokenName, phone)
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}

	return token, nil
}

// PhoneFromToken returns the phone number a token was issued for.
func (s *Service) PhoneFromToken(token string) (string, error) {
	var phone string
	if err := s.codec.Decode(tokenName, token, &phone); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	return phone, nil
}
