package types

import "time"

type OTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type OTPVerify struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// OTPRecord is held in process memory only.
type OTPRecord struct {
	Code      string
	CreatedAt time.Time
}

type OTPSentResponse struct {
	Sent bool   `json:"sent"`
	Code string `json:"code"`
}

type OTPVerifiedResponse struct {
	Token string `json:"token"`
	Phone string `json:"phone"`
}
