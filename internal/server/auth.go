package server

import (
	"net/http"

	"loantracker/internal/schema"
	"loantracker/pkg/types"
)

// handleRequestOTP issues the demo code and returns it in the response. No
// SMS is sent.
func (s *Service) handleRequestOTP(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req types.OTPRequest
	if err := schema.Decode(body, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	code := s.authService.RequestOTP(req.Phone)

	s.logger.WithField("phone", req.Phone).Info("otp issued")

	s.writeJSON(w, http.StatusOK, types.OTPSentResponse{Sent: true, Code: code})
}

func (s *Service) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req types.OTPVerify
	if err := schema.Decode(body, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	token, err := s.authService.VerifyOTP(req.Phone, req.Code)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, types.OTPVerifiedResponse{Token: token, Phone: req.Phone})
}
