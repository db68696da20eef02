package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"loantracker/pkg/types"

	"github.com/sirupsen/logrus"
)

type detailResponse struct {
	Detail any `json:"detail"`
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) writeDetail(w http.ResponseWriter, status int, detail any) {
	s.writeJSON(w, status, detailResponse{Detail: detail})
}

// writeError maps a handler error onto its HTTP status. Store failures other
// than an absent store are passed through as-is with a 500.
func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	entry := s.logger.WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	var (
		verr     *types.ValidationError
		tooLarge *http.MaxBytesError
	)

	switch {
	case errors.As(err, &verr):
		entry.Info("request failed validation")
		s.writeDetail(w, http.StatusUnprocessableEntity, verr.Fields)
	case errors.Is(err, types.ErrLocationRequired):
		entry.Info("upload without location")
		s.writeDetail(w, http.StatusBadRequest, "Location is required")
	case errors.Is(err, types.ErrInvalidOTP):
		entry.Info("otp verification failed")
		s.writeDetail(w, http.StatusUnauthorized, "Invalid OTP")
	case errors.As(err, &tooLarge):
		entry.Warn("request body too large")
		s.writeDetail(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
	case errors.Is(err, types.ErrStoreUnavailable):
		entry.Warn("document store unavailable")
		s.writeDetail(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.Canceled):
		entry.Info("request cancelled")
		s.writeDetail(w, http.StatusServiceUnavailable, err.Error())
	default:
		entry.Error("request failed")
		s.writeDetail(w, http.StatusInternalServerError, err.Error())
	}
}

// readBody reads the request body, bounded by the configured maximum.
func (s *Service) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return data, nil
}

func (s *Service) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeDetail(w, http.StatusNotFound, "Not Found")
}

func (s *Service) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
