package server

import (
	"net/http"

	"loantracker/internal/schema"
	"loantracker/pkg/types"
)

func (s *Service) handleAIValidate(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req types.AICheckRequest
	if err := schema.Decode(body, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.aiValidator.Validate(r.Context(), req.UploadID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, res)
}
