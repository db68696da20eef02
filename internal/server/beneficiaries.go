package server

import (
	"net/http"

	"loantracker/internal/schema"
	"loantracker/pkg/types"

	"github.com/sirupsen/logrus"
)

func (s *Service) handleCreateBeneficiary(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var beneficiary types.Beneficiary
	if err := schema.Decode(body, &beneficiary); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := s.insert(ctx, types.CollectionBeneficiary, &beneficiary)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"id":    id,
		"phone": beneficiary.Phone,
	}).Info("beneficiary created")

	s.writeJSON(w, http.StatusOK, types.CreatedResponse{ID: id})
}

func (s *Service) handleListBeneficiaries(w http.ResponseWriter, r *http.Request) {
	var filter types.BeneficiaryFilter
	if err := schema.DecodeQuery(r.URL.Query(), &filter); err != nil {
		s.writeError(w, r, err)
		return
	}

	docs, err := s.query(r.Context(), types.CollectionBeneficiary, filter.Map())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, docs)
}
