package server

import (
	"net/http"

	"loantracker/internal/schema"
	"loantracker/pkg/types"

	"github.com/sirupsen/logrus"
)

func (s *Service) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var review types.Review
	if err := schema.Decode(body, &review); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := s.insert(ctx, types.CollectionReview, &review)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"id":             id,
		"upload_id":      review.UploadID,
		"reviewer_phone": review.ReviewerPhone,
		"approved":       *review.Approved,
	}).Info("review recorded")

	s.writeJSON(w, http.StatusOK, types.CreatedResponse{ID: id})
}

func (s *Service) handleListReviews(w http.ResponseWriter, r *http.Request) {
	var filter types.ReviewFilter
	if err := schema.DecodeQuery(r.URL.Query(), &filter); err != nil {
		s.writeError(w, r, err)
		return
	}

	docs, err := s.query(r.Context(), types.CollectionReview, filter.Map())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, docs)
}
