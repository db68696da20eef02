package server

import (
	"context"
	"encoding/json"
	"net/http"

	"loantracker/internal/schema"
	"loantracker/pkg/types"

	"github.com/sirupsen/logrus"
)

func (s *Service) handleCreateUpload(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var upload types.MediaUpload
	if err := schema.Decode(body, &upload); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := s.insert(ctx, types.CollectionMediaUpload, &upload)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"id":                id,
		"beneficiary_phone": upload.BeneficiaryPhone,
		"file_name":         upload.FileName,
	}).Info("upload stored")

	s.writeJSON(w, http.StatusOK, types.CreatedResponse{ID: id})
}

// handleSyncUploads stores a batch of offline uploads one by one. A failing
// item is reported in its result slot and never aborts the rest of the batch.
func (s *Service) handleSyncUploads(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req types.SyncRequest
	if err := schema.Decode(body, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	results := make([]types.SyncResult, 0, len(req.Items))
	for i, item := range req.Items {
		result := s.syncItem(r.Context(), item)
		if result.Status == types.SyncStatusError {
			s.logger.WithFields(logrus.Fields{
				"index":     i,
				"file_name": result.FileName,
				"error":     result.Error,
			}).Warn("sync item failed")
		}
		results = append(results, result)
	}

	s.writeJSON(w, http.StatusOK, types.SyncResponse{Results: results})
}

func (s *Service) syncItem(ctx context.Context, item json.RawMessage) types.SyncResult {
	result := types.SyncResult{FileName: peekFileName(item)}

	var upload types.MediaUpload
	if err := schema.Decode(item, &upload); err != nil {
		result.Status = types.SyncStatusError
		result.Error = err.Error()
		return result
	}

	id, err := s.insert(ctx, types.CollectionMediaUpload, &upload)
	if err != nil {
		result.Status = types.SyncStatusError
		result.Error = err.Error()
		return result
	}

	result.Status = types.SyncStatusOK
	result.ID = id
	return result
}

// peekFileName pulls file_name out of an item that may not pass validation,
// so its result can still be matched up by the client.
func peekFileName(item json.RawMessage) string {
	var peek struct {
		FileName any `json:"file_name"`
	}
	if err := json.Unmarshal(item, &peek); err != nil {
		return ""
	}
	name, _ := peek.FileName.(string)
	return name
}
