package types

import "encoding/json"

// MediaUpload is a geo-tagged, timestamped piece of evidence submitted as
// proof of fund use. The media itself travels inline as base64 text.
type MediaUpload struct {
	BeneficiaryPhone string     `json:"beneficiary_phone" validate:"required"`
	LoanID           *string    `json:"loan_id"`
	FileName         string     `json:"file_name" validate:"required"`
	MimeType         string     `json:"mime_type" validate:"required"`
	DataBase64       string     `json:"data_base64" validate:"required"`
	Latitude         *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Accuracy         *float64   `json:"accuracy" validate:"omitempty,gte=0"`
	CapturedAt       *Timestamp `json:"captured_at"`
	Notes            *string    `json:"notes"`
}

// Check requires both coordinates. A coordinate of exactly zero is a real
// location and is accepted.
func (u *MediaUpload) Check() error {
	if u.Latitude == nil || u.Longitude == nil {
		return ErrLocationRequired
	}
	return nil
}

// SyncRequest is a batch of uploads captured while offline. Items stay raw
// so each one is validated on its own.
type SyncRequest struct {
	Items []json.RawMessage `json:"items" validate:"required"`
}

type SyncStatus string

const (
	SyncStatusOK    SyncStatus = "ok"
	SyncStatusError SyncStatus = "error"
)

// SyncResult reports the outcome of a single item of a sync batch.
type SyncResult struct {
	FileName string     `json:"file_name"`
	Status   SyncStatus `json:"status"`
	ID       string     `json:"id,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type SyncResponse struct {
	Results []SyncResult `json:"results"`
}
