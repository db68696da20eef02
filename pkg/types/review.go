package types

// Review is an officer's approval or rejection of a MediaUpload. UploadID is
// a free-text reference and is not checked against existing uploads.
type Review struct {
	UploadID      string  `json:"upload_id" validate:"required"`
	ReviewerPhone string  `json:"reviewer_phone" validate:"required"`
	Approved      *bool   `json:"approved" validate:"required"`
	Comment       *string `json:"comment"`
}

type ReviewFilter struct {
	UploadID      string `form:"upload_id"`
	ReviewerPhone string `form:"reviewer_phone"`
}

func (f ReviewFilter) Map() map[string]any {
	out := make(map[string]any)
	setIfPresent(out, "upload_id", f.UploadID)
	setIfPresent(out, "reviewer_phone", f.ReviewerPhone)
	return out
}
