package types

type AICheckRequest struct {
	UploadID string `json:"upload_id" validate:"required"`
}

type AICheckResponse struct {
	UploadID string   `json:"upload_id"`
	Valid    bool     `json:"valid"`
	Score    float64  `json:"score"`
	Flags    []string `json:"flags"`
}
