// Package ai defines the upload inspection interface. Only a fixed-score stub
// exists today.
package ai

import (
	"context"

	"loantracker/pkg/types"
)

type Validator interface {
	Validate(ctx context.Context, uploadID string) (*types.AICheckResponse, error)
}

const stubScore = 0.87

// Stub accepts every upload with a fixed score and never looks at the media.
type Stub struct{}

func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) Validate(_ context.Context, uploadID string) (*types.AICheckResponse, error) {
	return &types.AICheckResponse{
		UploadID: uploadID,
		Valid:    true,
		Score:    stubScore,
		Flags:    []string{},
	}, nil
}
