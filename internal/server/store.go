package server

import (
	"context"

	"loantracker/pkg/types"
)

func (s *Service) insert(ctx context.Context, collection string, record any) (string, error) {
	if s.store == nil {
		return "", types.ErrStoreUnavailable
	}
	return s.store.Insert(ctx, collection, record)
}

func (s *Service) query(ctx context.Context, collection string, filter map[string]any) ([]types.Document, error) {
	if s.store == nil {
		return nil, types.ErrStoreUnavailable
	}

	docs, err := s.store.Query(ctx, collection, filter)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = make([]types.Document, 0)
	}
	return docs, nil
}
