// Package notice provides read use cases over the stored bid notices.
package notice

import (
	"context"
	"fmt"
	"strings"

	"bizeyes/internal/common/pagination"
	"bizeyes/internal/domain/entity"
	"bizeyes/internal/repository"
)

// Service serves paginated reads from the notice store.
type Service struct {
	Repo repository.NoticeRepository
}

// PaginatedResult contains one page of notices plus pagination metadata.
type PaginatedResult struct {
	Data       []entity.BidNotice
	Pagination pagination.Metadata
}

// List returns one page of stored notices, newest first.
func (s *Service) List(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	notices, total, err := s.Repo.List(ctx, params.PageNo, params.NumOfRows)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return &PaginatedResult{
		Data:       notices,
		Pagination: pagination.NewMetadata(int64(total), params),
	}, nil
}

// Search returns one page of notices whose name or institution matches
// the keyword. Returns ErrEmptyKeyword when the keyword is blank.
func (s *Service) Search(ctx context.Context, keyword string, params pagination.Params) (*PaginatedResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	notices, total, err := s.Repo.Search(ctx, keyword, params.PageNo, params.NumOfRows)
	if err != nil {
		return nil, fmt.Errorf("search notices: %w", err)
	}
	return &PaginatedResult{
		Data:       notices,
		Pagination: pagination.NewMetadata(int64(total), params),
	}, nil
}

// Get returns the notice identified by bidNtceNo.
// Returns ErrNoticeNotFound when no such notice is stored.
func (s *Service) Get(ctx context.Context, bidNtceNo string) (*entity.BidNotice, error) {
	if strings.TrimSpace(bidNtceNo) == "" {
		return nil, ErrInvalidNoticeNo
	}

	n, err := s.Repo.Get(ctx, bidNtceNo)
	if err != nil {
		return nil, fmt.Errorf("get notice: %w", err)
	}
	if n == nil {
		return nil, ErrNoticeNotFound
	}
	return n, nil
}
