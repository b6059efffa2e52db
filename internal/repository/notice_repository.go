package repository

import (
	"context"

	"bizeyes/internal/domain/entity"
)

// NoticeRepository stores bid notices fetched from the procurement API
// (or generated as mock data) and serves the paginated read endpoints.
type NoticeRepository interface {
	Get(ctx context.Context, bidNtceNo string) (*entity.BidNotice, error)
	List(ctx context.Context, pageNo, numOfRows int) ([]entity.BidNotice, int, error)
	Search(ctx context.Context, keyword string, pageNo, numOfRows int) ([]entity.BidNotice, int, error)
	Upsert(ctx context.Context, notices []entity.BidNotice) error
}
