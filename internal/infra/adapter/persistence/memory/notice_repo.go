// Package memory provides an in-memory NoticeRepository used when no
// database is configured, and as a lightweight store for tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"bizeyes/internal/domain/entity"
	"bizeyes/internal/repository"
)

type NoticeRepo struct {
	mu      sync.RWMutex
	notices map[string]entity.BidNotice
}

func NewNoticeRepo() repository.NoticeRepository {
	return &NoticeRepo{notices: make(map[string]entity.BidNotice)}
}

func (repo *NoticeRepo) Get(_ context.Context, bidNtceNo string) (*entity.BidNotice, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	n, ok := repo.notices[bidNtceNo]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (repo *NoticeRepo) List(_ context.Context, pageNo, numOfRows int) ([]entity.BidNotice, int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	all := repo.sorted()
	return page(all, pageNo, numOfRows), len(all), nil
}

func (repo *NoticeRepo) Search(_ context.Context, keyword string, pageNo, numOfRows int) ([]entity.BidNotice, int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	kw := strings.ToLower(keyword)
	matched := make([]entity.BidNotice, 0)
	for _, n := range repo.sorted() {
		if strings.Contains(strings.ToLower(n.BidNtceNm), kw) ||
			strings.Contains(strings.ToLower(n.DminsttNm), kw) {
			matched = append(matched, n)
		}
	}
	return page(matched, pageNo, numOfRows), len(matched), nil
}

func (repo *NoticeRepo) Upsert(_ context.Context, notices []entity.BidNotice) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, n := range notices {
		if n.BidNtceNo == "" {
			continue
		}
		repo.notices[n.BidNtceNo] = n
	}
	return nil
}

// sorted returns all notices newest-first, matching the postgres adapter's
// ORDER BY bid_ntce_dt DESC, bid_ntce_no DESC.
func (repo *NoticeRepo) sorted() []entity.BidNotice {
	all := make([]entity.BidNotice, 0, len(repo.notices))
	for _, n := range repo.notices {
		all = append(all, n)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].BidNtceDt != all[j].BidNtceDt {
			return all[i].BidNtceDt > all[j].BidNtceDt
		}
		return all[i].BidNtceNo > all[j].BidNtceNo
	})
	return all
}

func page(all []entity.BidNotice, pageNo, numOfRows int) []entity.BidNotice {
	start := (pageNo - 1) * numOfRows
	if start >= len(all) {
		return []entity.BidNotice{}
	}
	end := start + numOfRows
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
