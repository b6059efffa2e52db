package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"bizeyes/internal/domain/entity"
	"bizeyes/internal/repository"
)

type NoticeRepo struct{ db *sql.DB }

func NewNoticeRepo(db *sql.DB) repository.NoticeRepository {
	return &NoticeRepo{db: db}
}

const noticeColumns = `bid_ntce_no, bid_ntce_nm, dminstt_nm, bid_methd_nm, presmpt_prce, bid_ntce_dt, openg_dt, sucsfbid_nm, sucsfbid_amt, bid_ntce_dtl_url`

func scanNotice(rows *sql.Rows) (entity.BidNotice, error) {
	var n entity.BidNotice
	err := rows.Scan(
		&n.BidNtceNo, &n.BidNtceNm, &n.DminsttNm, &n.BidMethdNm, &n.PresmptPrce,
		&n.BidNtceDt, &n.OpengDt, &n.SucsfbidNm, &n.SucsfbidAmt, &n.BidNtceDtlURL,
	)
	return n, err
}

func (repo *NoticeRepo) Get(ctx context.Context, bidNtceNo string) (*entity.BidNotice, error) {
	const query = `
SELECT ` + noticeColumns + `
FROM bid_notices
WHERE bid_ntce_no = $1
LIMIT 1`
	var n entity.BidNotice
	err := repo.db.QueryRowContext(ctx, query, bidNtceNo).Scan(
		&n.BidNtceNo, &n.BidNtceNm, &n.DminsttNm, &n.BidMethdNm, &n.PresmptPrce,
		&n.BidNtceDt, &n.OpengDt, &n.SucsfbidNm, &n.SucsfbidAmt, &n.BidNtceDtlURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &n, nil
}

func (repo *NoticeRepo) List(ctx context.Context, pageNo, numOfRows int) ([]entity.BidNotice, int, error) {
	total, err := repo.count(ctx, "")
	if err != nil {
		return nil, 0, fmt.Errorf("List: %w", err)
	}

	const query = `
SELECT ` + noticeColumns + `
FROM bid_notices
ORDER BY bid_ntce_dt DESC, bid_ntce_no DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, numOfRows, (pageNo-1)*numOfRows)
	if err != nil {
		return nil, 0, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notices := make([]entity.BidNotice, 0, numOfRows)
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("List: %w", err)
		}
		notices = append(notices, n)
	}
	return notices, total, rows.Err()
}

func (repo *NoticeRepo) Search(ctx context.Context, keyword string, pageNo, numOfRows int) ([]entity.BidNotice, int, error) {
	pattern := "%" + keyword + "%"

	total, err := repo.count(ctx, pattern)
	if err != nil {
		return nil, 0, fmt.Errorf("Search: %w", err)
	}

	const query = `
SELECT ` + noticeColumns + `
FROM bid_notices
WHERE bid_ntce_nm ILIKE $1 OR dminstt_nm ILIKE $1
ORDER BY bid_ntce_dt DESC, bid_ntce_no DESC
LIMIT $2 OFFSET $3`
	rows, err := repo.db.QueryContext(ctx, query, pattern, numOfRows, (pageNo-1)*numOfRows)
	if err != nil {
		return nil, 0, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notices := make([]entity.BidNotice, 0, numOfRows)
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("Search: %w", err)
		}
		notices = append(notices, n)
	}
	return notices, total, rows.Err()
}

// count returns the matching row count; an empty pattern counts everything.
func (repo *NoticeRepo) count(ctx context.Context, pattern string) (int, error) {
	var total int
	if pattern == "" {
		err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bid_notices`).Scan(&total)
		return total, err
	}
	const query = `SELECT COUNT(*) FROM bid_notices WHERE bid_ntce_nm ILIKE $1 OR dminstt_nm ILIKE $1`
	err := repo.db.QueryRowContext(ctx, query, pattern).Scan(&total)
	return total, err
}

func (repo *NoticeRepo) Upsert(ctx context.Context, notices []entity.BidNotice) error {
	if len(notices) == 0 {
		return nil
	}

	const query = `
INSERT INTO bid_notices (` + noticeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (bid_ntce_no) DO UPDATE SET
	bid_ntce_nm = EXCLUDED.bid_ntce_nm,
	dminstt_nm = EXCLUDED.dminstt_nm,
	bid_methd_nm = EXCLUDED.bid_methd_nm,
	presmpt_prce = EXCLUDED.presmpt_prce,
	bid_ntce_dt = EXCLUDED.bid_ntce_dt,
	openg_dt = EXCLUDED.openg_dt,
	sucsfbid_nm = EXCLUDED.sucsfbid_nm,
	sucsfbid_amt = EXCLUDED.sucsfbid_amt,
	bid_ntce_dtl_url = EXCLUDED.bid_ntce_dtl_url`

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, n := range notices {
		if _, err := stmt.ExecContext(ctx,
			n.BidNtceNo, n.BidNtceNm, n.DminsttNm, n.BidMethdNm, n.PresmptPrce,
			n.BidNtceDt, n.OpengDt, n.SucsfbidNm, n.SucsfbidAmt, n.BidNtceDtlURL,
		); err != nil {
			return fmt.Errorf("Upsert %s: %w", n.BidNtceNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	return nil
}
