package db

import (
	"database/sql"
)

// MigrateUp creates the bid_notices table and its indexes. Statements are
// idempotent so the migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS bid_notices (
    bid_ntce_no      TEXT PRIMARY KEY,
    bid_ntce_nm      TEXT NOT NULL,
    dminstt_nm       TEXT NOT NULL,
    bid_methd_nm     TEXT NOT NULL DEFAULT '',
    presmpt_prce     TEXT NOT NULL DEFAULT '',
    bid_ntce_dt      TEXT NOT NULL DEFAULT '',
    openg_dt         TEXT NOT NULL DEFAULT '',
    sucsfbid_nm      TEXT NOT NULL DEFAULT '',
    sucsfbid_amt     TEXT NOT NULL DEFAULT '',
    bid_ntce_dtl_url TEXT NOT NULL DEFAULT '',
    fetched_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_bid_notices_ntce_dt ON bid_notices(bid_ntce_dt DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_bid_notices_dminstt ON bid_notices(dminstt_nm)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE search endpoints. Ignore errors: the
	// extension may already exist or require superuser privileges.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_bid_notices_nm_gin ON bid_notices USING gin(bid_ntce_nm gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_bid_notices_dminstt_gin ON bid_notices USING gin(dminstt_nm gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// Fails when pg_trgm is unavailable; the ILIKE queries still work.
		_, _ = db.Exec(idx)
	}

	return nil
}
