package db

import (
	"context"
	"fmt"
)

// resumesSchema is applied at startup. A unique owner_id makes every save
// an upsert; a unique (sparse) share_token backs the read-only share index.
const resumesSchema = `
CREATE TABLE IF NOT EXISTS resumes (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	owner_id     TEXT UNIQUE NOT NULL,
	document     JSONB NOT NULL,
	share_token  TEXT UNIQUE,
	share_expiry TIMESTAMPTZ,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_resumes_share_token ON resumes (share_token) WHERE share_token IS NOT NULL;
`

// Migrate creates the resumes table if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, resumesSchema); err != nil {
		return fmt.Errorf("failed to migrate resumes schema: %w", err)
	}
	return nil
}
