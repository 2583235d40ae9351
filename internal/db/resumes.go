package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lithammer/shortuuid/v4"

	"github.com/uptoskills/resume-builder/internal/resume"
)

// Store errors surfaced to handlers.
var (
	// ErrResumeNotFound indicates no record exists for the owner.
	ErrResumeNotFound = errors.New("resume not found")
	// ErrShareLinkExpired indicates the share token exists but its expiry
	// has passed. Distinct from not-found on purpose.
	ErrShareLinkExpired = errors.New("share link has expired")
)

const resumeColumns = `id, owner_id, document, share_token, share_expiry, created_at, updated_at`

// UpsertResume creates the record for ownerID or fully replaces its
// document, bumping updated_at. Concurrent saves for the same owner
// serialize as last write wins; no conflict detection is attempted.
func (db *DB) UpsertResume(ctx context.Context, ownerID string, doc resume.Document) (*ResumeRecord, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume document: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (owner_id, document)
		 VALUES ($1, $2)
		 ON CONFLICT (owner_id) DO UPDATE SET document = $2, updated_at = NOW()
		 RETURNING `+resumeColumns,
		ownerID, docJSON,
	)

	rec, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert resume: %w", err)
	}
	return rec, nil
}

// GetResumeByOwner retrieves the record for ownerID, or nil if none exists.
func (db *DB) GetResumeByOwner(ctx context.Context, ownerID string) (*ResumeRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE owner_id = $1`,
		ownerID,
	)

	rec, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return rec, nil
}

// CreateShareLink generates an opaque share token for an existing record.
// expiryDays <= 0 leaves the link without expiry. A fresh token replaces
// any previous one; the old link stops resolving.
func (db *DB) CreateShareLink(ctx context.Context, ownerID string, expiryDays int) (string, *time.Time, error) {
	token := shortuuid.New()

	var expiry *time.Time
	if expiryDays > 0 {
		t := time.Now().AddDate(0, 0, expiryDays)
		expiry = &t
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes SET share_token = $1, share_expiry = $2, updated_at = NOW() WHERE owner_id = $3`,
		token, expiry, ownerID,
	)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create share link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", nil, ErrResumeNotFound
	}

	return token, expiry, nil
}

// GetResumeByShareToken resolves a share token. Returns nil for an unknown
// token and ErrShareLinkExpired when the link's expiry has passed.
func (db *DB) GetResumeByShareToken(ctx context.Context, token string) (*ResumeRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE share_token = $1`,
		token,
	)

	rec, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shared resume: %w", err)
	}

	if shareExpired(rec.ShareExpiry, time.Now()) {
		return nil, ErrShareLinkExpired
	}
	return rec, nil
}

// shareExpired reports whether a share expiry is set and in the past.
// A nil expiry means the link never expires.
func shareExpired(expiry *time.Time, now time.Time) bool {
	return expiry != nil && now.After(*expiry)
}

func scanResume(row pgx.Row) (*ResumeRecord, error) {
	var rec ResumeRecord
	var docJSON []byte

	err := row.Scan(&rec.ID, &rec.OwnerID, &docJSON, &rec.ShareToken, &rec.ShareExpiry, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(docJSON, &rec.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume document: %w", err)
	}
	return &rec, nil
}
