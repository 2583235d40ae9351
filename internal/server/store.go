package server

import (
	"context"
	"time"

	"github.com/uptoskills/resume-builder/internal/db"
	"github.com/uptoskills/resume-builder/internal/resume"
)

// Store is the resume persistence surface the server depends on.
// *db.DB implements it; tests substitute an in-memory fake.
type Store interface {
	UpsertResume(ctx context.Context, ownerID string, doc resume.Document) (*db.ResumeRecord, error)
	GetResumeByOwner(ctx context.Context, ownerID string) (*db.ResumeRecord, error)
	CreateShareLink(ctx context.Context, ownerID string, expiryDays int) (string, *time.Time, error)
	GetResumeByShareToken(ctx context.Context, token string) (*db.ResumeRecord, error)
	Close()
}

var _ Store = (*db.DB)(nil)

// PDFRenderer turns a resume document into a PDF byte stream.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, doc resume.Document) ([]byte, error)
}
