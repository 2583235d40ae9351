package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/uptoskills/resume-builder/internal/resume"
)

// ResumeRecord is the stored wrapper around one owner's resume document.
// Records are created on first save and overwritten in full on every
// subsequent save; nothing ever deletes them.
type ResumeRecord struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     string          `json:"userId"`
	Document    resume.Document `json:"resumeData"`
	ShareToken  *string         `json:"shareToken,omitempty"`
	ShareExpiry *time.Time      `json:"shareExpiry,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
