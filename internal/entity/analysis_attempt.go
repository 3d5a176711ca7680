package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisAttempt is one append-only audit record of an analysis run.
// Records older than the retention window are purged.
type AnalysisAttempt struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	FileHash    string    `json:"file_hash"` // hex sha256 of the uploaded bytes
	FileName    string    `json:"file_name"`
	Succeeded   bool      `json:"succeeded"`
	AttemptedAt time.Time `json:"attempted_at"`
}
