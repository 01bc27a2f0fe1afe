package domain

import (
	"time"

	"github.com/google/uuid"
)

// Portfolio is the persisted résumé document, one per user. The export
// pipeline never reads it; callers fetch it and submit the form explicitly.
type Portfolio struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Document  map[string]interface{} `json:"document"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
