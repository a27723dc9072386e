package models

import "time"

// UserMetadata tracks which methodology frameworks and tools a user has
// run analyses against.
type UserMetadata struct {
	UserID     int64     `json:"user_id"`
	Frameworks []string  `json:"frameworks"`
	Tools      []string  `json:"tools"`
	LastUsedAt time.Time `json:"last_used_at"`
}
