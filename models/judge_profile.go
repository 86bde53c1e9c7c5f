package models

import "time"

// JudgeProfile links a user to their handle on the online judge and caches
// the tier reported by the judge's statistics service.
type JudgeProfile struct {
	UserID    int64     `json:"-"`
	Handle    string    `json:"handle"`
	Tier      int       `json:"tier"`
	UpdatedAt time.Time `json:"updated_at"`
}
