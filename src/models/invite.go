package models

import "time"

// Invite gates registration: only invited email addresses may sign up.
type Invite struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
