package entity

import (
	"time"
)

// Post is a short text note owned by exactly one user.
type Post struct {
	ID        string
	Content   string
	UserID    string
	CreatedAt time.Time
}
