package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field.
// PostIDs is the ordered list of posts owned by the user; it is maintained
// alongside the posts table by explicit dual writes.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	Age       int
	PostIDs   []string
	CreatedAt time.Time
}
