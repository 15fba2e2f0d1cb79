package repository

import "notely/internal/domain/entity"

// UserRepository defines the interface for account-related database operations.
// There is no update or delete; accounts are only created, and their post
// reference list mutated.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	AppendPost(userID, postID string) error
	RemovePost(userID, postID string) error
}
