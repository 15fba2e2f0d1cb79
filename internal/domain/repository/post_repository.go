package repository

import "notely/internal/domain/entity"

// PostRepository defines the interface for post-related database operations.
// ListByIDs resolves an owner's reference list in order; there is no other
// listing or filtering.
type PostRepository interface {
	Create(p *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	UpdateContent(id, content string) error
	Delete(id string) error
	ListByIDs(ids []string) ([]*entity.Post, error)
}
