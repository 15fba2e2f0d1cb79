package handlers_test

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"notely/internal/domain/entity"
	repo "notely/internal/domain/repository"
)

// In-memory repository fakes mirroring the postgres implementations,
// including copy-on-return so handlers cannot alias stored state.

type memUserRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	cp.PostIDs = append([]string(nil), u.PostIDs...)
	return &cp
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.byID {
		if ex.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.PostIDs = []string{}
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) AppendPost(userID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok {
		return repo.ErrNotFound
	}
	u.PostIDs = append(u.PostIDs, postID)
	return nil
}

func (r *memUserRepo) RemovePost(userID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok {
		return repo.ErrNotFound
	}
	kept := u.PostIDs[:0]
	for _, id := range u.PostIDs {
		if id != postID {
			kept = append(kept, id)
		}
	}
	u.PostIDs = kept
	return nil
}

var _ repo.UserRepository = (*memUserRepo)(nil)

type memPostRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{byID: make(map[string]*entity.Post)}
}

func (r *memPostRepo) Create(p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memPostRepo) GetByID(id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) UpdateContent(id, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return repo.ErrNotFound
	}
	p.Content = content
	return nil
}

func (r *memPostRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memPostRepo) ListByIDs(ids []string) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := make([]*entity.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			cp := *p
			posts = append(posts, &cp)
		}
	}
	return posts, nil
}

var _ repo.PostRepository = (*memPostRepo)(nil)
