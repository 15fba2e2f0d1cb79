package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"notely/internal/domain/entity"
	"notely/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the user after a uniqueness lookup on email. The check and
// the insert are two statements; the unique index on email backstops races.
func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()

	var exists bool
	if err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, u.Email).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return repository.ErrDuplicateEmail
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, age)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at
	`, u.Username, u.Email, u.Password, u.Age)

	return row.Scan(&u.ID, &u.CreatedAt)
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	ctx := context.Background()
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id::text, username, email, password_hash, age, post_ids::text[], created_at
		FROM users
		WHERE id = $1::uuid
	`, id)

	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Age,
		&u.PostIDs, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	ctx := context.Background()
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id::text, username, email, password_hash, age, post_ids::text[], created_at
		FROM users
		WHERE email = $1
	`, email)

	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Age,
		&u.PostIDs, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) AppendPost(userID, postID string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET post_ids = array_append(post_ids, $2::uuid)
		WHERE id = $1::uuid
	`, userID, postID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) RemovePost(userID, postID string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET post_ids = array_remove(post_ids, $2::uuid)
		WHERE id = $1::uuid
	`, userID, postID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
