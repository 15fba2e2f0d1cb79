package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"notely/internal/domain/entity"
	"notely/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(p *entity.Post) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (content, user_id)
		VALUES ($1, $2::uuid)
		RETURNING id::text, created_at
	`, p.Content, p.UserID)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PostRepository) GetByID(id string) (*entity.Post, error) {
	ctx := context.Background()
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `
		SELECT id::text, content, user_id::text, created_at
		FROM posts
		WHERE id = $1::uuid
	`, id)

	if err := row.Scan(&p.ID, &p.Content, &p.UserID, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PostRepository) UpdateContent(id, content string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET content = $2
		WHERE id = $1::uuid
	`, id, content)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(id string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `
		DELETE FROM posts
		WHERE id = $1::uuid
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListByIDs resolves posts in the order of the given reference list.
func (r *PostRepository) ListByIDs(ids []string) ([]*entity.Post, error) {
	if len(ids) == 0 {
		return []*entity.Post{}, nil
	}
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT p.id::text, p.content, p.user_id::text, p.created_at
		FROM unnest($1::uuid[]) WITH ORDINALITY AS ref(id, ord)
		JOIN posts p ON p.id = ref.id
		ORDER BY ref.ord
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0, len(ids))
	for rows.Next() {
		p := &entity.Post{}
		if err := rows.Scan(&p.ID, &p.Content, &p.UserID, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)
