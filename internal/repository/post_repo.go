package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-social-network/internal/model"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p model.Post) (model.Post, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO posts (text, image_url, owner_id, community_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.Text, p.ImageURL, p.OwnerID, p.CommunityID).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return model.Post{}, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (model.Post, error) {
	var p model.Post
	err := r.pool.QueryRow(ctx,
		`SELECT id, text, image_url, owner_id, community_id, created_at
		 FROM posts WHERE id = $1`, id).
		Scan(&p.ID, &p.Text, &p.ImageURL, &p.OwnerID, &p.CommunityID, &p.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Post{}, model.ErrPostNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context, skip int, limit int) ([]model.Post, error) {
	return r.queryPosts(ctx,
		`SELECT id, text, image_url, owner_id, community_id, created_at
		 FROM posts ORDER BY id OFFSET $1 LIMIT $2`, skip, limit)
}

func (r *PostRepository) SearchByText(ctx context.Context, query string, skip int, limit int) ([]model.Post, error) {
	return r.queryPosts(ctx,
		`SELECT id, text, image_url, owner_id, community_id, created_at
		 FROM posts
		 WHERE text LIKE '%' || $1 || '%'
		 ORDER BY id OFFSET $2 LIMIT $3`, query, skip, limit)
}

func (r *PostRepository) queryPosts(ctx context.Context, sql string, args ...any) ([]model.Post, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Text, &p.ImageURL, &p.OwnerID, &p.CommunityID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
