package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-social-network/internal/model"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c model.Comment) (model.Comment, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO comments (text, user_id, post_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.Text, c.UserID, c.PostID).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}
