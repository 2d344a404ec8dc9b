package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-social-network/internal/model"
)

type LikeRepository struct {
	pool *pgxpool.Pool
}

func NewLikeRepository(pool *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{pool: pool}
}

func (r *LikeRepository) Create(ctx context.Context, l model.Like) (model.Like, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO likes (user_id, post_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		l.UserID, l.PostID).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return model.Like{}, fmt.Errorf("create like: %w", err)
	}
	return l, nil
}
