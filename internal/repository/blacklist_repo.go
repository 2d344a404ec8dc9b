package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-social-network/internal/model"
)

const uniqueViolationCode = "23505"

// BlacklistRepository is the durable record of revoked tokens. Rows are
// never deleted by the request path; PruneExpired exists for external
// housekeeping to call.
type BlacklistRepository struct {
	pool *pgxpool.Pool
}

func NewBlacklistRepository(pool *pgxpool.Pool) *BlacklistRepository {
	return &BlacklistRepository{pool: pool}
}

func (r *BlacklistRepository) Insert(ctx context.Context, token string, expiresAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO blacklisted_tokens (token, expires_at) VALUES ($1, $2)`,
		token, expiresAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return model.ErrTokenAlreadyRevoked
	}
	if err != nil {
		return fmt.Errorf("insert blacklisted token: %w", err)
	}
	return nil
}

func (r *BlacklistRepository) Contains(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blacklisted_tokens WHERE token = $1)`,
		token).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check token blacklisted: %w", err)
	}
	return exists, nil
}

func (r *BlacklistRepository) PruneExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM blacklisted_tokens WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("prune expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
