package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-social-network/internal/model"
)

type CommunityRepository struct {
	pool *pgxpool.Pool
}

func NewCommunityRepository(pool *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{pool: pool}
}

func (r *CommunityRepository) Create(ctx context.Context, c model.Community) (model.Community, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO communities (name, description, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.Name, c.Description, c.OwnerID).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return model.Community{}, fmt.Errorf("create community: %w", err)
	}
	return c, nil
}

func (r *CommunityRepository) FindByID(ctx context.Context, id int64) (model.Community, error) {
	var c model.Community
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, owner_id, created_at
		 FROM communities WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.OwnerID, &c.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Community{}, model.ErrCommunityNotFound
	}
	if err != nil {
		return model.Community{}, fmt.Errorf("find community by id: %w", err)
	}
	return c, nil
}

func (r *CommunityRepository) List(ctx context.Context, skip int, limit int) ([]model.Community, error) {
	return r.queryCommunities(ctx,
		`SELECT id, name, description, owner_id, created_at
		 FROM communities ORDER BY id OFFSET $1 LIMIT $2`, skip, limit)
}

func (r *CommunityRepository) SearchByName(ctx context.Context, query string, skip int, limit int) ([]model.Community, error) {
	return r.queryCommunities(ctx,
		`SELECT id, name, description, owner_id, created_at
		 FROM communities
		 WHERE name LIKE '%' || $1 || '%'
		 ORDER BY id OFFSET $2 LIMIT $3`, query, skip, limit)
}

func (r *CommunityRepository) AddMember(ctx context.Context, m model.CommunityMember) (model.CommunityMember, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO community_members (user_id, community_id)
		 VALUES ($1, $2)
		 RETURNING id, joined_at`,
		m.UserID, m.CommunityID).
		Scan(&m.ID, &m.JoinedAt)
	if err != nil {
		return model.CommunityMember{}, fmt.Errorf("add community member: %w", err)
	}
	return m, nil
}

func (r *CommunityRepository) queryCommunities(ctx context.Context, sql string, args ...any) ([]model.Community, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query communities: %w", err)
	}
	defer rows.Close()

	communities := make([]model.Community, 0)
	for rows.Next() {
		var c model.Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.OwnerID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan community: %w", err)
		}
		communities = append(communities, c)
	}
	return communities, rows.Err()
}
