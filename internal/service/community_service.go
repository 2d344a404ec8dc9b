package service

import (
	"context"

	"go-social-network/internal/model"
)

type CommunityStore interface {
	Create(ctx context.Context, c model.Community) (model.Community, error)
	FindByID(ctx context.Context, id int64) (model.Community, error)
	List(ctx context.Context, skip int, limit int) ([]model.Community, error)
	SearchByName(ctx context.Context, query string, skip int, limit int) ([]model.Community, error)
	AddMember(ctx context.Context, m model.CommunityMember) (model.CommunityMember, error)
}

type CommunityService struct {
	communities CommunityStore
}

func NewCommunityService(communities CommunityStore) *CommunityService {
	return &CommunityService{communities: communities}
}

func (s *CommunityService) CreateCommunity(ctx context.Context, ownerID int64, req model.CreateCommunityRequest) (model.Community, error) {
	return s.communities.Create(ctx, model.Community{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	})
}

func (s *CommunityService) JoinCommunity(ctx context.Context, userID int64, communityID int64) (model.CommunityMember, error) {
	if _, err := s.communities.FindByID(ctx, communityID); err != nil {
		return model.CommunityMember{}, err
	}

	return s.communities.AddMember(ctx, model.CommunityMember{UserID: userID, CommunityID: communityID})
}

func (s *CommunityService) ListCommunities(ctx context.Context, skip int, limit int) ([]model.Community, error) {
	return s.communities.List(ctx, skip, limit)
}
