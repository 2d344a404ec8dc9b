package service

import (
	"context"
	"strings"

	"go-social-network/internal/model"
)

type UserSearcher interface {
	SearchByUsername(ctx context.Context, query string, skip int, limit int) ([]model.User, error)
}

// SearchService runs substring matches over posts, users, and
// communities. Matching is plain containment, the same semantics the
// list endpoints had from day one.
type SearchService struct {
	posts       PostStore
	users       UserSearcher
	communities CommunityStore
}

func NewSearchService(posts PostStore, users UserSearcher, communities CommunityStore) *SearchService {
	return &SearchService{posts: posts, users: users, communities: communities}
}

func (s *SearchService) SearchPosts(ctx context.Context, query string, skip int, limit int) ([]model.Post, error) {
	return s.posts.SearchByText(ctx, strings.TrimSpace(query), skip, limit)
}

func (s *SearchService) SearchUsers(ctx context.Context, query string, skip int, limit int) ([]model.User, error) {
	return s.users.SearchByUsername(ctx, strings.TrimSpace(query), skip, limit)
}

func (s *SearchService) SearchCommunities(ctx context.Context, query string, skip int, limit int) ([]model.Community, error) {
	return s.communities.SearchByName(ctx, strings.TrimSpace(query), skip, limit)
}
