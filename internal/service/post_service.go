package service

import (
	"context"

	"go-social-network/internal/model"
)

type PostStore interface {
	Create(ctx context.Context, p model.Post) (model.Post, error)
	FindByID(ctx context.Context, id int64) (model.Post, error)
	List(ctx context.Context, skip int, limit int) ([]model.Post, error)
	SearchByText(ctx context.Context, query string, skip int, limit int) ([]model.Post, error)
}

type CommentStore interface {
	Create(ctx context.Context, c model.Comment) (model.Comment, error)
}

type LikeStore interface {
	Create(ctx context.Context, l model.Like) (model.Like, error)
}

type PostService struct {
	posts    PostStore
	comments CommentStore
	likes    LikeStore
}

func NewPostService(posts PostStore, comments CommentStore, likes LikeStore) *PostService {
	return &PostService{posts: posts, comments: comments, likes: likes}
}

func (s *PostService) CreatePost(ctx context.Context, ownerID int64, req model.CreatePostRequest) (model.Post, error) {
	return s.posts.Create(ctx, model.Post{
		Text:        req.Text,
		ImageURL:    req.ImageURL,
		OwnerID:     ownerID,
		CommunityID: req.CommunityID,
	})
}

func (s *PostService) ListPosts(ctx context.Context, skip int, limit int) ([]model.Post, error) {
	return s.posts.List(ctx, skip, limit)
}

func (s *PostService) LikePost(ctx context.Context, userID int64, postID int64) (model.Like, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return model.Like{}, err
	}

	return s.likes.Create(ctx, model.Like{UserID: userID, PostID: postID})
}

func (s *PostService) CommentPost(ctx context.Context, userID int64, postID int64, text string) (model.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return model.Comment{}, err
	}

	return s.comments.Create(ctx, model.Comment{Text: text, UserID: userID, PostID: postID})
}
