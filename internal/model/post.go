package model

import "time"

type Post struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	ImageURL    *string   `json:"image_url,omitempty"`
	OwnerID     int64     `json:"owner_id"`
	CommunityID *int64    `json:"community_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Like struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
