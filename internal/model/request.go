package model

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type CreatePostRequest struct {
	Text        string  `json:"text"`
	ImageURL    *string `json:"image_url"`
	CommunityID *int64  `json:"community_id"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type CreateCommunityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateNotificationRequest struct {
	Message string `json:"message"`
}
