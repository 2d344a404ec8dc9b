package handler_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-social-network/internal/model"
)

// In-memory stores backing the HTTP tests. They implement the same
// store interfaces the pgx repositories do, with the same error
// contracts.

type memPinger struct {
	err error
}

func (m *memPinger) Health(_ context.Context) error {
	return m.err
}

type memUsers struct {
	mu      sync.Mutex
	byEmail map[string]model.User
	nextID  int64
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]model.User{}, nextID: 1}
}

func (m *memUsers) Create(_ context.Context, username string, email string, passwordHash string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := model.User{
		ID:           m.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	m.nextID++
	m.byEmail[email] = u
	return u, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byEmail[email]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memUsers) SearchByUsername(_ context.Context, query string, skip int, limit int) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]model.User, 0)
	for _, u := range m.byEmail {
		if strings.Contains(u.Username, query) {
			users = append(users, u)
		}
	}
	return window(users, skip, limit), nil
}

type memBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newMemBlacklist() *memBlacklist {
	return &memBlacklist{entries: map[string]time.Time{}}
}

func (m *memBlacklist) Insert(_ context.Context, token string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[token]; ok {
		return model.ErrTokenAlreadyRevoked
	}
	m.entries[token] = expiresAt
	return nil
}

func (m *memBlacklist) Contains(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.entries[token]
	return ok, nil
}

type memPosts struct {
	mu     sync.Mutex
	posts  []model.Post
	nextID int64
}

func newMemPosts() *memPosts {
	return &memPosts{nextID: 1}
}

func (m *memPosts) Create(_ context.Context, p model.Post) (model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = m.nextID
	p.CreatedAt = time.Now().UTC()
	m.nextID++
	m.posts = append(m.posts, p)
	return p, nil
}

func (m *memPosts) FindByID(_ context.Context, id int64) (model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Post{}, model.ErrPostNotFound
}

func (m *memPosts) List(_ context.Context, skip int, limit int) ([]model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return window(m.posts, skip, limit), nil
}

func (m *memPosts) SearchByText(_ context.Context, query string, skip int, limit int) ([]model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]model.Post, 0)
	for _, p := range m.posts {
		if strings.Contains(p.Text, query) {
			matched = append(matched, p)
		}
	}
	return window(matched, skip, limit), nil
}

type memComments struct {
	mu       sync.Mutex
	comments []model.Comment
}

func (m *memComments) Create(_ context.Context, c model.Comment) (model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = int64(len(m.comments) + 1)
	c.CreatedAt = time.Now().UTC()
	m.comments = append(m.comments, c)
	return c, nil
}

type memLikes struct {
	mu    sync.Mutex
	likes []model.Like
}

func (m *memLikes) Create(_ context.Context, l model.Like) (model.Like, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l.ID = int64(len(m.likes) + 1)
	l.CreatedAt = time.Now().UTC()
	m.likes = append(m.likes, l)
	return l, nil
}

type memCommunities struct {
	mu          sync.Mutex
	communities []model.Community
	members     []model.CommunityMember
	nextID      int64
}

func newMemCommunities() *memCommunities {
	return &memCommunities{nextID: 1}
}

func (m *memCommunities) Create(_ context.Context, c model.Community) (model.Community, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = m.nextID
	c.CreatedAt = time.Now().UTC()
	m.nextID++
	m.communities = append(m.communities, c)
	return c, nil
}

func (m *memCommunities) FindByID(_ context.Context, id int64) (model.Community, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.communities {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Community{}, model.ErrCommunityNotFound
}

func (m *memCommunities) List(_ context.Context, skip int, limit int) ([]model.Community, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return window(m.communities, skip, limit), nil
}

func (m *memCommunities) SearchByName(_ context.Context, query string, skip int, limit int) ([]model.Community, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]model.Community, 0)
	for _, c := range m.communities {
		if strings.Contains(c.Name, query) {
			matched = append(matched, c)
		}
	}
	return window(matched, skip, limit), nil
}

func (m *memCommunities) AddMember(_ context.Context, member model.CommunityMember) (model.CommunityMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	member.ID = int64(len(m.members) + 1)
	member.JoinedAt = time.Now().UTC()
	m.members = append(m.members, member)
	return member, nil
}

type memNotifications struct {
	mu            sync.Mutex
	notifications []model.Notification
}

func (m *memNotifications) Create(_ context.Context, n model.Notification) (model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n.ID = int64(len(m.notifications) + 1)
	n.CreatedAt = time.Now().UTC()
	m.notifications = append(m.notifications, n)
	return n, nil
}

func (m *memNotifications) ListByUser(_ context.Context, userID int64, skip int, limit int) ([]model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]model.Notification, 0)
	for _, n := range m.notifications {
		if n.UserID == userID {
			matched = append(matched, n)
		}
	}
	return window(matched, skip, limit), nil
}

func window[T any](items []T, skip int, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit < len(items) {
		items = items[:limit]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
