package service

import (
	"context"
	"sort"
	"sync"

	"neutalk/models"
)

// 内存仓储，测试替身，行为对齐 dao 层的 gorm 实现

type memStore struct {
	mu         sync.Mutex
	userSeq    uint64
	commentSeq uint64
	favSeq     uint64
	users      map[uint64]*models.User
	tokens     map[uint64]*models.AuthToken
	posts      map[string]*models.Post
	comments   map[uint64]*models.Comment
	favorites  map[uint64]*models.Favorite

	lastFilter models.PostFilter
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[uint64]*models.User),
		tokens:    make(map[uint64]*models.AuthToken),
		posts:     make(map[string]*models.Post),
		comments:  make(map[uint64]*models.Comment),
		favorites: make(map[uint64]*models.Favorite),
	}
}

func (s *memStore) userRepo() UserRepo         { return &memUsers{s} }
func (s *memStore) tokenRepo() TokenRepo       { return &memTokens{s} }
func (s *memStore) postRepo() PostRepo         { return &memPosts{s} }
func (s *memStore) commentRepo() CommentRepo   { return &memComments{s} }
func (s *memStore) favoriteRepo() FavoriteRepo { return &memFavorites{s} }

type memUsers struct{ s *memStore }

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.userSeq++
	user.ID = m.s.userSeq
	copied := *user
	m.s.users[user.ID] = &copied
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id uint64) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	user, ok := m.s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, user := range m.s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	user, err := m.FindByUsername(ctx, username)
	return user != nil, err
}

type memTokens struct{ s *memStore }

func (m *memTokens) GetOrCreate(_ context.Context, userID uint64, key string) (*models.AuthToken, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if token, ok := m.s.tokens[userID]; ok {
		copied := *token
		return &copied, nil
	}
	token := &models.AuthToken{Key: key, UserID: userID}
	m.s.tokens[userID] = token
	copied := *token
	return &copied, nil
}

func (m *memTokens) FindByKey(_ context.Context, key string) (*models.AuthToken, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, token := range m.s.tokens {
		if token.Key == key {
			copied := *token
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memTokens) DeleteByKey(_ context.Context, key string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for userID, token := range m.s.tokens {
		if token.Key == key {
			delete(m.s.tokens, userID)
			return nil
		}
	}
	return nil
}

type memPosts struct{ s *memStore }

func (m *memPosts) Create(_ context.Context, post *models.Post) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	copied := *post
	m.s.posts[post.ID] = &copied
	return nil
}

func (m *memPosts) FindByID(_ context.Context, id string) (*models.Post, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	post, ok := m.s.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	if author, ok := m.s.users[post.AuthorID]; ok {
		copied.Author = *author
	}
	return &copied, nil
}

func (m *memPosts) List(_ context.Context, filter models.PostFilter) ([]*models.Post, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.lastFilter = filter

	var posts []*models.Post
	for _, post := range m.s.posts {
		author := m.s.users[post.AuthorID]
		if filter.AuthorName != "" && (author == nil || author.Username != filter.AuthorName) {
			continue
		}
		if filter.Start != nil && post.CreatedAt.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && post.CreatedAt.After(*filter.End) {
			continue
		}
		copied := *post
		if author != nil {
			copied.Author = *author
		}
		posts = append(posts, &copied)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (m *memPosts) Delete(_ context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.posts, id)
	for cid, comment := range m.s.comments {
		if comment.PostID == id {
			delete(m.s.comments, cid)
		}
	}
	for fid, fav := range m.s.favorites {
		if fav.PostID == id {
			delete(m.s.favorites, fid)
		}
	}
	return nil
}

type memComments struct{ s *memStore }

func (m *memComments) Create(_ context.Context, comment *models.Comment) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.commentSeq++
	comment.ID = m.s.commentSeq
	copied := *comment
	m.s.comments[comment.ID] = &copied
	return nil
}

func (m *memComments) ListByPost(_ context.Context, postID string) ([]*models.Comment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var comments []*models.Comment
	for _, comment := range m.s.comments {
		if comment.PostID != postID {
			continue
		}
		copied := *comment
		if author, ok := m.s.users[comment.AuthorID]; ok {
			copied.Author = *author
		}
		comments = append(comments, &copied)
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

type memFavorites struct{ s *memStore }

func (m *memFavorites) Add(_ context.Context, fav *models.Favorite) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	// 唯一约束兜底: 已存在则 no-op
	for _, existing := range m.s.favorites {
		if existing.UserID == fav.UserID && existing.PostID == fav.PostID {
			return nil
		}
	}
	m.s.favSeq++
	fav.ID = m.s.favSeq
	copied := *fav
	m.s.favorites[fav.ID] = &copied
	return nil
}

func (m *memFavorites) Exists(_ context.Context, userID uint64, postID string) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, fav := range m.s.favorites {
		if fav.UserID == userID && fav.PostID == postID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memFavorites) Remove(_ context.Context, userID uint64, postID string) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for id, fav := range m.s.favorites {
		if fav.UserID == userID && fav.PostID == postID {
			delete(m.s.favorites, id)
			return true, nil
		}
	}
	return false, nil
}

func (m *memFavorites) ListByUser(_ context.Context, userID uint64) ([]*models.Favorite, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var favorites []*models.Favorite
	for _, fav := range m.s.favorites {
		if fav.UserID != userID {
			continue
		}
		copied := *fav
		if post, ok := m.s.posts[fav.PostID]; ok {
			copied.Post = *post
			if author, ok := m.s.users[post.AuthorID]; ok {
				copied.Post.Author = *author
			}
		}
		favorites = append(favorites, &copied)
	}
	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt.After(favorites[j].CreatedAt)
	})
	return favorites, nil
}
