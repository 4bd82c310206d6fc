package http

import (
	"context"
	"errors"
	"slices"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"profile-votes/internal/domain"
)

type mockProfileRepo struct {
	byID  map[string]domain.Profile
	order []string
	err   error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{byID: make(map[string]domain.Profile)}
}

func (m *mockProfileRepo) Create(_ context.Context, p domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.byID[p.ID] = p
	m.order = append(m.order, p.ID)
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (domain.Profile, error) {
	if m.err != nil {
		return domain.Profile{}, m.err
	}
	p, ok := m.byID[id]
	if !ok {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockProfileRepo) First(_ context.Context) (domain.Profile, error) {
	if m.err != nil {
		return domain.Profile{}, m.err
	}
	if len(m.order) == 0 {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return m.byID[m.order[0]], nil
}

type mockUserRepo struct {
	byID  map[string]domain.User
	order []string
	err   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: make(map[string]domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.byID[u.ID] = u
	m.order = append(m.order, u.ID)
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.User
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

type mockCommentRepo struct {
	byID  map[string]domain.Comment
	seq   int
	users *mockUserRepo
	err   error
}

func newMockCommentRepo(users *mockUserRepo) *mockCommentRepo {
	return &mockCommentRepo{byID: make(map[string]domain.Comment), users: users}
}

func (m *mockCommentRepo) Create(_ context.Context, c domain.Comment) error {
	if m.err != nil {
		return m.err
	}
	// Los tests crean comentarios en rafaga; se separan los instantes para
	// que el orden por creacion sea determinista.
	m.seq++
	c.CreatedAt = c.CreatedAt.Add(time.Duration(m.seq) * time.Millisecond)
	m.byID[c.ID] = c
	return nil
}

func (m *mockCommentRepo) resolve(c domain.Comment) domain.Comment {
	if u, ok := m.users.byID[c.UserID]; ok {
		c.AuthorName = u.Name
	}
	c.Likes = slices.Clone(c.Likes)
	return c
}

func (m *mockCommentRepo) ListByProfile(_ context.Context, profileID string, voted domain.Dimension) ([]domain.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.Comment{}
	for _, c := range m.byID {
		if c.ProfileID == profileID && (voted == "" || c.Has(voted)) {
			out = append(out, m.resolve(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockCommentRepo) ToggleLike(_ context.Context, commentID, userID string, at time.Time) (domain.Comment, error) {
	if m.err != nil {
		return domain.Comment{}, m.err
	}
	c, ok := m.byID[commentID]
	if !ok {
		return domain.Comment{}, pgx.ErrNoRows
	}
	if i := slices.Index(c.Likes, userID); i >= 0 {
		c.Likes = slices.Delete(slices.Clone(c.Likes), i, i+1)
	} else {
		c.Likes = append(slices.Clone(c.Likes), userID)
	}
	c.UpdatedAt = at
	m.byID[commentID] = c
	return m.resolve(c), nil
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(context.Context) error { return m.err }

var errStoreDown = errors.New("store down")
