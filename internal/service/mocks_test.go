package service

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"profile-votes/internal/domain"
)

type mockProfileRepo struct {
	byID      map[string]domain.Profile
	order     []string
	createErr error
	firstErr  error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{byID: make(map[string]domain.Profile)}
}

func (m *mockProfileRepo) Create(_ context.Context, profile domain.Profile) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[profile.ID] = profile
	m.order = append(m.order, profile.ID)
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (domain.Profile, error) {
	p, ok := m.byID[id]
	if !ok {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockProfileRepo) First(_ context.Context) (domain.Profile, error) {
	if m.firstErr != nil {
		return domain.Profile{}, m.firstErr
	}
	if len(m.order) == 0 {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return m.byID[m.order[0]], nil
}

type mockUserRepo struct {
	byID    map[string]domain.User
	order   []string
	listErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: make(map[string]domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.byID[user.ID] = user
	m.order = append(m.order, user.ID)
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.User
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

// mockCommentRepo reproduce en memoria la semantica del repositorio pgx.
type mockCommentRepo struct {
	byID      map[string]domain.Comment
	users     *mockUserRepo
	createErr error
	listErr   error
}

func newMockCommentRepo(users *mockUserRepo) *mockCommentRepo {
	return &mockCommentRepo{byID: make(map[string]domain.Comment), users: users}
}

func (m *mockCommentRepo) Create(_ context.Context, comment domain.Comment) error {
	if m.createErr != nil {
		return m.createErr
	}
	comment.Likes = slices.Clone(comment.Likes)
	m.byID[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) withAuthor(c domain.Comment) domain.Comment {
	if m.users != nil {
		if u, ok := m.users.byID[c.UserID]; ok {
			c.AuthorName = u.Name
		}
	}
	c.Likes = slices.Clone(c.Likes)
	return c
}

func (m *mockCommentRepo) ListByProfile(_ context.Context, profileID string, voted domain.Dimension) ([]domain.Comment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []domain.Comment{}
	for _, c := range m.byID {
		if c.ProfileID != profileID {
			continue
		}
		if voted != "" && !c.Has(voted) {
			continue
		}
		out = append(out, m.withAuthor(c))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mockCommentRepo) ToggleLike(_ context.Context, commentID, userID string, at time.Time) (domain.Comment, error) {
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
	return m.withAuthor(c), nil
}

// stepClock devuelve instantes crecientes para ordenar por creacion sin empates.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func strPtr(s string) *string { return &s }
