package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

// ── Users ───────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users  map[string]*domain.User
	seq    int
	errOn  map[string]error
	writes int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), errOn: make(map[string]error)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) put(u *domain.User) *domain.User {
	r.users[u.ID] = cloneUser(u)
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("u%d", r.seq)
	r.users[c.ID] = cloneUser(c)
	r.writes++
	return c, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if err := r.errOn["FindByID"]; err != nil {
		return nil, err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if err := r.errOn["FindByEmail"]; err != nil {
		return nil, err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, f ports.UserFilter) ([]*domain.User, int64, error) {
	var out []*domain.User
	for _, u := range r.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.ID != user.ID && u.Username == user.Username {
			return domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	r.writes++
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	r.writes++
	return nil
}

// ── Posts ───────────────────────────────────────────────────────────────────

type stubPostRepo struct {
	posts     map[string]*domain.Post
	seq       int
	writes    int
	deleteErr error
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) slugTaken(slug, exceptID string) bool {
	for _, p := range r.posts {
		if p.Slug == slug && p.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) error {
	if r.slugTaken(post.Slug, "") {
		return domain.ErrDuplicateSlug
	}
	r.seq++
	post.ID = fmt.Sprintf("p%d", r.seq)
	c := *post
	r.posts[post.ID] = &c
	r.writes++
	return nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	c := *p
	return &c, nil
}

func (r *stubPostRepo) List(_ context.Context, f ports.PostFilter) ([]*domain.Post, int64, error) {
	var out []*domain.Post
	for _, p := range r.posts {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.AuthorID != "" && p.AuthorID != f.AuthorID {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	return out, int64(len(out)), nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) error {
	if r.slugTaken(post.Slug, post.ID) {
		return domain.ErrDuplicateSlug
	}
	c := *post
	r.posts[post.ID] = &c
	r.writes++
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.posts, id)
	r.writes++
	return nil
}

// ── Comments ────────────────────────────────────────────────────────────────

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	seq      int
	writes   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	r.seq++
	c.ID = fmt.Sprintf("c%d", r.seq)
	cp := *c
	r.comments[c.ID] = &cp
	r.writes++
	return nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCommentRepo) ListByPost(_ context.Context, postID string, _, _ int) ([]*domain.Comment, int64, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubCommentRepo) Update(_ context.Context, c *domain.Comment) error {
	cp := *c
	r.comments[c.ID] = &cp
	r.writes++
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	delete(r.comments, id)
	r.writes++
	return nil
}

func (r *stubCommentRepo) DeleteByPost(_ context.Context, postID string) error {
	for id, c := range r.comments {
		if c.PostID == postID {
			delete(r.comments, id)
		}
	}
	r.writes++
	return nil
}

// ── Categories ──────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	seq        int
}

func newStubCategoryRepo(ids ...string) *stubCategoryRepo {
	r := &stubCategoryRepo{categories: make(map[string]*domain.Category)}
	for _, id := range ids {
		r.categories[id] = &domain.Category{ID: id, Name: id, Slug: id}
	}
	return r
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	for _, existing := range r.categories {
		if existing.Slug == c.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	r.seq++
	c.ID = fmt.Sprintf("cat%d", r.seq)
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) List(_ context.Context, _, _ int) ([]*domain.Category, int64, error) {
	var out []*domain.Category
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	for _, existing := range r.categories {
		if existing.Slug == c.Slug && existing.ID != c.ID {
			return domain.ErrDuplicateSlug
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

// ── Lore ────────────────────────────────────────────────────────────────────

type stubLoreRepo struct {
	entries map[string]*domain.LoreEntry
	seq     int
}

func newStubLoreRepo() *stubLoreRepo {
	return &stubLoreRepo{entries: make(map[string]*domain.LoreEntry)}
}

func (r *stubLoreRepo) conflict(e *domain.LoreEntry) bool {
	for _, existing := range r.entries {
		if existing.Kind == e.Kind && existing.Slug == e.Slug && existing.ID != e.ID {
			return true
		}
	}
	return false
}

func (r *stubLoreRepo) Create(_ context.Context, e *domain.LoreEntry) error {
	if r.conflict(e) {
		return domain.ErrDuplicateSlug
	}
	r.seq++
	e.ID = fmt.Sprintf("l%d", r.seq)
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *stubLoreRepo) FindBySlug(_ context.Context, kind domain.LoreKind, slug string) (*domain.LoreEntry, error) {
	for _, e := range r.entries {
		if e.Kind == kind && e.Slug == slug {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.ErrLoreNotFound
}

func (r *stubLoreRepo) List(_ context.Context, f ports.LoreFilter) ([]*domain.LoreEntry, int64, error) {
	var out []*domain.LoreEntry
	for _, e := range r.entries {
		if e.Kind != f.Kind {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Search)) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *stubLoreRepo) Update(_ context.Context, e *domain.LoreEntry) error {
	if r.conflict(e) {
		return domain.ErrDuplicateSlug
	}
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *stubLoreRepo) Delete(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

// ── Collaborators ───────────────────────────────────────────────────────────

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Enqueue(e domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

type stubIssuer struct {
	signed []domain.Identity
}

func (s *stubIssuer) Sign(id domain.Identity) (string, time.Time, error) {
	s.signed = append(s.signed, id)
	return "token-for-" + id.ID, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

func member(id string) domain.Identity {
	return domain.Identity{ID: id, Username: id, Role: domain.RoleUser}
}

func moderator(id string) domain.Identity {
	return domain.Identity{ID: id, Username: id, Role: domain.RoleModerator}
}

func admin(id string) domain.Identity {
	return domain.Identity{ID: id, Username: id, Role: domain.RoleAdmin}
}
