package ports

import (
	"context"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

// ── Users ───────────────────────────────────────────────────────────────────

type ListUsersInput struct {
	Role   domain.Role
	Search string
	Page   int
	Limit  int
}

// UpdateProfileInput holds the profile fields a member may change. Nil means
// "leave untouched".
type UpdateProfileInput struct {
	Username *string
	Avatar   *string
	Bio      *string
}

type UserService interface {
	ListUsers(ctx context.Context, in ListUsersInput) (*ListResult[*domain.User], error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// AuthorizeUpdate checks existence then ownership without mutating.
	AuthorizeUpdate(ctx context.Context, actor domain.Identity, id string) error
	UpdateProfile(ctx context.Context, actor domain.Identity, id string, in UpdateProfileInput) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Identity, id string) error
	ChangeRole(ctx context.Context, actor domain.Identity, id string, role string) (*domain.User, error)
}

// ── Posts & comments ────────────────────────────────────────────────────────

type CreatePostInput struct {
	Title      string
	Content    string
	CategoryID string
}

type UpdatePostInput struct {
	Title      *string
	Content    *string
	CategoryID *string
}

type ListPostsInput struct {
	CategoryID string
	AuthorID   string
	Search     string
	Page       int
	Limit      int
}

type PostService interface {
	CreatePost(ctx context.Context, actor domain.Identity, in CreatePostInput) (*domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	ListPosts(ctx context.Context, in ListPostsInput) (*ListResult[*domain.Post], error)
	AuthorizeUpdate(ctx context.Context, actor domain.Identity, id string) error
	UpdatePost(ctx context.Context, actor domain.Identity, id string, in UpdatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, actor domain.Identity, id string) error
}

type CommentService interface {
	AddComment(ctx context.Context, actor domain.Identity, postID, content string) (*domain.Comment, error)
	ListComments(ctx context.Context, postID string, page, limit int) (*ListResult[*domain.Comment], error)
	AuthorizeUpdate(ctx context.Context, actor domain.Identity, id string) error
	UpdateComment(ctx context.Context, actor domain.Identity, id, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, actor domain.Identity, id string) error
}

// ── Categories ──────────────────────────────────────────────────────────────

type CategoryInput struct {
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

type CategoryService interface {
	CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	ListCategories(ctx context.Context, page, limit int) (*ListResult[*domain.Category], error)
	UpdateCategory(ctx context.Context, id string, in UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// ── Lore ────────────────────────────────────────────────────────────────────

type LoreInput struct {
	Name    string
	Summary string
	Body    string
	Tags    []string
}

type UpdateLoreInput struct {
	Name    *string
	Summary *string
	Body    *string
	Tags    []string // nil leaves tags untouched
}

type ListLoreInput struct {
	Kind   string
	Tag    string
	Search string
	Page   int
	Limit  int
}

type LoreService interface {
	CreateEntry(ctx context.Context, kind string, in LoreInput) (*domain.LoreEntry, error)
	GetEntry(ctx context.Context, kind, slug string) (*domain.LoreEntry, error)
	ListEntries(ctx context.Context, in ListLoreInput) (*ListResult[*domain.LoreEntry], error)
	UpdateEntry(ctx context.Context, kind, slug string, in UpdateLoreInput) (*domain.LoreEntry, error)
	DeleteEntry(ctx context.Context, kind, slug string) error
}

// ── Audit ───────────────────────────────────────────────────────────────────

// AuditService persists moderation events drained from the dispatcher.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}
