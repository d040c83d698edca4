package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Pagination ---

type listQuery struct {
	Page  int `query:"page"  validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0"`
}

type paginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type pageResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination paginationMeta `json:"pagination"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

// --- Users ---

type listUsersQuery struct {
	listQuery
	Role   string `query:"role"   validate:"omitempty,oneof=user moderator admin"`
	Search string `query:"search" validate:"max=64"`
}

type updateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=32,alphanum"`
	Avatar   *string `json:"avatar"   validate:"omitempty,url"`
	Bio      *string `json:"bio"      validate:"omitempty,max=500"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Categories ---

type categoryRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=64"`
	Description string `json:"description" validate:"max=500"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=2,max=64"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- Posts & comments ---

type listPostsQuery struct {
	listQuery
	CategoryID string `query:"category"`
	AuthorID   string `query:"author"`
	Search     string `query:"search" validate:"max=64"`
}

type createPostRequest struct {
	Title      string `json:"title"       validate:"required,min=3,max=200"`
	Content    string `json:"content"     validate:"required,max=20000"`
	CategoryID string `json:"category_id" validate:"required"`
}

type updatePostRequest struct {
	Title      *string `json:"title"       validate:"omitempty,min=3,max=200"`
	Content    *string `json:"content"     validate:"omitempty,max=20000"`
	CategoryID *string `json:"category_id"`
}

type postResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	CategoryID string    `json:"category_id"`
	AuthorID   string    `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type commentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Lore ---

type listLoreQuery struct {
	listQuery
	Tag    string `query:"tag"    validate:"max=40"`
	Search string `query:"search" validate:"max=64"`
}

type loreRequest struct {
	Name    string   `json:"name"    validate:"required,min=2,max=120"`
	Summary string   `json:"summary" validate:"max=500"`
	Body    string   `json:"body"    validate:"required"`
	Tags    []string `json:"tags"    validate:"max=20,dive,max=40"`
}

type updateLoreRequest struct {
	Name    *string  `json:"name"    validate:"omitempty,min=2,max=120"`
	Summary *string  `json:"summary" validate:"omitempty,max=500"`
	Body    *string  `json:"body"`
	Tags    []string `json:"tags"    validate:"omitempty,max=20,dive,max=40"`
}

type loreResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary,omitempty"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
