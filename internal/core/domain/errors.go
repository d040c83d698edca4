package domain

import "errors"

// Authentication. Both surface as 401 with the same message.
var (
	ErrMissingToken = errors.New("missing session token")
	ErrInvalidToken = errors.New("invalid session token")
)

// Authorization. Both surface as 403.
var (
	ErrInsufficientRole = errors.New("insufficient role")
	ErrNotOwner         = errors.New("not the resource owner")
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Lookups.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrLoreNotFound     = errors.New("lore entry not found")
)

// Constraint violations, reported only after authorization succeeded.
var (
	ErrUserExists    = errors.New("user already exists")
	ErrDuplicateSlug = errors.New("slug already in use")
	ErrCategoryInUse = errors.New("category still has posts")
)

// ErrInvalidReference is returned when an input points at a record that does
// not exist, e.g. a post filed under an unknown category.
var ErrInvalidReference = errors.New("referenced record does not exist")

var ErrInvalidRole = errors.New("unrecognized role")

// IsNotFound reports whether err is any of the lookup sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrLoreNotFound)
}
