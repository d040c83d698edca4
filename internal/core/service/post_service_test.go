package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

type postFixture struct {
	svc        *PostService
	posts      *stubPostRepo
	comments   *stubCommentRepo
	categories *stubCategoryRepo
	audit      *recordingAudit
}

func newPostFixture() *postFixture {
	f := &postFixture{
		posts:      newStubPostRepo(),
		comments:   newStubCommentRepo(),
		categories: newStubCategoryRepo("general", "guilds"),
		audit:      &recordingAudit{},
	}
	f.svc = NewPostService(f.posts, f.comments, f.categories, f.audit, zerolog.Nop())
	return f
}

func (f *postFixture) seedPost(t *testing.T, author string) *domain.Post {
	t.Helper()
	p, err := f.svc.CreatePost(context.Background(), member(author), ports.CreatePostInput{
		Title:      "The Lusty Argonian Maid, " + author,
		Content:    "Act one.",
		CategoryID: "general",
	})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return p
}

func strPtr(s string) *string { return &s }

func TestPostService_CreatePost(t *testing.T) {
	f := newPostFixture()

	p, err := f.svc.CreatePost(context.Background(), member("5"), ports.CreatePostInput{
		Title:      "  Where is Cyrodiil?  ",
		Content:    "Asking for a friend.",
		CategoryID: "general",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if p.AuthorID != "5" {
		t.Fatalf("author must come from the identity, got %q", p.AuthorID)
	}
	if p.Slug != "where-is-cyrodiil" {
		t.Fatalf("unexpected slug %q", p.Slug)
	}
	if p.Title != "Where is Cyrodiil?" {
		t.Fatalf("title not trimmed: %q", p.Title)
	}
}

func TestPostService_CreatePost_UnknownCategory(t *testing.T) {
	f := newPostFixture()

	_, err := f.svc.CreatePost(context.Background(), member("5"), ports.CreatePostInput{
		Title: "Orphan", CategoryID: "nope",
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestPostService_CreatePost_DuplicateSlug(t *testing.T) {
	f := newPostFixture()
	in := ports.CreatePostInput{Title: "Same title", CategoryID: "general"}

	if _, err := f.svc.CreatePost(context.Background(), member("5"), in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := f.svc.CreatePost(context.Background(), member("6"), in); !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestPostService_UpdatePost_Ordering(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "7")

	tests := []struct {
		name    string
		actor   domain.Identity
		id      string
		wantErr error
	}{
		{"missing post as admin is not found", admin("1"), "p999", domain.ErrPostNotFound},
		{"missing post as member is not found", member("5"), "p999", domain.ErrPostNotFound},
		{"foreign post as member is forbidden", member("5"), post.ID, domain.ErrNotOwner},
		{"foreign post as moderator is forbidden", moderator("9"), post.ID, domain.ErrNotOwner},
		{"own post is allowed", member("7"), post.ID, nil},
		{"foreign post as admin is allowed", admin("1"), post.ID, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := f.posts.writes
			_, err := f.svc.UpdatePost(context.Background(), tt.actor, tt.id, ports.UpdatePostInput{Content: strPtr("edited by " + tt.actor.ID)})
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if f.posts.writes != before+1 {
					t.Fatal("expected the update to be written")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if f.posts.writes != before {
				t.Fatal("denied request must not write")
			}
		})
	}
}

func TestPostService_UpdatePost_AppliesFields(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "5")

	got, err := f.svc.UpdatePost(context.Background(), member("5"), post.ID, ports.UpdatePostInput{
		Title:      strPtr("Renamed thread"),
		CategoryID: strPtr("guilds"),
	})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if got.Slug != "renamed-thread" || got.CategoryID != "guilds" || got.Content != "Act one." {
		t.Fatalf("unexpected post: %+v", got)
	}
	if got.AuthorID != "5" {
		t.Fatalf("author must not change, got %q", got.AuthorID)
	}
}

func TestPostService_UpdatePost_UnknownCategoryAfterOwnership(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "7")

	_, err := f.svc.UpdatePost(context.Background(), member("5"), post.ID, ports.UpdatePostInput{CategoryID: strPtr("nope")})
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("ownership must be checked before references, got %v", err)
	}

	_, err = f.svc.UpdatePost(context.Background(), member("7"), post.ID, ports.UpdatePostInput{CategoryID: strPtr("nope")})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestPostService_UpdatePost_SlugConflictAfterAuthorization(t *testing.T) {
	f := newPostFixture()
	first := f.seedPost(t, "5")
	second := f.seedPost(t, "6")

	_, err := f.svc.UpdatePost(context.Background(), member("5"), second.ID, ports.UpdatePostInput{Title: strPtr(first.Title)})
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("non-owner must see forbidden, not conflict: %v", err)
	}

	_, err = f.svc.UpdatePost(context.Background(), member("6"), second.ID, ports.UpdatePostInput{Title: strPtr(first.Title)})
	if !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestPostService_DeletePost_RemovesComments(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "5")
	_ = f.comments.Create(context.Background(), &domain.Comment{PostID: post.ID, AuthorID: "6", Content: "first"})
	_ = f.comments.Create(context.Background(), &domain.Comment{PostID: "other", AuthorID: "6", Content: "elsewhere"})

	if err := f.svc.DeletePost(context.Background(), member("5"), post.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if _, ok := f.posts.posts[post.ID]; ok {
		t.Fatal("post still present")
	}
	if len(f.comments.comments) != 1 {
		t.Fatalf("expected only the unrelated comment to remain, got %d", len(f.comments.comments))
	}
	if len(f.audit.events) != 0 {
		t.Fatalf("owner delete must not be audited, got %+v", f.audit.events)
	}
}

func TestPostService_DeletePost_AdminOverrideIsAudited(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "5")

	if err := f.svc.DeletePost(context.Background(), admin("1"), post.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if len(f.audit.events) != 1 {
		t.Fatalf("expected one audit event, got %d", len(f.audit.events))
	}
	ev := f.audit.events[0]
	if ev.ActorID != "1" || ev.OwnerID != "5" || ev.Resource != "post" || ev.Action != "delete" || ev.ResourceID != post.ID {
		t.Fatalf("unexpected audit event: %+v", ev)
	}
}

func TestPostService_DeletePost_DeniedHasNoSideEffects(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "5")
	_ = f.comments.Create(context.Background(), &domain.Comment{PostID: post.ID, AuthorID: "6", Content: "first"})
	postWrites, commentWrites := f.posts.writes, f.comments.writes

	err := f.svc.DeletePost(context.Background(), member("6"), post.ID)
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if f.posts.writes != postWrites || f.comments.writes != commentWrites {
		t.Fatal("denied delete must not touch storage")
	}
}

func TestPostService_ListPosts_Pagination(t *testing.T) {
	f := newPostFixture()
	f.seedPost(t, "5")

	res, err := f.svc.ListPosts(context.Background(), ports.ListPostsInput{Limit: 500})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if res.Limit != maxPageLimit || res.Page != 1 || res.Total != 1 || res.TotalPages != 1 {
		t.Fatalf("unexpected page: %+v", res)
	}
}

func TestPostService_DeletePost_FailedDeleteKeepsComments(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "5")
	_ = f.comments.Create(context.Background(), &domain.Comment{PostID: post.ID, AuthorID: "6", Content: "first"})
	f.posts.deleteErr = errors.New("mongo down")

	if err := f.svc.DeletePost(context.Background(), member("5"), post.ID); err == nil {
		t.Fatal("expected an error")
	}
	if len(f.comments.comments) != 1 {
		t.Fatalf("comments of a surviving post were removed, %d left", len(f.comments.comments))
	}
}

func TestPostService_AuthorizeUpdate(t *testing.T) {
	f := newPostFixture()
	post := f.seedPost(t, "5")
	writes := f.posts.writes

	tests := []struct {
		name  string
		actor domain.Identity
		id    string
		want  error
	}{
		{"missing post", admin("1"), "p404", domain.ErrPostNotFound},
		{"foreign post", member("6"), post.ID, domain.ErrNotOwner},
		{"moderator is not an owner", moderator("9"), post.ID, domain.ErrNotOwner},
		{"author", member("5"), post.ID, nil},
		{"admin", admin("1"), post.ID, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := f.svc.AuthorizeUpdate(context.Background(), tc.actor, tc.id)
			if !errors.Is(err, tc.want) {
				t.Fatalf("AuthorizeUpdate = %v, want %v", err, tc.want)
			}
		})
	}
	if f.posts.writes != writes || len(f.audit.events) != 0 {
		t.Fatal("AuthorizeUpdate must not write or audit")
	}
}
