package handler

import (
	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

func toPage[In, Out any](res *ports.ListResult[In], conv func(In) Out) pageResponse[Out] {
	data := make([]Out, 0, len(res.Items))
	for _, item := range res.Items {
		data = append(data, conv(item))
	}
	return pageResponse[Out]{
		Data: data,
		Pagination: paginationMeta{
			Page:       res.Page,
			Limit:      res.Limit,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
	}
}

// toUserResponse renders u; the email is included only when withEmail is set.
func toUserResponse(u *domain.User, withEmail bool) userResponse {
	r := userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
	if withEmail {
		r.Email = u.Email
	}
	return r
}

// canSeeEmail reports whether viewer may see the email address of userID.
func canSeeEmail(viewer domain.Identity, userID string) bool {
	return viewer.ID == userID || viewer.HasRole(domain.RoleAdmin, domain.RoleModerator)
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Content:    p.Content,
		CategoryID: p.CategoryID,
		AuthorID:   p.AuthorID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toLoreResponse(e *domain.LoreEntry) loreResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return loreResponse{
		ID:        e.ID,
		Kind:      string(e.Kind),
		Name:      e.Name,
		Slug:      e.Slug,
		Summary:   e.Summary,
		Body:      e.Body,
		Tags:      tags,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
