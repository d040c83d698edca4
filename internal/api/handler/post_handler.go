package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

// PostHandler serves forum posts and their comments.
type PostHandler struct {
	posts    ports.PostService
	comments ports.CommentService
}

func NewPostHandler(posts ports.PostService, comments ports.CommentService) *PostHandler {
	return &PostHandler{posts: posts, comments: comments}
}

// List handles GET /v1/posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        category  query     string  false  "Category id"
// @Param        author    query     string  false  "Author id"
// @Param        search    query     string  false  "Title contains"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  pageResponse[postResponse]
// @Router       /v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	var q listPostsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	res, err := h.posts.ListPosts(c.Request().Context(), ports.ListPostsInput{
		CategoryID: q.CategoryID,
		AuthorID:   q.AuthorID,
		Search:     q.Search,
		Page:       q.Page,
		Limit:      q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPage(res, toPostResponse))
}

// Get handles GET /v1/posts/:id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.posts.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Create handles POST /v1/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post"
// @Success      201   {object}  postResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.posts.CreatePost(c.Request().Context(), actor, ports.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Update handles PATCH /v1/posts/:id. Only the author or an admin may edit.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to change"
// @Success      200   {object}  postResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/posts/{id} [patch]
func (h *PostHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.posts.AuthorizeUpdate(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	var req updatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.posts.UpdatePost(c.Request().Context(), actor, c.Param("id"), ports.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /v1/posts/:id. Only the author or an admin may delete.
//
// @Summary      Delete a post and its comments
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path  string  true  "Post id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.posts.DeletePost(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListComments handles GET /v1/posts/:id/comments.
//
// @Summary      List comments on a post
// @Tags         comments
// @Produce      json
// @Param        id     path      string  true   "Post id"
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Success      200    {object}  pageResponse[commentResponse]
// @Failure      404    {object}  errorResponse
// @Router       /v1/posts/{id}/comments [get]
func (h *PostHandler) ListComments(c echo.Context) error {
	var q listQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	res, err := h.comments.ListComments(c.Request().Context(), c.Param("id"), q.Page, q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPage(res, toCommentResponse))
}

// AddComment handles POST /v1/posts/:id/comments.
//
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post id"
// @Param        body  body      commentRequest  true  "Comment"
// @Success      201   {object}  commentResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/posts/{id}/comments [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.comments.AddComment(c.Request().Context(), actor, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// UpdateComment handles PATCH /v1/comments/:id.
//
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Comment id"
// @Param        body  body      commentRequest  true  "Comment"
// @Success      200   {object}  commentResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/comments/{id} [patch]
func (h *PostHandler) UpdateComment(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.comments.AuthorizeUpdate(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.comments.UpdateComment(c.Request().Context(), actor, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// DeleteComment handles DELETE /v1/comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id   path  string  true  "Comment id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/comments/{id} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.comments.DeleteComment(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

