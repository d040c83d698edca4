package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

// LoreHandler serves the encyclopedia under /v1/lore/:kind.
type LoreHandler struct {
	service ports.LoreService
}

func NewLoreHandler(service ports.LoreService) *LoreHandler {
	return &LoreHandler{service: service}
}

// List handles GET /v1/lore/:kind.
//
// @Summary      List lore entries of a kind
// @Tags         lore
// @Produce      json
// @Param        kind    path      string  true   "Kind"  Enums(creatures, races, regions, characters, books)
// @Param        tag     query     string  false  "Tag"
// @Param        search  query     string  false  "Name contains"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  pageResponse[loreResponse]
// @Failure      404     {object}  errorResponse
// @Router       /v1/lore/{kind} [get]
func (h *LoreHandler) List(c echo.Context) error {
	var q listLoreQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	res, err := h.service.ListEntries(c.Request().Context(), ports.ListLoreInput{
		Kind:   c.Param("kind"),
		Tag:    q.Tag,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPage(res, toLoreResponse))
}

// Get handles GET /v1/lore/:kind/:slug.
//
// @Summary      Get a lore entry
// @Tags         lore
// @Produce      json
// @Param        kind  path      string  true  "Kind"
// @Param        slug  path      string  true  "Slug"
// @Success      200   {object}  loreResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/lore/{kind}/{slug} [get]
func (h *LoreHandler) Get(c echo.Context) error {
	entry, err := h.service.GetEntry(c.Request().Context(), c.Param("kind"), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLoreResponse(entry))
}

// Create handles POST /v1/lore/:kind.
//
// @Summary      Create a lore entry
// @Tags         lore
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string       true  "Kind"
// @Param        body  body      loreRequest  true  "Entry"
// @Success      201   {object}  loreResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/lore/{kind} [post]
func (h *LoreHandler) Create(c echo.Context) error {
	var req loreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	entry, err := h.service.CreateEntry(c.Request().Context(), c.Param("kind"), ports.LoreInput{
		Name:    req.Name,
		Summary: req.Summary,
		Body:    req.Body,
		Tags:    req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toLoreResponse(entry))
}

// Update handles PATCH /v1/lore/:kind/:slug.
//
// @Summary      Update a lore entry
// @Tags         lore
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string             true  "Kind"
// @Param        slug  path      string             true  "Slug"
// @Param        body  body      updateLoreRequest  true  "Fields to change"
// @Success      200   {object}  loreResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/lore/{kind}/{slug} [patch]
func (h *LoreHandler) Update(c echo.Context) error {
	if _, err := h.service.GetEntry(c.Request().Context(), c.Param("kind"), c.Param("slug")); err != nil {
		return err
	}
	var req updateLoreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	entry, err := h.service.UpdateEntry(c.Request().Context(), c.Param("kind"), c.Param("slug"), ports.UpdateLoreInput{
		Name:    req.Name,
		Summary: req.Summary,
		Body:    req.Body,
		Tags:    req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLoreResponse(entry))
}

// Delete handles DELETE /v1/lore/:kind/:slug.
//
// @Summary      Delete a lore entry
// @Tags         lore
// @Security     BearerAuth
// @Param        kind  path  string  true  "Kind"
// @Param        slug  path  string  true  "Slug"
// @Success      204
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/lore/{kind}/{slug} [delete]
func (h *LoreHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteEntry(c.Request().Context(), c.Param("kind"), c.Param("slug")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
