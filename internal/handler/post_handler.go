package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"blogapi/internal/auth"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/service"
)

// PostHandler handles post CRUD endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents a post creation request.
type CreatePostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// UpdatePostRequest represents a post update request. Absent fields are
// left unchanged.
type UpdatePostRequest struct {
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}

// AuthorResponse is the partial author record exposed on posts.
type AuthorResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// PostResponse represents a post with its author resolved.
type PostResponse struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Tags      []string       `json:"tags"`
	Published bool           `json:"published"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ListPostsResponse is one page of posts.
type ListPostsResponse struct {
	Posts       []PostResponse `json:"posts"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Total       int64          `json:"total"`
}

func toPostResponse(p *model.Post) PostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Tags:      tags,
		Published: p.Published,
		Author: AuthorResponse{
			ID:       p.Author.ID,
			Username: p.Author.Username,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ListPosts godoc
// @Summary List posts newest-first
// @Tags posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param published query bool false "Filter by published status"
// @Success 200 {object} ListPostsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = 10
	}

	var published *bool
	if raw := c.QueryParam("published"); raw != "" {
		value := raw == "true"
		published = &value
	}

	result, err := h.postService.List(c.Request().Context(), page, limit, published)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	posts := make([]PostResponse, 0, len(result.Posts))
	for i := range result.Posts {
		posts = append(posts, toPostResponse(&result.Posts[i]))
	}

	return c.JSON(http.StatusOK, ListPostsResponse{
		Posts:       posts,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
		Total:       result.Total,
	})
}

// GetPost godoc
// @Summary Get a single post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} PostResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parsePostID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "post not found"})
	}

	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, toPostResponse(post))
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post data"
// @Success 201 {object} PostResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, ok := c.Get(auth.ContextUserIDKey).(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "invalid or expired token"})
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}

	post, err := h.postService.Create(c.Request().Context(), userID, service.PostInput{
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Logger().Infof("post created: %q by user %d", post.Title, userID)
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// UpdatePost godoc
// @Summary Update a post owned by the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body UpdatePostRequest true "Fields to update"
// @Success 200 {object} PostResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID, ok := c.Get(auth.ContextUserIDKey).(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "invalid or expired token"})
	}

	id, err := parsePostID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "post not found"})
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}

	post, err := h.postService.Update(c.Request().Context(), userID, id, service.PostUpdate{
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Logger().Infof("post updated: %q by user %d", post.Title, userID)
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// DeletePost godoc
// @Summary Delete a post owned by the authenticated user
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, ok := c.Get(auth.ContextUserIDKey).(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "invalid or expired token"})
	}

	id, err := parsePostID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: "post not found"})
	}

	if err := h.postService.Delete(c.Request().Context(), userID, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Logger().Infof("post deleted: %d by user %d", id, userID)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Post deleted successfully",
	})
}

func parsePostID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
