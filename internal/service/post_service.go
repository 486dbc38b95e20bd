package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"blogapi/internal/cache"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/validation"
)

const postCacheTTL = 5 * time.Minute

// PostInput carries the fields accepted when creating a post.
type PostInput struct {
	Title     string
	Content   string
	Tags      []string
	Published bool
}

// PostUpdate carries the fields accepted when updating a post. Nil fields
// are left untouched.
type PostUpdate struct {
	Title     *string
	Content   *string
	Tags      []string
	Published *bool
}

// PostPage is one page of a post listing.
type PostPage struct {
	Posts       []model.Post
	Total       int64
	TotalPages  int
	CurrentPage int
}

// PostService exposes post CRUD with ownership enforcement.
type PostService interface {
	List(ctx context.Context, page, limit int, published *bool) (*PostPage, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	Create(ctx context.Context, authorID uint, in PostInput) (*model.Post, error)
	Update(ctx context.Context, authorID, id uint, in PostUpdate) (*model.Post, error)
	Delete(ctx context.Context, authorID, id uint) error
}

type postService struct {
	postRepo repository.PostRepository
	cache    *cache.Client
}

// NewPostService builds a PostService with repository and cache.
func NewPostService(postRepo repository.PostRepository, cache *cache.Client) PostService {
	return &postService{postRepo: postRepo, cache: cache}
}

func (s *postService) cacheKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}

// List returns a page of posts, newest first, with the total count and
// page count for the filter.
func (s *postService) List(ctx context.Context, page, limit int, published *bool) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	posts, err := s.postRepo.List(ctx, (page-1)*limit, limit, published)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	total, err := s.postRepo.Count(ctx, published)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &PostPage{
		Posts:       posts,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// Get returns a single post with its author resolved.
func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Post
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	if payload, err := json.Marshal(post); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, postCacheTTL)
	}
	return post, nil
}

// Create validates the input and stores a new post owned by authorID.
func (s *postService) Create(ctx context.Context, authorID uint, in PostInput) (*model.Post, error) {
	title := validation.SanitizeInput(in.Title)
	content := validation.SanitizeInput(in.Content)

	if errs := validation.ValidatePostData(title, content); len(errs) > 0 {
		return nil, apperrors.NewFieldErrors(errs)
	}

	post := &model.Post{
		Title:     title,
		Content:   content,
		Tags:      in.Tags,
		Published: in.Published,
		AuthorID:  authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	// Re-read so the response carries the resolved author.
	return s.postRepo.FindByID(ctx, post.ID)
}

// Update merges the permitted fields into an existing post. Only the
// post's author may update it; the author reference itself never changes.
func (s *postService) Update(ctx context.Context, authorID, id uint, in PostUpdate) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	if post.AuthorID != authorID {
		return nil, apperrors.ErrNotPostAuthor
	}

	if in.Title != nil {
		post.Title = validation.SanitizeInput(*in.Title)
	}
	if in.Content != nil {
		post.Content = validation.SanitizeInput(*in.Content)
	}
	if in.Tags != nil {
		post.Tags = in.Tags
	}
	if in.Published != nil {
		post.Published = *in.Published
	}

	if errs := validation.ValidatePostData(post.Title, post.Content); len(errs) > 0 {
		return nil, apperrors.NewFieldErrors(errs)
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return post, nil
}

// Delete removes a post. Only the post's author may delete it.
func (s *postService) Delete(ctx context.Context, authorID, id uint) error {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}

	if post.AuthorID != authorID {
		return apperrors.ErrNotPostAuthor
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return nil
}
