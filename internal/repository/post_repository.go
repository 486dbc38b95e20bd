package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blogapi/internal/model"
)

// PostRepository defines post persistence operations. Reads resolve the
// Author relation so callers never issue a second lookup.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, offset, limit int, published *bool) ([]model.Post, error)
	Count(ctx context.Context, published *bool) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post record.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// Update saves post fields without touching the author association.
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error
}

// Delete removes a post by ID.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

// FindByID finds a post by ID with its author resolved.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns a page of posts, newest first. A nil published filter
// matches all posts.
func (r *postRepository) List(ctx context.Context, offset, limit int, published *bool) ([]model.Post, error) {
	q := r.db.WithContext(ctx).Preload("Author").Order("created_at DESC")
	if published != nil {
		q = q.Where("published = ?", *published)
	}

	var posts []model.Post
	if err := q.Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the total number of posts matching the filter.
func (r *postRepository) Count(ctx context.Context, published *bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Post{})
	if published != nil {
		q = q.Where("published = ?", *published)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
