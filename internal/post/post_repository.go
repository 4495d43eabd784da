package post

import (
	"context"

	"gorm.io/gorm"

	"connected/internal/dbmysql"
)

type PostRepository interface {
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	// GetPostByID loads a post regardless of published state; the consumers
	// need unpublished rows for their idempotence checks.
	GetPostByID(ctx context.Context, postID int64) (*dbmysql.Post, error)
	GetPublishedPostByID(ctx context.Context, postID int64) (*dbmysql.Post, error)
	ListPublishedPosts(ctx context.Context) ([]dbmysql.Post, error)
	ListPublishedPostsByAuthor(ctx context.Context, authorID string) ([]dbmysql.Post, error)
	SavePost(ctx context.Context, post *dbmysql.Post) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetPostByID(ctx context.Context, postID int64) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", postID).Error
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) GetPublishedPostByID(ctx context.Context, postID int64) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := r.db.WithContext(ctx).Where("id = ? AND published = ?", postID, true).First(&post).Error
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) ListPublishedPosts(ctx context.Context) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListPublishedPostsByAuthor(ctx context.Context, authorID string) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND published = ?", authorID, true).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) SavePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}
