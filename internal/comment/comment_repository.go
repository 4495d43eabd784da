package comment

import (
	"context"

	"gorm.io/gorm"

	"connected/internal/dbmysql"
)

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *dbmysql.Comment) error
	// GetCommentByID loads a comment regardless of published state.
	GetCommentByID(ctx context.Context, commentID int64) (*dbmysql.Comment, error)
	GetPublishedCommentByID(ctx context.Context, commentID int64) (*dbmysql.Comment, error)
	ListPublishedComments(ctx context.Context) ([]dbmysql.Comment, error)
	ListPublishedCommentsByAuthor(ctx context.Context, authorID string) ([]dbmysql.Comment, error)
	ListPublishedCommentsForPost(ctx context.Context, postID int64) ([]dbmysql.Comment, error)
	SaveComment(ctx context.Context, comment *dbmysql.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *dbmysql.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetCommentByID(ctx context.Context, commentID int64) (*dbmysql.Comment, error) {
	var comment dbmysql.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", commentID).Error
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepository) GetPublishedCommentByID(ctx context.Context, commentID int64) (*dbmysql.Comment, error) {
	var comment dbmysql.Comment
	err := r.db.WithContext(ctx).Where("id = ? AND published = ?", commentID, true).First(&comment).Error
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepository) ListPublishedComments(ctx context.Context) ([]dbmysql.Comment, error) {
	var comments []dbmysql.Comment
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListPublishedCommentsByAuthor(ctx context.Context, authorID string) ([]dbmysql.Comment, error) {
	var comments []dbmysql.Comment
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND published = ?", authorID, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListPublishedCommentsForPost(ctx context.Context, postID int64) ([]dbmysql.Comment, error) {
	var comments []dbmysql.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND published = ?", postID, true).
		Order("created_at").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) SaveComment(ctx context.Context, comment *dbmysql.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}
