package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"connected/internal/comment"
	"connected/internal/common"
	"connected/internal/dbmysql"
	"connected/internal/post"
	"connected/internal/queue"
	"connected/internal/user"
)

// CommentConsumer owns every Comment state transition.
type CommentConsumer struct {
	commentRepo comment.CommentRepository
	postRepo    post.PostRepository
	userRepo    user.UserRepository
}

func NewCommentConsumer(commentRepo comment.CommentRepository, postRepo post.PostRepository,
	userRepo user.UserRepository) *CommentConsumer {
	return &CommentConsumer{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// HandleCommentCreate materializes a new published comment. Both the author
// and the post are re-resolved against current state: the validator's check
// happened before the command sat in the queue, and the post may have been
// deleted in the meantime. A comment whose post is gone is dropped, never
// created.
func (c *CommentConsumer) HandleCommentCreate(ctx context.Context, data []byte) error {
	var cmd queue.CommentCreateCmd
	if err := json.Unmarshal(data, &cmd); err != nil {
		return fmt.Errorf("%w: %v", queue.ErrBadCommand, err)
	}

	if _, err := c.userRepo.GetUserByID(ctx, cmd.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("a user with ID %s does not exist: %w", cmd.AuthorID, common.ErrNotFound)
		}
		return err
	}

	if _, err := c.postRepo.GetPublishedPostByID(ctx, cmd.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("a post with ID %d does not exist: %w", cmd.PostID, common.ErrNotFound)
		}
		return err
	}

	newComment := &dbmysql.Comment{
		PostID:    cmd.PostID,
		AuthorID:  cmd.AuthorID,
		Caption:   cmd.Caption,
		Published: true,
		CreatedAt: time.Now(),
	}

	if err := c.commentRepo.CreateComment(ctx, newComment); err != nil {
		return err
	}

	slog.Info("a new comment has been created", "comment_id", newComment.ID, "post_id", newComment.PostID)
	return nil
}

// HandleCommentDelete unpublishes a comment. Direct user deletions and the
// post-delete cascade both land here, and redeliveries of either are
// absorbed by the already-unpublished no-op.
func (c *CommentConsumer) HandleCommentDelete(ctx context.Context, data []byte) error {
	var cmd queue.CommentDeleteCmd
	if err := json.Unmarshal(data, &cmd); err != nil {
		return fmt.Errorf("%w: %v", queue.ErrBadCommand, err)
	}

	targetComment, err := c.commentRepo.GetCommentByID(ctx, cmd.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("a comment with ID %d does not exist: %w", cmd.CommentID, common.ErrNotFound)
		}
		return err
	}

	if !targetComment.Published {
		slog.Info("comment already unpublished, skipping", "comment_id", targetComment.ID)
		return nil
	}

	now := time.Now()
	targetComment.Published = false
	targetComment.DeletedAt = &now

	if err := c.commentRepo.SaveComment(ctx, targetComment); err != nil {
		return err
	}

	slog.Info("comment has been unpublished", "comment_id", targetComment.ID)
	return nil
}
