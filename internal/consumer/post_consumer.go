// Package consumer drains the command queues. Each handler is the single
// logical consumer of its queue and the only writer of its entity type.
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

// PostConsumer owns every Post state transition: creation, like adjustment,
// and soft deletion with its media cleanup and comment cascade.
type PostConsumer struct {
	postRepo    post.PostRepository
	commentRepo comment.CommentRepository
	userRepo    user.UserRepository
	media       common.MediaStore
	publisher   queue.Publisher
	names       queue.Names
}

func NewPostConsumer(postRepo post.PostRepository, commentRepo comment.CommentRepository,
	userRepo user.UserRepository, media common.MediaStore,
	publisher queue.Publisher, names queue.Names) *PostConsumer {
	return &PostConsumer{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		media:       media,
		publisher:   publisher,
		names:       names,
	}
}

// HandlePostCreate materializes a new published post. The author was checked
// at validation time but may have been removed since, so it is re-resolved
// here; a missing author drops the command.
func (c *PostConsumer) HandlePostCreate(ctx context.Context, data []byte) error {
	var cmd queue.PostCreateCmd
	if err := json.Unmarshal(data, &cmd); err != nil {
		return fmt.Errorf("%w: %v", queue.ErrBadCommand, err)
	}

	if _, err := c.userRepo.GetUserByID(ctx, cmd.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("a user with ID %s does not exist: %w", cmd.AuthorID, common.ErrNotFound)
		}
		return err
	}

	newPost := &dbmysql.Post{
		AuthorID:  cmd.AuthorID,
		Title:     cmd.Title,
		Caption:   cmd.Caption,
		HasMedia:  cmd.MediaKey != nil,
		MediaKey:  cmd.MediaKey,
		LikeCount: 0,
		Published: true,
		CreatedAt: time.Now(),
	}

	if err := c.postRepo.CreatePost(ctx, newPost); err != nil {
		return err
	}

	slog.Info("a new post has been created", "post_id", newPost.ID, "author_id", newPost.AuthorID)
	return nil
}

// HandleLikeAdjust applies one like increment or decrement. The count floors
// at zero: queued decrements beyond zero are absorbed, so decrements are not
// strictly invertible with increments.
func (c *PostConsumer) HandleLikeAdjust(ctx context.Context, data []byte) error {
	var cmd queue.LikeAdjustCmd
	if err := json.Unmarshal(data, &cmd); err != nil {
		return fmt.Errorf("%w: %v", queue.ErrBadCommand, err)
	}

	targetPost, err := c.postRepo.GetPublishedPostByID(ctx, cmd.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("a post with ID %d does not exist: %w", cmd.PostID, common.ErrNotFound)
		}
		return err
	}

	if cmd.AddLike {
		targetPost.LikeCount++
	} else if targetPost.LikeCount > 0 {
		targetPost.LikeCount--
	}

	if err := c.postRepo.SavePost(ctx, targetPost); err != nil {
		return err
	}

	slog.Info("like count adjusted", "post_id", targetPost.ID, "add_like", cmd.AddLike, "like_count", targetPost.LikeCount)
	return nil
}

// HandlePostDelete unpublishes a post. Redelivered deletions of an already
// unpublished post are a no-op, which is what makes the queue's
// at-least-once delivery safe. Media deletion is attempted exactly once and
// its failure does not block the transition: storage garbage is an accepted
// gap, metadata consistency is not. Afterward every comment still published
// on the post gets one deletion command fanned out to the comment-delete
// queue; comments still in flight on the create queue are not visible here
// and may outlive their post.
func (c *PostConsumer) HandlePostDelete(ctx context.Context, data []byte) error {
	var cmd queue.PostDeleteCmd
	if err := json.Unmarshal(data, &cmd); err != nil {
		return fmt.Errorf("%w: %v", queue.ErrBadCommand, err)
	}

	targetPost, err := c.postRepo.GetPostByID(ctx, cmd.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("a post with ID %d does not exist: %w", cmd.PostID, common.ErrNotFound)
		}
		return err
	}

	if !targetPost.Published {
		slog.Info("post already unpublished, skipping", "post_id", targetPost.ID)
		return nil
	}

	if targetPost.HasMedia && targetPost.MediaKey != nil {
		if err := c.media.Delete(ctx, *targetPost.MediaKey); err != nil {
			slog.Warn("media delete failed, proceeding with post deletion",
				"post_id", targetPost.ID, "media_key", *targetPost.MediaKey, "error", err)
		}
		targetPost.HasMedia = false
		targetPost.MediaKey = nil
	}

	now := time.Now()
	targetPost.Published = false
	targetPost.DeletedAt = &now

	if err := c.postRepo.SavePost(ctx, targetPost); err != nil {
		return err
	}

	comments, err := c.commentRepo.ListPublishedCommentsForPost(ctx, targetPost.ID)
	if err != nil {
		return err
	}
	for _, cm := range comments {
		cascade := queue.CommentDeleteCmd{CommentID: cm.ID}
		if err := c.publisher.Publish(ctx, c.names.CommentDelete, fmt.Sprint(cm.ID), cascade); err != nil {
			return err
		}
	}

	slog.Info("post has been unpublished", "post_id", targetPost.ID, "cascaded_comments", len(comments))
	return nil
}
