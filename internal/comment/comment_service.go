package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"connected/internal/common"
	"connected/internal/dbmysql"
	"connected/internal/post"
	"connected/internal/queue"
)

// CommentDto is the creation payload a caller submits.
type CommentDto struct {
	PostID   int64  `json:"post_id"`
	AuthorID string `json:"author_id"`
	Caption  string `json:"caption"`
}

type CommentService interface {
	AllComments(ctx context.Context) ([]dbmysql.Comment, error)
	AllCommentsByUser(ctx context.Context, authorID string) ([]dbmysql.Comment, error)
	VerifyComment(ctx context.Context, commentID int64) (*dbmysql.Comment, error)
	CommentExists(ctx context.Context, commentID int64) (bool, error)

	ProcessComment(ctx context.Context, callerID string, dto CommentDto) error
	ProcessCommentDeletion(ctx context.Context, callerID string, commentID int64) error
}

type commentService struct {
	commentRepo CommentRepository
	postService post.PostService
	publisher   queue.Publisher
	names       queue.Names
}

func NewCommentService(commentRepo CommentRepository, postService post.PostService,
	publisher queue.Publisher, names queue.Names) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postService: postService,
		publisher:   publisher,
		names:       names,
	}
}

func (s *commentService) AllComments(ctx context.Context) ([]dbmysql.Comment, error) {
	return s.commentRepo.ListPublishedComments(ctx)
}

func (s *commentService) AllCommentsByUser(ctx context.Context, authorID string) ([]dbmysql.Comment, error) {
	return s.commentRepo.ListPublishedCommentsByAuthor(ctx, authorID)
}

// VerifyComment finds a published comment or reports common.ErrNotFound.
func (s *commentService) VerifyComment(ctx context.Context, commentID int64) (*dbmysql.Comment, error) {
	comment, err := s.commentRepo.GetPublishedCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("a comment with ID %d does not exist: %w", commentID, common.ErrNotFound)
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) CommentExists(ctx context.Context, commentID int64) (bool, error) {
	_, err := s.VerifyComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ProcessComment validates a comment creation request and routes it to the
// comment-create queue. The referenced post must be published right now;
// the consumer checks again at consume time because this gate is stale by
// construction.
func (s *commentService) ProcessComment(ctx context.Context, callerID string, dto CommentDto) error {
	if callerID != dto.AuthorID {
		return fmt.Errorf("the comment is trying to be created with an author ID of %s but the current user has an ID of %s: %w",
			dto.AuthorID, callerID, common.ErrUnauthorized)
	}

	exists, err := s.postService.PostExists(ctx, dto.PostID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("a post with ID %d does not exist: %w", dto.PostID, common.ErrNotFound)
	}

	cmd := queue.CommentCreateCmd{
		PostID:   dto.PostID,
		AuthorID: dto.AuthorID,
		Caption:  dto.Caption,
	}

	slog.Info("routing comment creation", "queue", s.names.CommentCreate, "post_id", dto.PostID, "author_id", dto.AuthorID)
	return s.publisher.Publish(ctx, s.names.CommentCreate, fmt.Sprint(dto.PostID), cmd)
}

// ProcessCommentDeletion validates that the caller authored the comment and
// routes the deletion to the comment-delete queue. The cascade triggered by a
// post deletion publishes to the same queue, so both paths converge on the
// same idempotent transition.
func (s *commentService) ProcessCommentDeletion(ctx context.Context, callerID string, commentID int64) error {
	target, err := s.VerifyComment(ctx, commentID)
	if err != nil {
		return err
	}
	if callerID != target.AuthorID {
		return fmt.Errorf("the comment trying to be deleted was not created by the requesting user: %w",
			common.ErrUnauthorized)
	}

	cmd := queue.CommentDeleteCmd{CommentID: commentID}

	slog.Info("routing comment deletion", "queue", s.names.CommentDelete, "comment_id", commentID)
	return s.publisher.Publish(ctx, s.names.CommentDelete, fmt.Sprint(commentID), cmd)
}
