package post

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"connected/internal/common"
	"connected/internal/dbmysql"
	"connected/internal/queue"
	"connected/internal/user"
)

// PostDto is the creation payload a caller submits. It never reaches the
// entity store directly: admitted payloads travel the post-create queue and
// the consumer materializes the row.
type PostDto struct {
	AuthorID string `json:"author_id"`
	Title    string `json:"title"`
	Caption  string `json:"caption"`
}

// MediaUpload carries an optional media part of a post creation request.
type MediaUpload struct {
	ContentType string
	Content     io.Reader
}

type PostService interface {
	AllPosts(ctx context.Context) ([]dbmysql.Post, error)
	AllPostsByUser(ctx context.Context, authorID string) ([]dbmysql.Post, error)
	VerifyPost(ctx context.Context, postID int64) (*dbmysql.Post, error)
	PostExists(ctx context.Context, postID int64) (bool, error)

	ProcessPost(ctx context.Context, callerID string, dto PostDto, media *MediaUpload) error
	ProcessLike(ctx context.Context, postID int64, addLike bool) error
	ProcessPostDeletion(ctx context.Context, callerID string, postID int64) error
}

type postService struct {
	postRepo  PostRepository
	userRepo  user.UserRepository
	media     common.MediaStore
	publisher queue.Publisher
	names     queue.Names
}

func NewPostService(postRepo PostRepository, userRepo user.UserRepository, media common.MediaStore,
	publisher queue.Publisher, names queue.Names) PostService {
	return &postService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		media:     media,
		publisher: publisher,
		names:     names,
	}
}

func (s *postService) AllPosts(ctx context.Context) ([]dbmysql.Post, error) {
	return s.postRepo.ListPublishedPosts(ctx)
}

func (s *postService) AllPostsByUser(ctx context.Context, authorID string) ([]dbmysql.Post, error) {
	exists, err := s.userRepo.CheckUserExists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("a user with ID %s does not exist: %w", authorID, common.ErrNotFound)
	}

	return s.postRepo.ListPublishedPostsByAuthor(ctx, authorID)
}

// VerifyPost finds a published post or reports common.ErrNotFound.
func (s *postService) VerifyPost(ctx context.Context, postID int64) (*dbmysql.Post, error) {
	post, err := s.postRepo.GetPublishedPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("a post with ID %d does not exist: %w", postID, common.ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) PostExists(ctx context.Context, postID int64) (bool, error) {
	_, err := s.VerifyPost(ctx, postID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ProcessPost validates a post creation request and routes it to the
// post-create queue. The caller must be the author; media, when present, is
// uploaded before the command is admitted so a storage failure blocks
// admission. This is a point-in-time gate: nothing here holds a lock, and
// the consumer re-resolves the author when the command is drained.
func (s *postService) ProcessPost(ctx context.Context, callerID string, dto PostDto, media *MediaUpload) error {
	if callerID != dto.AuthorID {
		return fmt.Errorf("the post is trying to be created with an author ID of %s but the current user has an ID of %s: %w",
			dto.AuthorID, callerID, common.ErrUnauthorized)
	}

	cmd := queue.PostCreateCmd{
		AuthorID: dto.AuthorID,
		Title:    dto.Title,
		Caption:  dto.Caption,
	}

	if media != nil && media.Content != nil {
		key, err := s.media.Upload(ctx, dto.AuthorID, media.ContentType, media.Content)
		if err != nil {
			return err
		}
		cmd.MediaKey = &key
	}

	slog.Info("routing post creation", "queue", s.names.PostCreate, "author_id", dto.AuthorID)
	return s.publisher.Publish(ctx, s.names.PostCreate, dto.AuthorID, cmd)
}

// ProcessLike validates that the post currently exists and routes a like
// adjustment to the like queue.
func (s *postService) ProcessLike(ctx context.Context, postID int64, addLike bool) error {
	exists, err := s.PostExists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("a post with ID %d does not exist: %w", postID, common.ErrNotFound)
	}

	cmd := queue.LikeAdjustCmd{PostID: postID, AddLike: addLike}

	slog.Info("routing like adjustment", "queue", s.names.Like, "post_id", postID, "add_like", addLike)
	return s.publisher.Publish(ctx, s.names.Like, fmt.Sprint(postID), cmd)
}

// ProcessPostDeletion validates that the caller authored the post and routes
// the deletion to the post-delete queue.
func (s *postService) ProcessPostDeletion(ctx context.Context, callerID string, postID int64) error {
	target, err := s.VerifyPost(ctx, postID)
	if err != nil {
		return err
	}
	if callerID != target.AuthorID {
		return fmt.Errorf("the post trying to be deleted was not created by the requesting user: %w",
			common.ErrUnauthorized)
	}

	cmd := queue.PostDeleteCmd{PostID: postID}

	slog.Info("routing post deletion", "queue", s.names.PostDelete, "post_id", postID)
	return s.publisher.Publish(ctx, s.names.PostDelete, fmt.Sprint(postID), cmd)
}
