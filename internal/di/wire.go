//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"connected/internal/api"
	"connected/internal/comment"
	"connected/internal/common"
	"connected/internal/consumer"
	"connected/internal/post"
	"connected/internal/queue"
	"connected/internal/user"
)

// Declarations only — wire generates the real bodies in wire_gen.go.

func InitPostHandler(db *gorm.DB, media common.MediaStore, publisher queue.Publisher, names queue.Names) *api.PostHandler {
	wire.Build(
		post.NewPostRepository,
		user.NewUserRepository,
		post.NewPostService,
		api.NewPostHandler,
	)
	return &api.PostHandler{}
}

func InitCommentHandler(db *gorm.DB, media common.MediaStore, publisher queue.Publisher, names queue.Names) *api.CommentHandler {
	wire.Build(
		post.NewPostRepository,
		user.NewUserRepository,
		post.NewPostService,
		comment.NewCommentRepository,
		comment.NewCommentService,
		api.NewCommentHandler,
	)
	return &api.CommentHandler{}
}

func InitOktaHandler(db *gorm.DB, eventSecret string) *api.OktaHandler {
	wire.Build(
		user.NewUserRepository,
		user.NewUserService,
		api.NewOktaHandler,
	)
	return &api.OktaHandler{}
}

func InitPostConsumer(db *gorm.DB, media common.MediaStore, publisher queue.Publisher, names queue.Names) *consumer.PostConsumer {
	wire.Build(
		post.NewPostRepository,
		comment.NewCommentRepository,
		user.NewUserRepository,
		consumer.NewPostConsumer,
	)
	return &consumer.PostConsumer{}
}

func InitCommentConsumer(db *gorm.DB) *consumer.CommentConsumer {
	wire.Build(
		comment.NewCommentRepository,
		post.NewPostRepository,
		user.NewUserRepository,
		consumer.NewCommentConsumer,
	)
	return &consumer.CommentConsumer{}
}
