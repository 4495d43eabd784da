// Package queue binds the five durable command queues to the broker: one
// queue per command type, at-least-once delivery, FIFO within a queue.
package queue

// Commands are immutable messages; field names below are the wire contract
// shared with anything else that drains these queues.

type PostCreateCmd struct {
	AuthorID string  `json:"authorId"`
	Title    string  `json:"title"`
	Caption  string  `json:"caption"`
	MediaKey *string `json:"mediaKey"`
}

type PostDeleteCmd struct {
	PostID int64 `json:"postId"`
}

type LikeAdjustCmd struct {
	PostID  int64 `json:"postId"`
	AddLike bool  `json:"addLike"`
}

type CommentCreateCmd struct {
	PostID   int64  `json:"postId"`
	AuthorID string `json:"authorId"`
	Caption  string `json:"caption"`
}

type CommentDeleteCmd struct {
	CommentID int64 `json:"commentId"`
}
