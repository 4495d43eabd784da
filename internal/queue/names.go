package queue

import (
	"connected/internal/config"
)

// Names carries the stream (exchange) name and the queue bound to each
// command type.
type Names struct {
	Stream        string
	PostCreate    string
	PostDelete    string
	Like          string
	CommentCreate string
	CommentDelete string
}

func NamesFromConfig(cfg *config.Config) Names {
	return Names{
		Stream:        cfg.Queues.Stream,
		PostCreate:    cfg.Queues.PostCreate,
		PostDelete:    cfg.Queues.PostDelete,
		Like:          cfg.Queues.Like,
		CommentCreate: cfg.Queues.CommentCreate,
		CommentDelete: cfg.Queues.CommentDelete,
	}
}

// All lists every queue bound to the stream.
func (n Names) All() []string {
	return []string{n.PostCreate, n.PostDelete, n.Like, n.CommentCreate, n.CommentDelete}
}

// Subject is the routing key a queue is bound under.
func (n Names) Subject(queue string) string {
	return n.Stream + "." + queue
}
