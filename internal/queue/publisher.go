package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// Publisher routes an admitted command to the durable queue bound to its
// type. The key is the command's natural key (post ID, author ID, ...) and is
// carried only as an observability/partitioning hint; it plays no part in
// ordering.
type Publisher interface {
	Publish(ctx context.Context, queue, key string, cmd any) error
}

type JetStreamPublisher struct {
	js    nats.JetStreamContext
	names Names
}

func NewJetStreamPublisher(js nats.JetStreamContext, names Names) *JetStreamPublisher {
	return &JetStreamPublisher{js: js, names: names}
}

func (p *JetStreamPublisher) Publish(ctx context.Context, queue, key string, cmd any) error {
	data, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshalling error: %w", err)
	}

	msg := &nats.Msg{
		Subject: p.names.Subject(queue),
		Data:    data,
		Header:  nats.Header{},
	}
	if key != "" {
		msg.Header.Set("Cmd-Key", key)
	}

	slog.Info("publishing command", "stream", p.names.Stream, "queue", queue, "key", key)

	if _, err := p.js.PublishMsg(msg, nats.Context(ctx)); err != nil {
		return fmt.Errorf("publish to %s: %w", queue, err)
	}
	return nil
}
