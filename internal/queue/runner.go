package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// HandlerFunc processes one command payload. Returning nil or a Terminal
// error settles the message; any other error asks the broker to redeliver.
type HandlerFunc func(ctx context.Context, data []byte) error

// Runner attaches one durable consumer per queue. MaxAckPending(1) keeps
// delivery strictly in enqueue order: the next message is not delivered
// until the previous one is settled.
type Runner struct {
	js    nats.JetStreamContext
	names Names
	subs  []*nats.Subscription
}

func NewRunner(js nats.JetStreamContext, names Names) *Runner {
	return &Runner{js: js, names: names}
}

func (r *Runner) Consume(queue string, handler HandlerFunc) error {
	sub, err := r.js.Subscribe(r.names.Subject(queue), func(msg *nats.Msg) {
		err := handler(context.Background(), msg.Data)
		switch {
		case err == nil:
			if err := msg.Ack(); err != nil {
				slog.Error("ack failed", "queue", queue, "error", err)
			}
		case Terminal(err):
			// Business-rule rejection: terminal for this one message.
			slog.Warn("dropping command", "queue", queue, "error", err)
			if err := msg.Ack(); err != nil {
				slog.Error("ack failed", "queue", queue, "error", err)
			}
		default:
			slog.Error("command processing failed, requeueing", "queue", queue, "error", err)
			if err := msg.Nak(); err != nil {
				slog.Error("nak failed", "queue", queue, "error", err)
			}
		}
	},
		nats.Durable(queue),
		nats.ManualAck(),
		nats.AckExplicit(),
		nats.MaxAckPending(1),
		nats.BindStream(r.names.Stream),
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", queue, err)
	}

	slog.Info("consuming queue", "queue", queue)
	r.subs = append(r.subs, sub)
	return nil
}

// Drain stops all subscriptions, letting in-flight handlers finish.
func (r *Runner) Drain() {
	for _, sub := range r.subs {
		if err := sub.Drain(); err != nil {
			slog.Error("drain failed", "error", err)
		}
	}
}
