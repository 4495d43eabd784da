package queue

import (
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"connected/internal/config"
)

// Connect opens the broker connection and its JetStream context.
func Connect(cfg *config.Config) (*nats.Conn, nats.JetStreamContext, error) {
	nc, err := nats.Connect(cfg.Nats.URL,
		nats.Name("connected"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot connect to NATS at %s: %w", cfg.Nats.URL, err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("jetstream context: %w", err)
	}

	slog.Info("connected to NATS", "url", cfg.Nats.URL)
	return nc, js, nil
}

// Declare creates the durable command stream and logs each queue binding.
// Declaring an already existing stream is a no-op.
func Declare(js nats.JetStreamContext, names Names) error {
	slog.Info("creating stream", "stream", names.Stream)

	_, err := js.AddStream(&nats.StreamConfig{
		Name:      names.Stream,
		Subjects:  []string{names.Stream + ".>"},
		Retention: nats.WorkQueuePolicy,
		Storage:   nats.FileStorage,
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		return fmt.Errorf("declare stream %s: %w", names.Stream, err)
	}

	for _, queue := range names.All() {
		slog.Info("binding queue", "stream", names.Stream, "queue", queue, "subject", names.Subject(queue))
	}
	return nil
}
