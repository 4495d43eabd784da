package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connected/internal/api"
	"connected/internal/config"
	"connected/internal/dbmongo"
	"connected/internal/dbmysql"
	"connected/internal/di"
	"connected/internal/queue"
)

func main() {
	slog.Info("starting connected service...")

	cfg := config.LoadConfig()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		slog.Error("failed to connect to MySQL", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&dbmysql.User{},
		&dbmysql.Post{},
		&dbmysql.Comment{},
	); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}
	slog.Info("database migration completed")

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer mongoClient.Close(context.Background())
	media := dbmongo.NewMediaStorage(mongoClient)

	nc, js, err := queue.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer nc.Close()

	names := queue.NamesFromConfig(cfg)
	if err := queue.Declare(js, names); err != nil {
		slog.Error("failed to declare command stream", "error", err)
		os.Exit(1)
	}
	publisher := queue.NewJetStreamPublisher(js, names)

	// Consumers: one durable, FIFO subscription per queue.
	postConsumer := di.InitPostConsumer(db, media, publisher, names)
	commentConsumer := di.InitCommentConsumer(db)

	runner := queue.NewRunner(js, names)
	consume := func(q string, h queue.HandlerFunc) {
		if err := runner.Consume(q, h); err != nil {
			slog.Error("failed to start consumer", "queue", q, "error", err)
			os.Exit(1)
		}
	}
	consume(names.PostCreate, postConsumer.HandlePostCreate)
	consume(names.PostDelete, postConsumer.HandlePostDelete)
	consume(names.Like, postConsumer.HandleLikeAdjust)
	consume(names.CommentCreate, commentConsumer.HandleCommentCreate)
	consume(names.CommentDelete, commentConsumer.HandleCommentDelete)
	defer runner.Drain()

	// HTTP surface.
	router := api.NewRouter(
		di.InitPostHandler(db, media, publisher, names),
		di.InitCommentHandler(db, media, publisher, names),
		di.InitOktaHandler(db, cfg.Okta.EventSecret),
	)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		slog.Info("connected service running", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down connected service...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("connected service stopped")
}
