package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sjlutterbie/blog-api/internal/repositories"
	"github.com/sjlutterbie/blog-api/internal/services"
	"github.com/sjlutterbie/blog-api/pkg/config"
	"github.com/sjlutterbie/blog-api/pkg/database"
	"github.com/sjlutterbie/blog-api/pkg/logger"
)

// App owns the database client and the HTTP listener. Both handles are
// explicit fields with start/stop lifecycles so tests can run the whole
// service repeatedly against an ephemeral database.
type App struct {
	cfg      *config.Config
	client   *mongo.Client
	listener net.Listener
	server   *http.Server
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Start connects to the database, wires the service graph and begins
// serving HTTP. If the listener cannot bind, the database connection is
// closed again before the error is returned; a failed Start leaves no
// resources held.
func (a *App) Start(ctx context.Context) error {
	client, err := database.Connect(ctx, a.cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	a.client = client

	db := client.Database(a.cfg.Database.Name)
	authorRepo := repositories.NewAuthorRepository(db)
	postRepo := repositories.NewPostRepository(db)
	authorService := services.NewAuthorService(authorRepo, postRepo)
	postService := services.NewPostService(postRepo, authorRepo)

	router := NewRouter(authorService, postService)

	listener, err := net.Listen("tcp", ":"+a.cfg.Server.Port)
	if err != nil {
		_ = database.Disconnect(context.Background(), client)
		a.client = nil
		return fmt.Errorf("bind listener: %w", err)
	}
	a.listener = listener

	a.server = &http.Server{
		Handler:      router,
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		if err := a.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Errorf("Server stopped: %v", err)
		}
	}()

	logger.Infof("Server listening on %s", listener.Addr())
	return nil
}

// Stop disconnects the database, then shuts the HTTP server down, in that
// order. Both steps run even if the first fails; the first error wins.
func (a *App) Stop(ctx context.Context) error {
	var firstErr error

	if a.client != nil {
		if err := database.Disconnect(ctx, a.client); err != nil {
			firstErr = err
		}
		a.client = nil
	}

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
		a.server = nil
		a.listener = nil
	}

	return firstErr
}

// Addr returns the bound listen address, or "" before Start. With PORT=0
// this is how tests discover the assigned port.
func (a *App) Addr() string {
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}
