package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/clickpod/clickpod/internal/library"
	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/server"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

// Serve runs the local search proxy until the context is cancelled.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	r.config = r.loadConfig(cmd)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	lib := r.openLibrary(db)

	router := server.NewBasicRouter()
	router.Use(
		server.Logging(r.logger),
		server.CORS(),
		server.RateLimit(rate.Limit(r.config.Server.RateLimit), r.config.Server.RateBurst),
	)
	router.Handler(server.NewSearchHandler(searchAdapter{lib}, r.newSuggester(), r.logger))

	httpServer := server.New(r.config.Server.Addr(), router)

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Info("search proxy listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return httpServer.Shutdown(context.Background())
	}
}

// searchAdapter narrows the library service to the handler's resolver
// dependency, so proxy requests go through the cache too.
type searchAdapter struct {
	lib *library.Library
}

func (a searchAdapter) Resolve(ctx context.Context, query string) []models.Track {
	return a.lib.Search(ctx, query)
}
