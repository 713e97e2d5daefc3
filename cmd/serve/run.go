package serve

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hyperion-dev/hyperion-site/config"
	"github.com/hyperion-dev/hyperion-site/render"
	"github.com/hyperion-dev/hyperion-site/res"
	"github.com/hyperion-dev/hyperion-site/site"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Run serves the site on the configured address until ctx is done.
func Run(ctx context.Context, logger *zap.Logger) error {
	content, err := site.LoadContent()
	if err != nil {
		return err
	}

	assets, err := newAssetMap(config.Logo())
	if err != nil {
		return err
	}

	engine, err := NewEngine(content, assets, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    config.ServerAddress(),
		Handler: engine,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving site", zap.String("address", server.Addr), zap.Int("posts", content.Store.Len()))
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// NewEngine wires the routes of the site.
func NewEngine(content *site.Content, assets *assetMap, logger *zap.Logger) (*gin.Engine, error) {
	static, err := fs.Sub(res.Static, res.StaticDirectory)
	if err != nil {
		return nil, fmt.Errorf("could not open static assets: %w", err)
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(logger), gin.Recovery())

	api := newServeAPI(content, logger)
	r.GET("/", api.ServeShell)
	r.GET("/view", api.ServeView)
	r.POST("/contact", api.ServeContact)
	r.POST("/beta", api.ServeBeta)

	group := r.Group("/api")
	group.GET("/route", api.ServeRoute)
	group.GET("/posts", api.ServePosts)
	group.GET("/posts/:slug", api.ServePost)
	group.GET("/tags", api.ServeTags)

	r.GET("/static/*filepath", serveStatic(assets, http.FS(static)))

	return r, nil
}

type serveAPI struct {
	content *site.Content
	tagSet  *render.TagSet
	logger  *zap.Logger
}

func newServeAPI(content *site.Content, logger *zap.Logger) *serveAPI {
	tagSet := render.NewTagSet()
	for _, post := range content.Store.Posts() {
		for _, tag := range post.Tags {
			tagSet.HexColor(tag)
		}
	}

	return &serveAPI{
		content: content,
		tagSet:  tagSet,
		logger:  logger,
	}
}
