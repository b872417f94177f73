// Package community serves the community feed: posts, cheers, and comments.
package community

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cuttyapp/cutty/internal/cache"
	"github.com/cuttyapp/cutty/internal/db"
	"github.com/cuttyapp/cutty/internal/feed"
	"github.com/cuttyapp/cutty/internal/models"
	"github.com/cuttyapp/cutty/pkg/config"
	"github.com/cuttyapp/cutty/pkg/logging"
)

// PostStore is the post access the community API needs
type PostStore interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	IncrementCheers(ctx context.Context, id int64) (*models.Post, error)
}

// CommentStore is the comment access the community API needs
type CommentStore interface {
	ListAll(ctx context.Context) ([]models.Comment, error)
	ListByPost(ctx context.Context, postID int64, limit int) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
}

// Maintenance is the demo maintenance the community API exposes
type Maintenance interface {
	ResetDemo(ctx context.Context) (int, error)
	PurgeUnwanted(ctx context.Context) (int64, error)
}

// API serves the community endpoints
type API struct {
	posts       PostStore
	comments    CommentStore
	maintenance Maintenance
	cache       *cache.Cache
	opts        feed.Options
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewAPI creates a new community API
func NewAPI(posts PostStore, comments CommentStore, maintenance Maintenance, redisCache *cache.Cache, cfg *config.CommunityConfig) *API {
	return &API{
		posts:       posts,
		comments:    comments,
		maintenance: maintenance,
		cache:       redisCache,
		opts: feed.Options{
			PinnedAuthor: cfg.PinnedAuthor,
			PinnedStage:  cfg.PinnedStage,
			CommentLimit: cfg.FeedCommentLimit,
		},
		cacheTTL: cfg.FeedCacheTTL,
		logger:   logging.WithComponent("community-api"),
	}
}

// respondStoreError reports a store failure as a 500 without retrying
func (a *API) respondStoreError(c *gin.Context, err error) {
	a.logger.Error("Store access failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database not available"})
}

// respondNotFound reports a missing record
func respondNotFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": what + " not found"})
}

// isNotFound reports whether an error is the store's missing-record sentinel
func isNotFound(err error) bool {
	return errors.Is(err, db.ErrNotFound)
}
