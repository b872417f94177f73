package community

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cuttyapp/cutty/internal/cache"
	"github.com/cuttyapp/cutty/internal/feed"
	"github.com/cuttyapp/cutty/internal/models"
	"github.com/cuttyapp/cutty/pkg/telemetry"
)

// CreatePostRequest is the post submission payload
type CreatePostRequest struct {
	Name     string   `json:"name" binding:"required"`
	Caption  string   `json:"caption" binding:"required"`
	ImageURL string   `json:"image_url"`
	Hashtags []string `json:"hashtags"`
	Stage    string   `json:"stage"`
}

// ListPosts handles GET /community/posts: the ranked feed with attached
// recent comments.
func (a *API) ListPosts(c *gin.Context) {
	cacheKey := cache.HashKey("community_posts",
		a.opts.PinnedAuthor, a.opts.PinnedStage)

	if a.cache != nil {
		var cached []feed.PostView
		if err := a.cache.GetJSON(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	ctx, span := telemetry.Tracer().Start(c.Request.Context(), "community.feed")
	defer span.End()

	posts, err := a.posts.List(ctx)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	comments, err := a.comments.ListAll(ctx)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}

	views := feed.Build(posts, comments, a.opts)

	if a.cache != nil {
		if err := a.cache.SetJSON(cacheKey, views, a.cacheTTL); err != nil {
			a.logger.Warn("Failed to cache feed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, views)
}

// CreatePost handles POST /community/posts
func (a *API) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	author := strings.TrimSpace(req.Name)
	if author == "" {
		author = "guest"
	}

	post := models.Post{
		UserID:   author,
		Caption:  req.Caption,
		ImageURL: req.ImageURL,
		Hashtags: models.StringList(req.Hashtags),
		Stage:    req.Stage,
		Cheers:   0,
	}
	if post.Hashtags == nil {
		post.Hashtags = models.StringList{}
	}

	if err := a.posts.Create(c.Request.Context(), &post); err != nil {
		a.respondStoreError(c, err)
		return
	}

	a.invalidateFeed()

	c.JSON(http.StatusOK, gin.H{"id": feed.FormatID(post.ID), "ok": true})
}

// CheerPost handles POST /community/posts/:id/cheer
func (a *API) CheerPost(c *gin.Context) {
	id, ok := feed.ParseID(c.Param("id"))
	if !ok {
		respondNotFound(c, "Post")
		return
	}

	post, err := a.posts.IncrementCheers(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "Post")
			return
		}
		a.respondStoreError(c, err)
		return
	}

	a.invalidateFeed()

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"cheers": post.Cheers,
		"id":     feed.FormatID(post.ID),
	})
}

// invalidateFeed drops the cached feed after a write
func (a *API) invalidateFeed() {
	if a.cache == nil {
		return
	}
	cacheKey := cache.HashKey("community_posts",
		a.opts.PinnedAuthor, a.opts.PinnedStage)
	if err := a.cache.Delete(cacheKey); err != nil {
		a.logger.Warn("Failed to invalidate feed cache", zap.Error(err))
	}
}
