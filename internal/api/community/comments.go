package community

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cuttyapp/cutty/internal/feed"
	"github.com/cuttyapp/cutty/internal/models"
)

// CreateCommentRequest is the comment submission payload
type CreateCommentRequest struct {
	Name string `json:"name" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// commentResponse is the full comment shape returned by the comment listing
type commentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ListComments handles GET /community/posts/:id/comments. A post id that
// names no record yields an empty list, matching the feed's lack of
// referential enforcement.
func (a *API) ListComments(c *gin.Context) {
	id, ok := feed.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusOK, []commentResponse{})
		return
	}

	comments, err := a.comments.ListByPost(c.Request.Context(), id, 0)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for _, item := range comments {
		out = append(out, commentResponse{
			ID:        feed.FormatID(item.ID),
			PostID:    feed.FormatID(item.PostID),
			UserID:    item.UserID,
			Text:      item.Text,
			CreatedAt: item.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, out)
}

// CreateComment handles POST /community/posts/:id/comments. The parent post
// is not required to exist.
func (a *API) CreateComment(c *gin.Context) {
	id, ok := feed.ParseID(c.Param("id"))
	if !ok {
		respondNotFound(c, "Post")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	author := strings.TrimSpace(req.Name)
	if author == "" {
		author = "guest"
	}

	comment := models.Comment{
		PostID: id,
		UserID: author,
		Text:   req.Text,
	}

	if err := a.comments.Create(c.Request.Context(), &comment); err != nil {
		a.respondStoreError(c, err)
		return
	}

	a.invalidateFeed()

	c.JSON(http.StatusOK, gin.H{"id": feed.FormatID(comment.ID), "ok": true})
}
