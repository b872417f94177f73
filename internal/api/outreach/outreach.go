// Package outreach captures newsletter signups and contact messages.
package outreach

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cuttyapp/cutty/internal/feed"
	"github.com/cuttyapp/cutty/internal/models"
	"github.com/cuttyapp/cutty/pkg/logging"
)

// NewsletterStore is the newsletter access the outreach API needs
type NewsletterStore interface {
	Create(ctx context.Context, signup *models.NewsletterSignup) error
}

// ContactStore is the contact access the outreach API needs
type ContactStore interface {
	Create(ctx context.Context, message *models.ContactMessage) error
}

// API serves the outreach endpoints
type API struct {
	newsletter NewsletterStore
	contact    ContactStore
	logger     *zap.Logger
}

// NewAPI creates a new outreach API
func NewAPI(newsletter NewsletterStore, contact ContactStore) *API {
	return &API{
		newsletter: newsletter,
		contact:    contact,
		logger:     logging.WithComponent("outreach-api"),
	}
}

// NewsletterRequest is the newsletter signup payload
type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// ContactRequest is the contact form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Newsletter handles POST /newsletter
func (a *API) Newsletter(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	signup := models.NewsletterSignup{Email: req.Email, Name: req.Name}
	if err := a.newsletter.Create(c.Request.Context(), &signup); err != nil {
		a.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": feed.FormatID(signup.ID), "ok": true})
}

// Contact handles POST /contact
func (a *API) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	message := models.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := a.contact.Create(c.Request.Context(), &message); err != nil {
		a.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": feed.FormatID(message.ID), "ok": true})
}

func (a *API) respondStoreError(c *gin.Context, err error) {
	a.logger.Error("Store access failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database not available"})
}
