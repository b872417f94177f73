package community

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResetDemo handles POST /community/reset-demo: wipes posts and comments and
// reinstalls the demo posts.
func (a *API) ResetDemo(c *gin.Context) {
	installed, err := a.maintenance.ResetDemo(c.Request.Context())
	if err != nil {
		a.respondStoreError(c, err)
		return
	}

	a.invalidateFeed()

	c.JSON(http.StatusOK, gin.H{"ok": true, "reset": installed})
}

// PurgeUnwanted handles POST /community/purge-unwanted: removes legacy demo
// posts by caption pattern.
func (a *API) PurgeUnwanted(c *gin.Context) {
	deleted, err := a.maintenance.PurgeUnwanted(c.Request.Context())
	if err != nil {
		a.respondStoreError(c, err)
		return
	}

	a.invalidateFeed()

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
}
