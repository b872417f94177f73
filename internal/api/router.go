package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cuttyapp/cutty/internal/api/catalog"
	"github.com/cuttyapp/cutty/internal/api/community"
	"github.com/cuttyapp/cutty/internal/api/outreach"
	"github.com/cuttyapp/cutty/internal/cache"
	"github.com/cuttyapp/cutty/internal/db"
	"github.com/cuttyapp/cutty/internal/seed"
	"github.com/cuttyapp/cutty/pkg/config"
	"github.com/cuttyapp/cutty/pkg/logging"
)

// Router sets up API routes
type Router struct {
	db     *db.DB
	cache  *cache.Cache
	cfg    *config.Config
	seeder *seed.Seeder
	logger *zap.Logger

	communityAPI *community.API
	catalogAPI   *catalog.API
	outreachAPI  *outreach.API
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, cfg *config.Config) *Router {
	repo := db.NewRepository(database.DB)

	posts := db.NewPostRepository(repo)
	comments := db.NewCommentRepository(repo)
	products := db.NewProductRepository(repo)
	events := db.NewEventRepository(repo)
	newsletter := db.NewNewsletterRepository(repo)
	contact := db.NewContactRepository(repo)

	seeder := seed.New(posts, comments, products, events)

	return &Router{
		db:           database,
		cache:        redisCache,
		cfg:          cfg,
		seeder:       seeder,
		logger:       logging.GetLogger().With(zap.String("component", "api-router")),
		communityAPI: community.NewAPI(posts, comments, seeder, redisCache, &cfg.Community),
		catalogAPI:   catalog.NewAPI(products, events),
		outreachAPI:  outreach.NewAPI(newsletter, contact),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.Use(corsMiddleware())

	// Root and health check endpoints
	engine.GET("/", r.rootHandler)
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)
	engine.GET("/test", r.diagnosticsHandler)

	// Demo data
	engine.GET("/seed", r.seedHandler)

	// Catalog
	engine.GET("/products", r.catalogAPI.ListProducts)
	engine.GET("/events", r.catalogAPI.ListEvents)

	// Community
	engine.GET("/community/posts", r.communityAPI.ListPosts)
	engine.POST("/community/posts", r.communityAPI.CreatePost)
	engine.POST("/community/posts/:id/cheer", r.communityAPI.CheerPost)
	engine.GET("/community/posts/:id/comments", r.communityAPI.ListComments)
	engine.POST("/community/posts/:id/comments", r.communityAPI.CreateComment)
	engine.POST("/community/reset-demo", r.communityAPI.ResetDemo)
	engine.POST("/community/purge-unwanted", r.communityAPI.PurgeUnwanted)

	// Outreach
	engine.POST("/newsletter", r.outreachAPI.Newsletter)
	engine.POST("/contact", r.outreachAPI.Contact)
}

// corsMiddleware allows browser clients from any origin. The demo frontend
// is served from a different host.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// rootHandler handles the service banner
func (r *Router) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cutty API running",
		"status":  "ok",
	})
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "cutty-api",
	})
}

// diagnosticsHandler reports database connectivity and visible tables
func (r *Router) diagnosticsHandler(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"tables":            []string{},
	}

	ctx := c.Request.Context()
	if err := r.db.Health(ctx); err != nil {
		response["database"] = "error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "available"
	response["connection_status"] = "connected"

	if tables, err := r.db.Tables(ctx); err == nil {
		if len(tables) > 10 {
			tables = tables[:10]
		}
		response["tables"] = tables
		response["database"] = "connected and working"
	}

	c.JSON(http.StatusOK, response)
}

// seedHandler inserts demo documents into empty collections
func (r *Router) seedHandler(c *gin.Context) {
	created, err := r.seeder.SeedIfEmpty(c.Request.Context())
	if err != nil {
		r.logger.Error("Demo seed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database not available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seeded": created})
}
