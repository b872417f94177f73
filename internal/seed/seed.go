// Package seed installs and maintains the demo dataset.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cuttyapp/cutty/internal/models"
	"github.com/cuttyapp/cutty/pkg/logging"
)

// PostStore is the post access the seeder needs
type PostStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, post *models.Post) error
	DeleteAll(ctx context.Context) error
	DeleteByCaptionPatterns(ctx context.Context, patterns []string) (int64, error)
}

// CommentStore is the comment access the seeder needs
type CommentStore interface {
	DeleteAll(ctx context.Context) error
}

// ProductStore is the product access the seeder needs
type ProductStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *models.Product) error
}

// EventStore is the event access the seeder needs
type EventStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, event *models.Event) error
}

// Seeder seeds demo data into empty collections and provides the demo
// maintenance operations.
type Seeder struct {
	posts    PostStore
	comments CommentStore
	products ProductStore
	events   EventStore
	logger   *zap.Logger
}

// New creates a new seeder
func New(posts PostStore, comments CommentStore, products ProductStore, events EventStore) *Seeder {
	return &Seeder{
		posts:    posts,
		comments: comments,
		products: products,
		events:   events,
		logger:   logging.WithComponent("seed"),
	}
}

// DemoProducts returns the demo catalog
func DemoProducts() []models.Product {
	return []models.Product{
		{
			Title:       "The Cutty Box",
			Description: "DIY Dahlia kit with soil, pot, fertilizer, and mini greenhouse.",
			Price:       12.95,
			ImageURL:    "https://cdn.discordapp.com/attachments/692077531272052768/1440123736064917534/image0.jpg",
			InStock:     true,
		},
		{
			Title:       "Refill Kit",
			Description: "Soil + nutrients refill to keep growing.",
			Price:       12.0,
			ImageURL:    "https://images.unsplash.com/photo-1589998059171-988d887df646?q=80&w=1200&auto=format&fit=crop",
			InStock:     true,
		},
	}
}

// DemoEvents returns the demo events
func DemoEvents() []models.Event {
	return []models.Event{
		{
			Title:       "Spring Start",
			Season:      "Spring",
			Description: "Kickoff your growth journey",
			Hashtag:     "#SpringStart",
		},
		{
			Title:       "Summer Bloom",
			Season:      "Summer",
			Description: "Share blooms and smiles",
			Hashtag:     "#SummerBloom",
		},
	}
}

// DemoPosts returns the demo community posts
func DemoPosts() []models.Post {
	return []models.Post{
		{
			UserID:   "Maya",
			Caption:  "Day 7 – first sprout! Feeling calmer already.",
			ImageURL: "https://images.unsplash.com/photo-1495640452828-3df6795cf69b?q=80&w=1600&auto=format&fit=crop",
			Stage:    "Seedling",
			Hashtags: models.StringList{"#SpringStart", "#FirstSprout"},
			Cheers:   12,
		},
		{
			UserID:   "You",
			Caption:  "Today’s progress with my Cutty plant — Stage: Growing. Two new leaves unfurled and the stem looks stronger. Gave it a gentle morning mist and rotated it toward the light. Felt a small spark of joy seeing that tiny change. Anyone else seeing this stage now?",
			ImageURL: "https://images.unsplash.com/photo-1446071103084-c257b5f70672?q=80&w=1600&auto=format&fit=crop",
			Stage:    "Growing",
			Hashtags: models.StringList{"#MindfulMoment", "#CuttyProgress"},
			Cheers:   18,
		},
	}
}

// legacyCaptionPatterns matches demo posts from earlier revisions of the
// demo dataset that should no longer appear.
var legacyCaptionPatterns = []string{
	"Repotted%",
	"%Repotted today%",
	"%soil smell%",
}

// SeedIfEmpty inserts demo data into each collection that is empty and
// reports how many records were created per collection.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (map[string]int, error) {
	created := map[string]int{}

	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting products: %w", err)
	}
	if productCount == 0 {
		for _, p := range DemoProducts() {
			product := p
			if err := s.products.Create(ctx, &product); err != nil {
				return nil, fmt.Errorf("seeding products: %w", err)
			}
		}
		created["product"] = len(DemoProducts())
	}

	eventCount, err := s.events.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	if eventCount == 0 {
		for _, e := range DemoEvents() {
			event := e
			if err := s.events.Create(ctx, &event); err != nil {
				return nil, fmt.Errorf("seeding events: %w", err)
			}
		}
		created["event"] = len(DemoEvents())
	}

	postCount, err := s.posts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting posts: %w", err)
	}
	if postCount == 0 {
		for _, p := range DemoPosts() {
			post := p
			if err := s.posts.Create(ctx, &post); err != nil {
				return nil, fmt.Errorf("seeding posts: %w", err)
			}
		}
		created["post"] = len(DemoPosts())
	}

	s.logger.Info("Demo seed completed", zap.Any("created", created))
	return created, nil
}

// ResetDemo wipes all posts and comments and reinstalls the demo posts.
// Returns the number of posts installed.
func (s *Seeder) ResetDemo(ctx context.Context) (int, error) {
	if err := s.comments.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("deleting comments: %w", err)
	}
	if err := s.posts.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("deleting posts: %w", err)
	}

	demo := DemoPosts()
	for _, p := range demo {
		post := p
		if err := s.posts.Create(ctx, &post); err != nil {
			return 0, fmt.Errorf("reinstalling demo posts: %w", err)
		}
	}

	s.logger.Info("Demo posts reset", zap.Int("installed", len(demo)))
	return len(demo), nil
}

// PurgeUnwanted deletes legacy demo posts by caption pattern and returns the
// number deleted.
func (s *Seeder) PurgeUnwanted(ctx context.Context) (int64, error) {
	deleted, err := s.posts.DeleteByCaptionPatterns(ctx, legacyCaptionPatterns)
	if err != nil {
		return 0, fmt.Errorf("purging legacy posts: %w", err)
	}
	if deleted > 0 {
		s.logger.Info("Purged legacy demo posts", zap.Int64("deleted", deleted))
	}
	return deleted, nil
}
