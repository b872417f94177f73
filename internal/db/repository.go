package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cuttyapp/cutty/internal/models"
)

// ErrNotFound is returned when an identifier-addressed operation targets a
// record that does not exist.
var ErrNotFound = errors.New("record not found")

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts, newest first
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// IncrementCheers atomically increments a post's cheer counter by one and
// returns the updated post. The increment and fetch are a single UPDATE with
// RETURNING, so concurrent callers never lose updates.
func (r *PostRepository) IncrementCheers(ctx context.Context, id int64) (*models.Post, error) {
	post := models.Post{ID: id}
	res := r.db.WithContext(ctx).
		Model(&post).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("cheers", gorm.Expr("cheers + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &post, nil
}

// Count returns the number of posts
func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteAll removes all posts. Maintenance use only.
func (r *PostRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Post{}).Error
}

// DeleteByCaptionPatterns removes posts whose caption matches any of the
// given case-insensitive LIKE patterns. Maintenance use only. Returns the
// number of deleted rows.
func (r *PostRepository) DeleteByCaptionPatterns(ctx context.Context, patterns []string) (int64, error) {
	if len(patterns) == 0 {
		return 0, nil
	}
	query := r.db.WithContext(ctx).Where("caption ILIKE ?", patterns[0])
	for _, p := range patterns[1:] {
		query = query.Or("caption ILIKE ?", p)
	}
	res := query.Delete(&models.Post{})
	return res.RowsAffected, res.Error
}

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByPost retrieves comments for a post, newest first, capped at limit.
// A limit of 0 means no cap.
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64, limit int) ([]models.Comment, error) {
	query := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var comments []models.Comment
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAll retrieves all comments, newest first
func (r *CommentRepository) ListAll(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteAll removes all comments. Maintenance use only.
func (r *CommentRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Comment{}).Error
}

// ProductRepository provides product-related database operations
type ProductRepository struct {
	*Repository
}

// NewProductRepository creates a new product repository
func NewProductRepository(repo *Repository) *ProductRepository {
	return &ProductRepository{Repository: repo}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// List retrieves all products
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the number of products
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// EventRepository provides event-related database operations
type EventRepository struct {
	*Repository
}

// NewEventRepository creates a new event repository
func NewEventRepository(repo *Repository) *EventRepository {
	return &EventRepository{Repository: repo}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// List retrieves all events
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Count returns the number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NewsletterRepository provides newsletter signup database operations
type NewsletterRepository struct {
	*Repository
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(repo *Repository) *NewsletterRepository {
	return &NewsletterRepository{Repository: repo}
}

// Create creates a new newsletter signup
func (r *NewsletterRepository) Create(ctx context.Context, signup *models.NewsletterSignup) error {
	return r.db.WithContext(ctx).Create(signup).Error
}

// ContactRepository provides contact message database operations
type ContactRepository struct {
	*Repository
}

// NewContactRepository creates a new contact repository
func NewContactRepository(repo *Repository) *ContactRepository {
	return &ContactRepository{Repository: repo}
}

// Create creates a new contact message
func (r *ContactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}
