// Package feed assembles the community feed: posts ordered by the ranking
// policy, each carrying its most recent comments.
package feed

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cuttyapp/cutty/internal/models"
)

// DefaultCommentLimit is the number of recent comments attached per post
// when no limit is configured.
const DefaultCommentLimit = 5

// Options configures feed assembly
type Options struct {
	// PinnedAuthor and PinnedStage identify pinned posts; both must match,
	// case-insensitively, for a post to rank ahead of the rest.
	PinnedAuthor string
	PinnedStage  string
	CommentLimit int
}

// CommentView is the reduced comment shape attached to feed posts
type CommentView struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// PostView is a single feed entry
type PostView struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Caption   string        `json:"caption"`
	ImageURL  string        `json:"image_url,omitempty"`
	Hashtags  []string      `json:"hashtags"`
	Stage     string        `json:"stage,omitempty"`
	Cheers    int64         `json:"cheers"`
	CreatedAt time.Time     `json:"created_at"`
	Comments  []CommentView `json:"comments"`
}

// Pinned reports whether a post satisfies the pinned condition
func (o Options) Pinned(post *models.Post) bool {
	return strings.EqualFold(post.UserID, o.PinnedAuthor) &&
		strings.EqualFold(post.Stage, o.PinnedStage)
}

// Build produces the ordered feed for a snapshot of posts and comments.
// Posts are ordered pinned-first, then newest-first; each post carries up to
// opts.CommentLimit of its most recent comments, newest first. Build does
// not mutate its inputs.
func Build(posts []models.Post, comments []models.Comment, opts Options) []PostView {
	if opts.CommentLimit <= 0 {
		opts.CommentLimit = DefaultCommentLimit
	}

	ranked := Rank(posts, opts)
	byPost := groupComments(comments)

	views := make([]PostView, 0, len(ranked))
	for i := range ranked {
		post := &ranked[i]
		views = append(views, PostView{
			ID:        FormatID(post.ID),
			UserID:    post.UserID,
			Caption:   post.Caption,
			ImageURL:  post.ImageURL,
			Hashtags:  hashtagsOrEmpty(post.Hashtags),
			Stage:     post.Stage,
			Cheers:    post.Cheers,
			CreatedAt: post.CreatedAt,
			Comments:  recentComments(byPost[post.ID], opts.CommentLimit),
		})
	}
	return views
}

// Rank returns the posts ordered by the ranking policy: pinned posts first,
// then creation time descending. Equal-time posts fall back to id
// descending so the order is stable across runs on the same snapshot.
func Rank(posts []models.Post, opts Options) []models.Post {
	ranked := make([]models.Post, len(posts))
	copy(ranked, posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := opts.Pinned(&ranked[i]), opts.Pinned(&ranked[j])
		if pi != pj {
			return pi
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
		}
		return ranked[i].ID > ranked[j].ID
	})
	return ranked
}

// groupComments indexes comments by post, preserving each group's order
func groupComments(comments []models.Comment) map[int64][]models.Comment {
	byPost := make(map[int64][]models.Comment)
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	return byPost
}

// recentComments reduces a post's comments to the limit most recent,
// newest first
func recentComments(comments []models.Comment, limit int) []CommentView {
	sorted := make([]models.Comment, len(comments))
	copy(sorted, comments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	views := make([]CommentView, 0, len(sorted))
	for _, c := range sorted {
		views = append(views, CommentView{
			ID:     FormatID(c.ID),
			UserID: c.UserID,
			Text:   c.Text,
		})
	}
	return views
}

func hashtagsOrEmpty(tags models.StringList) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// FormatID renders an internal identifier as the opaque string form used on
// the wire.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID converts an opaque wire identifier back to the internal form. The
// boolean is false when the string cannot name any stored record.
func ParseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
