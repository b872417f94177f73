package community

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cuttyapp/cutty/internal/db"
	"github.com/cuttyapp/cutty/internal/feed"
	"github.com/cuttyapp/cutty/internal/models"
	"github.com/cuttyapp/cutty/pkg/config"
)

type fakePostStore struct {
	mu     sync.Mutex
	posts  []models.Post
	nextID int64
	err    error
}

func (f *fakePostStore) List(ctx context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Post, len(f.posts))
	copy(out, f.posts)
	return out, nil
}

func (f *fakePostStore) Create(ctx context.Context, post *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now().UTC()
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostStore) IncrementCheers(ctx context.Context, id int64) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i].Cheers++
			post := f.posts[i]
			return &post, nil
		}
	}
	return nil, db.ErrNotFound
}

type fakeCommentStore struct {
	comments []models.Comment
	nextID   int64
	err      error
}

func (f *fakeCommentStore) ListAll(ctx context.Context) ([]models.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.comments, nil
}

func (f *fakeCommentStore) ListByPost(ctx context.Context, postID int64, limit int) ([]models.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Comment
	for i := len(f.comments) - 1; i >= 0; i-- {
		if f.comments[i].PostID == postID {
			out = append(out, f.comments[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	comment.ID = f.nextID
	comment.CreatedAt = time.Now().UTC()
	f.comments = append(f.comments, *comment)
	return nil
}

type fakeMaintenance struct {
	resets int
	purged int64
}

func (f *fakeMaintenance) ResetDemo(ctx context.Context) (int, error) {
	f.resets++
	return 2, nil
}

func (f *fakeMaintenance) PurgeUnwanted(ctx context.Context) (int64, error) {
	return f.purged, nil
}

func testConfig() *config.CommunityConfig {
	return &config.CommunityConfig{
		PinnedAuthor:     "You",
		PinnedStage:      "Growing",
		FeedCommentLimit: 5,
		FeedCacheTTL:     time.Second,
	}
}

func newTestAPI(posts *fakePostStore, comments *fakeCommentStore) (*API, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	api := NewAPI(posts, comments, &fakeMaintenance{}, nil, testConfig())

	engine := gin.New()
	engine.GET("/community/posts", api.ListPosts)
	engine.POST("/community/posts", api.CreatePost)
	engine.POST("/community/posts/:id/cheer", api.CheerPost)
	engine.GET("/community/posts/:id/comments", api.ListComments)
	engine.POST("/community/posts/:id/comments", api.CreateComment)
	return api, engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestListPostsRankedWithComments(t *testing.T) {
	posts := &fakePostStore{}
	comments := &fakeCommentStore{}
	_, engine := newTestAPI(posts, comments)

	// Post 1 (oldest) is the pinned sentinel; posts 2 and 3 are newer.
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	posts.posts = []models.Post{
		{ID: 1, UserID: "You", Stage: "Growing", Caption: "pinned", CreatedAt: base},
		{ID: 2, UserID: "maya", Caption: "older", CreatedAt: base.Add(time.Hour)},
		{ID: 3, UserID: "leo", Caption: "newer", CreatedAt: base.Add(2 * time.Hour)},
	}
	posts.nextID = 3
	comments.comments = []models.Comment{
		{ID: 1, PostID: 3, UserID: "ava", Text: "first"},
		{ID: 2, PostID: 3, UserID: "kim", Text: "second"},
	}
	comments.nextID = 2

	w := doJSON(t, engine, http.MethodGet, "/community/posts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var views []feed.PostView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	wantOrder := []string{"1", "3", "2"}
	if len(views) != 3 {
		t.Fatalf("got %d posts, want 3", len(views))
	}
	for i, id := range wantOrder {
		if views[i].ID != id {
			t.Errorf("feed[%d].ID = %s, want %s", i, views[i].ID, id)
		}
	}

	// Comments attach to post 3 only, newest first.
	if len(views[1].Comments) != 2 || views[1].Comments[0].Text != "second" {
		t.Errorf("post 3 comments = %+v", views[1].Comments)
	}
	if len(views[0].Comments) != 0 || len(views[2].Comments) != 0 {
		t.Error("comments leaked onto the wrong posts")
	}
}

func TestListPostsStoreFailure(t *testing.T) {
	posts := &fakePostStore{err: errors.New("connection refused")}
	_, engine := newTestAPI(posts, &fakeCommentStore{})

	w := doJSON(t, engine, http.MethodGet, "/community/posts", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestCreatePost(t *testing.T) {
	posts := &fakePostStore{}
	_, engine := newTestAPI(posts, &fakeCommentStore{})

	w := doJSON(t, engine, http.MethodPost, "/community/posts", map[string]interface{}{
		"name":     "Maya",
		"caption":  "first sprout",
		"hashtags": []string{"#FirstSprout"},
		"stage":    "Seedling",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
		OK bool   `json:"ok"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.OK || resp.ID != "1" {
		t.Errorf("resp = %+v", resp)
	}
	if len(posts.posts) != 1 || posts.posts[0].Cheers != 0 {
		t.Errorf("stored post = %+v", posts.posts)
	}
}

func TestCreatePostBlankNameBecomesGuest(t *testing.T) {
	posts := &fakePostStore{}
	_, engine := newTestAPI(posts, &fakeCommentStore{})

	w := doJSON(t, engine, http.MethodPost, "/community/posts", map[string]interface{}{
		"name":    "   ",
		"caption": "hello",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if posts.posts[0].UserID != "guest" {
		t.Errorf("author = %q, want guest", posts.posts[0].UserID)
	}
}

func TestCreatePostValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing caption", body: map[string]interface{}{"name": "Maya"}},
		{name: "missing name", body: map[string]interface{}{"caption": "hello"}},
		{name: "empty body", body: map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := &fakePostStore{}
			_, engine := newTestAPI(posts, &fakeCommentStore{})

			w := doJSON(t, engine, http.MethodPost, "/community/posts", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if len(posts.posts) != 0 {
				t.Error("invalid payload must not reach the store")
			}
		})
	}
}

func TestCheerPostSequential(t *testing.T) {
	posts := &fakePostStore{}
	_, engine := newTestAPI(posts, &fakeCommentStore{})
	posts.posts = []models.Post{{ID: 1, UserID: "maya", Cheers: 5}}
	posts.nextID = 1

	want := []int64{6, 7, 8}
	for _, expected := range want {
		w := doJSON(t, engine, http.MethodPost, "/community/posts/1/cheer", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var resp struct {
			OK     bool   `json:"ok"`
			Cheers int64  `json:"cheers"`
			ID     string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if !resp.OK || resp.Cheers != expected || resp.ID != "1" {
			t.Errorf("resp = %+v, want cheers %d", resp, expected)
		}
	}
}

func TestCheerPostConcurrent(t *testing.T) {
	posts := &fakePostStore{}
	_, engine := newTestAPI(posts, &fakeCommentStore{})
	posts.posts = []models.Post{{ID: 1, UserID: "maya", Cheers: 0}}
	posts.nextID = 1

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/community/posts/1/cheer", nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
		}()
	}
	wg.Wait()

	if posts.posts[0].Cheers != n {
		t.Errorf("cheers = %d after %d concurrent increments, want %d", posts.posts[0].Cheers, n, n)
	}
}

func TestCheerPostNotFound(t *testing.T) {
	posts := &fakePostStore{}
	_, engine := newTestAPI(posts, &fakeCommentStore{})

	tests := []string{"/community/posts/99/cheer", "/community/posts/not-an-id/cheer"}
	for _, path := range tests {
		w := doJSON(t, engine, http.MethodPost, path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, w.Code)
		}
	}
	if len(posts.posts) != 0 {
		t.Error("cheer on a missing post must not create a record")
	}
}
