package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-pg/pg/v10"

	"github.com/velkovsky/blog-portal/internal/blogportal"
	"github.com/velkovsky/blog-portal/internal/db"
	"github.com/velkovsky/blog-portal/internal/revalidate"
)

const testSecret = "test-secret"

var (
	testDB       *pg.DB
	testHandler  *BlogHandler
	testRecorder *revalidate.Recorder
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(db.TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.RunMigrations(ctx, db.MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.EnsureTablesExist(ctx, testDB, []string{"posts", "tags", "post_tags", "views", "newspapers"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	testRepo := db.New(testDB)
	testRecorder = &revalidate.Recorder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testManager := blogportal.NewBlogManager(testRepo, testRecorder, logger)
	testHandler = NewBlogHandler(testManager, testRecorder, testSecret, logger)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func doRequest(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := testHandler.RegisterRoutes()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBlogHandler_Posts_Integration(t *testing.T) {
	t.Run("SuccessWithoutFilters", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/posts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var posts []Post
		if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if len(posts) < 3 {
			t.Fatalf("expected at least 3 posts, got %d", len(posts))
		}

		for _, post := range posts {
			if post.PostID == 0 {
				t.Errorf("invalid PostID")
			}
			if post.Slug == "" {
				t.Errorf("empty Slug")
			}
			if post.Tags == nil {
				t.Errorf("post %s serialized tags as null, want empty array", post.Slug)
			}
		}

		for i := 0; i < len(posts)-1; i++ {
			if posts[i].CreatedAt.Before(posts[i+1].CreatedAt) {
				t.Fatalf("posts not sorted by createdAt desc at %d", i)
			}
		}
	})

	t.Run("SuccessWithTagIdFilter", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/posts?tagId=1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var posts []Post
		if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		for _, post := range posts {
			hasTag := false
			for _, tag := range post.Tags {
				if tag.TagID == 1 {
					hasTag = true
					break
				}
			}
			if !hasTag {
				t.Errorf("post %s does not carry tag 1", post.Slug)
			}
		}
	})
}

func TestBlogHandler_PostBySlug_Integration(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/posts/first-keys", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var post Post
		if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if post.Slug != "first-keys" {
			t.Errorf("expected slug first-keys, got %q", post.Slug)
		}
		if post.Content == "" {
			t.Errorf("empty Content")
		}
		if len(post.Tags) != 2 {
			t.Errorf("expected 2 tags, got %d", len(post.Tags))
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/posts/no-such-slug", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var response map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if response["error"] != "blog entry not found" {
			t.Errorf("expected 'blog entry not found', got %q", response["error"])
		}
	})
}

func TestBlogHandler_CreateUpdateDelete_Integration(t *testing.T) {
	t.Run("FullLifecycle", func(t *testing.T) {
		body := `{"title":"Handler Made","slug":"handler-made","content":"<p>from the api</p>","tags":[1,2],"date":"2024-01-15"}`
		rec := doRequest(t, http.MethodPost, "/api/v1/posts", body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var created map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if created["message"] != "Blog created successfully" {
			t.Errorf("unexpected message %q", created["message"])
		}
		if created["slug"] != "handler-made" {
			t.Errorf("expected slug handler-made, got %q", created["slug"])
		}

		update := `{"title":"Handler Remade","content":"<p>edited</p>","tags":[3]}`
		rec = doRequest(t, http.MethodPut, "/api/v1/posts/handler-made", update)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200 on update, got %d, body: %s", rec.Code, rec.Body.String())
		}

		rec = doRequest(t, http.MethodGet, "/api/v1/posts/handler-made", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var post Post
		if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if post.Title != "Handler Remade" {
			t.Errorf("title not updated: %q", post.Title)
		}
		if len(post.Tags) != 1 || post.Tags[0].TagID != 3 {
			t.Errorf("expected tag set {3}, got %+v", post.Tags)
		}

		rec = doRequest(t, http.MethodDelete, "/api/v1/posts/handler-made", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200 on delete, got %d, body: %s", rec.Code, rec.Body.String())
		}

		rec = doRequest(t, http.MethodGet, "/api/v1/posts/handler-made", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404 after delete, got %d", rec.Code)
		}
	})

	t.Run("ValidationFailureReturns400", func(t *testing.T) {
		body := `{"slug":"half-baked"}`
		rec := doRequest(t, http.MethodPost, "/api/v1/posts", body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var response map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if response["error"] != "Title is required" {
			t.Errorf("expected 'Title is required', got %q", response["error"])
		}
	})

	t.Run("DuplicateSlugReturns409", func(t *testing.T) {
		body := `{"title":"Impostor","slug":"first-keys","content":"<p>no</p>","tags":[1],"date":"2024-01-15"}`
		rec := doRequest(t, http.MethodPost, "/api/v1/posts", body)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected status 409, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var response map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if response["error"] != "that slug already exists" {
			t.Errorf("expected 'that slug already exists', got %q", response["error"])
		}
	})

	t.Run("UpdateUnknownSlugReturns404", func(t *testing.T) {
		body := `{"title":"Nobody","content":"<p>void</p>","tags":[1]}`
		rec := doRequest(t, http.MethodPut, "/api/v1/posts/no-such-slug", body)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("DeleteUnknownSlugReturns404", func(t *testing.T) {
		rec := doRequest(t, http.MethodDelete, "/api/v1/posts/no-such-slug", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("UnknownTagReturns400", func(t *testing.T) {
		body := `{"title":"Ghost Tags","slug":"ghost-tags","content":"<p>no</p>","tags":[99999],"date":"2024-01-15"}`
		rec := doRequest(t, http.MethodPost, "/api/v1/posts", body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d, body: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestBlogHandler_Views_Integration(t *testing.T) {
	t.Run("RecordViewIncrements", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/posts/learning-go/views", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var first ViewCount
		if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		rec = doRequest(t, http.MethodPost, "/api/v1/posts/learning-go/views", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var second ViewCount
		if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if second.Count != first.Count+1 {
			t.Fatalf("expected count %d, got %d", first.Count+1, second.Count)
		}
		if second.Slug != "learning-go" {
			t.Errorf("expected slug learning-go, got %q", second.Slug)
		}
	})
}

func TestBlogHandler_Tags_Integration(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/tags", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var tags []Tag
		if err := json.Unmarshal(rec.Body.Bytes(), &tags); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if len(tags) != 5 {
			t.Fatalf("expected 5 tags, got %d", len(tags))
		}
		for _, tag := range tags {
			if tag.TagID == 0 {
				t.Errorf("invalid TagID")
			}
			if tag.Name == "" {
				t.Errorf("empty Name")
			}
		}
	})
}

func TestBlogHandler_Papers_Integration(t *testing.T) {
	t.Run("SaveThenGet", func(t *testing.T) {
		body := `{"title":"Morning Edition","content":"<p>rain expected</p>"}`
		rec := doRequest(t, http.MethodPut, "/api/v1/papers/2024-01-14", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		rec = doRequest(t, http.MethodGet, "/api/v1/papers/2024-01-14", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var paper Newspaper
		if err := json.Unmarshal(rec.Body.Bytes(), &paper); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if paper.Date != "2024-01-14" {
			t.Errorf("expected date 2024-01-14, got %q", paper.Date)
		}
		if paper.Title != "Morning Edition" {
			t.Errorf("expected title Morning Edition, got %q", paper.Title)
		}
	})

	t.Run("GetAbsentDateReturns404", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/papers/1999-12-31", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("InvalidDateReturns400", func(t *testing.T) {
		body := `{"title":"Broken","content":"<p>no</p>"}`
		rec := doRequest(t, http.MethodPut, "/api/v1/papers/not-a-date", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d, body: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestBlogHandler_Revalidate_Integration(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		testRecorder.Reset()

		rec := doRequest(t, http.MethodPost, "/api/v1/revalidate?secret="+testSecret+"&path=/entry/first-keys", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var response map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if response["revalidated"] != true {
			t.Errorf("expected revalidated=true, got %v", response["revalidated"])
		}
		if _, ok := response["now"].(float64); !ok {
			t.Errorf("expected numeric now, got %T", response["now"])
		}

		paths := testRecorder.Paths()
		if len(paths) != 1 || paths[0] != "/entry/first-keys" {
			t.Fatalf("expected signal for /entry/first-keys, got %v", paths)
		}
	})

	t.Run("WrongSecretReturns401", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/revalidate?secret=wrong&path=/", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var response map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if response["error"] != "invalid token" {
			t.Errorf("expected 'invalid token', got %q", response["error"])
		}
	})

	t.Run("MissingPathReturns400", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/revalidate?secret="+testSecret, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var response map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if response["error"] != "missing path param" {
			t.Errorf("expected 'missing path param', got %q", response["error"])
		}
	})
}

func TestBlogHandler_Health(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
