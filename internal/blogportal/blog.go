package blogportal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/velkovsky/blog-portal/internal/db"
	"github.com/velkovsky/blog-portal/internal/revalidate"
)

// Paths handed to the revalidation signal after mutations.
const ListingPath = "/"

func EntryPath(slug string) string {
	return "/entry/" + slug
}

type Manager struct {
	db        *db.Repository
	signal    revalidate.Signal
	sanitizer *bluemonday.Policy
	log       *slog.Logger
}

func NewBlogManager(repo *db.Repository, signal revalidate.Signal, log *slog.Logger) *Manager {
	return &Manager{
		db:        repo,
		signal:    signal,
		sanitizer: bluemonday.UGCPolicy(),
		log:       log,
	}
}

// Posts returns all posts with their tags, most recent first. Posts without
// tags are kept with an empty tag set. An optional tag filter is applied
// after the fold.
func (m *Manager) Posts(ctx context.Context, filter *PostFilter) ([]Post, error) {
	rows, err := m.db.PostsWithTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get posts with tags: %w", err)
	}

	posts := NewPostsFromRows(rows)

	if filter == nil || filter.TagID == nil {
		return posts, nil
	}

	filtered := make([]Post, 0, len(posts))
	for i := range posts {
		for _, tag := range posts[i].Tags {
			if tag.ID == *filter.TagID {
				filtered = append(filtered, posts[i])
				break
			}
		}
	}

	return filtered, nil
}

// PostBySlug retrieves a single post with its tags. Returns (nil, nil) when
// no post matches the slug exactly.
func (m *Manager) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	dbPost, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get post by slug: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	post := NewPost(dbPost)

	tags, err := m.db.TagsByPostID(ctx, dbPost.ID)
	if err != nil {
		return nil, fmt.Errorf("db get tags for post: %w", err)
	}
	post.Tags = NewTags(tags)

	return &post, nil
}

func (m *Manager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

// CreatePost validates input, writes the post and its tag associations in one
// transaction and emits the listing revalidation signal. Returns the new slug.
func (m *Manager) CreatePost(ctx context.Context, params CreateParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	createdAt, _ := time.Parse(DateLayout, params.Date)

	post := &db.Post{
		Slug:      params.Slug,
		Title:     params.Title,
		Content:   m.sanitizer.Sanitize(params.Content),
		CreatedAt: createdAt,
	}

	err := m.db.CreatePost(ctx, post, params.TagIDs)
	switch {
	case db.IsUniqueViolation(err):
		return "", ErrSlugExists
	case db.IsForeignKeyViolation(err):
		return "", ErrTagNotFound
	case err != nil:
		return "", fmt.Errorf("db create post: %w", err)
	}

	m.revalidate(ctx, ListingPath)

	return post.Slug, nil
}

// UpdatePost validates input, then in one transaction updates the post
// matched by slug and replaces its tag associations wholesale. Emits
// revalidation for the entry page and the listing.
func (m *Manager) UpdatePost(ctx context.Context, params UpdateParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	post := &db.Post{
		Slug:    params.Slug,
		Title:   params.Title,
		Content: m.sanitizer.Sanitize(params.Content),
	}

	err := m.db.UpdatePost(ctx, post, params.TagIDs)
	switch {
	case errors.Is(err, db.ErrPostNotFound):
		return ErrPostNotFound
	case db.IsForeignKeyViolation(err):
		return ErrTagNotFound
	case err != nil:
		return fmt.Errorf("db update post: %w", err)
	}

	m.revalidate(ctx, EntryPath(params.Slug), ListingPath)

	return nil
}

// DeletePost removes the post and its tag associations in one transaction and
// emits the listing revalidation signal.
func (m *Manager) DeletePost(ctx context.Context, slug string) error {
	err := m.db.DeletePost(ctx, slug)
	switch {
	case errors.Is(err, db.ErrPostNotFound):
		return ErrPostNotFound
	case err != nil:
		return fmt.Errorf("db delete post: %w", err)
	}

	m.revalidate(ctx, ListingPath)

	return nil
}

// RecordView atomically increments the view counter for a slug and returns
// the new count. First view of a slug creates the row with count = 1.
func (m *Manager) RecordView(ctx context.Context, slug string) (int, error) {
	count, err := m.db.RecordView(ctx, slug)
	if err != nil {
		return 0, fmt.Errorf("db record view: %w", err)
	}

	return count, nil
}

func (m *Manager) ViewCount(ctx context.Context, slug string) (int, error) {
	count, err := m.db.ViewCount(ctx, slug)
	if err != nil {
		return 0, fmt.Errorf("db get view count: %w", err)
	}

	return count, nil
}

// PaperByDate retrieves the newspaper entry for a calendar day. Returns
// (nil, nil) when the day has no entry; storage failures propagate as errors
// so callers can tell the two apart.
func (m *Manager) PaperByDate(ctx context.Context, date string) (*Newspaper, error) {
	dbPaper, err := m.db.PaperByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("db get newspaper by date: %w", err)
	} else if dbPaper == nil {
		return nil, nil
	}

	paper := NewPaper(dbPaper)
	return &paper, nil
}

// SavePaper creates or overwrites the newspaper entry for a date in a single
// atomic statement and emits the listing revalidation signal.
func (m *Manager) SavePaper(ctx context.Context, params PaperParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	paper := &db.Newspaper{
		Date:    params.Date,
		Title:   params.Title,
		Content: m.sanitizer.Sanitize(params.Content),
	}

	if err := m.db.UpsertPaper(ctx, paper); err != nil {
		return fmt.Errorf("db upsert newspaper: %w", err)
	}

	m.revalidate(ctx, ListingPath)

	return nil
}

// revalidate emits the signal for each path. Failures are logged and
// swallowed: the mutation already committed and must not be rolled back by a
// stale-cache notification.
func (m *Manager) revalidate(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if err := m.signal.Revalidate(ctx, path); err != nil {
			m.log.Error("revalidate failed", "path", path, "error", err)
		}
	}
}
