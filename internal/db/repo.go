package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// PostBySlug retrieves a post by its exact slug, without case or whitespace
// normalization. Returns (nil, nil) when no post matches; a non-nil error
// always means a storage failure, never absence.
func (r *Repository) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

// PostTagRow is one row of the flat post/tag join stream. TagID and TagName
// are nil for posts without tags, which the LEFT JOIN keeps in the result.
type PostTagRow struct {
	PostID    int        `pg:"postId"`
	Slug      string     `pg:"slug"`
	Title     string     `pg:"title"`
	Content   string     `pg:"content"`
	CreatedAt time.Time  `pg:"createdAt"`
	UpdatedAt *time.Time `pg:"updatedAt"`
	TagID     *int       `pg:"tagId"`
	TagName   *string    `pg:"tagName"`
}

// PostsWithTags returns the flat row stream of all posts left-joined with
// their tags: one row per post-tag pair, or a single row with a null tag for
// untagged posts. The caller folds the stream into nested records; no
// grouping or ordering is guaranteed here.
func (r *Repository) PostsWithTags(ctx context.Context) ([]PostTagRow, error) {
	var rows []PostTagRow
	_, err := r.db.QueryContext(ctx, &rows, `
		SELECT p."postId" AS "postId", p."slug", p."title", p."content",
		       p."createdAt" AS "createdAt", p."updatedAt" AS "updatedAt",
		       tag."tagId" AS "tagId", tag."name" AS "tagName"
		FROM "posts" p
		LEFT JOIN "post_tags" pt ON pt."postId" = p."postId"
		LEFT JOIN "tags" tag ON tag."tagId" = pt."tagId"
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts with tags: %w", err)
	}

	return rows, nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

// TagsByPostID returns the tags associated with one post, in tag id order.
// Used by the entry page and the edit form.
func (r *Repository) TagsByPostID(ctx context.Context, postID int) ([]Tag, error) {
	var tags []Tag
	_, err := r.db.QueryContext(ctx, &tags, `
		SELECT tag."tagId" AS "tagId", tag."name"
		FROM "post_tags" pt
		JOIN "tags" tag ON tag."tagId" = pt."tagId"
		WHERE pt."postId" = ?
		ORDER BY pt."tagId"
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by post id: %w", err)
	}

	return tags, nil
}

// PaperByDate retrieves the newspaper entry for an exact date key.
// Returns (nil, nil) when the date has no entry.
func (r *Repository) PaperByDate(ctx context.Context, date string) (*Newspaper, error) {
	paper := &Newspaper{}
	err := r.db.ModelContext(ctx, paper).
		Where(`"t"."date" = ?`, date).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get newspaper by date: %w", err)
	}

	return paper, nil
}

// ViewCount returns the recorded view count for a slug, zero when no row
// exists yet.
func (r *Repository) ViewCount(ctx context.Context, slug string) (int, error) {
	view := &View{}
	err := r.db.ModelContext(ctx, view).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("failed to get view count: %w", err)
	}

	return view.Count, nil
}
