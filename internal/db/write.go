package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

var ErrPostNotFound = errors.New("post not found")

// runInTransaction runs fn atomically. On the pool it opens a real
// transaction; when the repository itself wraps a *pg.Tx it uses a savepoint
// instead, because Tx.RunInTransaction would commit and close the outer
// transaction. A failed fn leaves the outer transaction usable.
func (r *Repository) runInTransaction(ctx context.Context, fn func(*pg.Tx) error) error {
	tx, ok := r.db.(*pg.Tx)
	if !ok {
		return r.db.RunInTransaction(ctx, fn)
	}

	if _, err := tx.ExecContext(ctx, "SAVEPOINT repo_write"); err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	if err := fn(tx); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT repo_write"); rbErr != nil {
			return fmt.Errorf("rollback to savepoint: %v: %w", rbErr, err)
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT repo_write"); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}

	return nil
}

// CreatePost inserts a post and one association row per tag id inside a
// single transaction. On any failure the whole transaction rolls back, so a
// post never persists without its tags. post.ID is filled on success.
func (r *Repository) CreatePost(ctx context.Context, post *Post, tagIDs []int) error {
	return r.runInTransaction(ctx, func(tx *pg.Tx) error {
		res, err := tx.ModelContext(ctx, post).Insert()
		if err != nil {
			return fmt.Errorf("insert post: %w", err)
		}
		if res.RowsAffected() == 0 {
			return errors.New("insert post: no row created")
		}

		links := make([]PostTag, len(tagIDs))
		for i, tagID := range tagIDs {
			links[i] = PostTag{PostID: post.ID, TagID: tagID}
		}

		if _, err := tx.ModelContext(ctx, &links).Insert(); err != nil {
			return fmt.Errorf("insert post tags: %w", err)
		}

		return nil
	})
}

// UpdatePost updates title, content and updatedAt of the post matched by
// post.Slug and replaces its tag associations wholesale. Returns
// ErrPostNotFound when the slug matches no row; nothing is written then.
func (r *Repository) UpdatePost(ctx context.Context, post *Post, tagIDs []int) error {
	return r.runInTransaction(ctx, func(tx *pg.Tx) error {
		now := time.Now()
		post.UpdatedAt = &now

		res, err := tx.ModelContext(ctx, post).
			Column(Columns.Post.Title, Columns.Post.Content, Columns.Post.UpdatedAt).
			Where(`"t"."slug" = ?`, post.Slug).
			Returning(`"postId"`).
			Update()
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		if res.RowsAffected() == 0 {
			return ErrPostNotFound
		}

		// full replace, not diff
		if _, err := tx.ModelContext(ctx, (*PostTag)(nil)).
			Where(`"t"."postId" = ?`, post.ID).
			Delete(); err != nil {
			return fmt.Errorf("delete post tags: %w", err)
		}

		links := make([]PostTag, len(tagIDs))
		for i, tagID := range tagIDs {
			links[i] = PostTag{PostID: post.ID, TagID: tagID}
		}

		if _, err := tx.ModelContext(ctx, &links).Insert(); err != nil {
			return fmt.Errorf("insert post tags: %w", err)
		}

		return nil
	})
}

// DeletePost removes the post matched by slug together with its association
// rows, children before parent so foreign-key checks hold at every step.
func (r *Repository) DeletePost(ctx context.Context, slug string) error {
	return r.runInTransaction(ctx, func(tx *pg.Tx) error {
		post := &Post{}
		err := tx.ModelContext(ctx, post).
			Where(`"t"."slug" = ?`, slug).
			Select()
		if errors.Is(err, pg.ErrNoRows) {
			return ErrPostNotFound
		} else if err != nil {
			return fmt.Errorf("select post: %w", err)
		}

		if _, err := tx.ModelContext(ctx, (*PostTag)(nil)).
			Where(`"t"."postId" = ?`, post.ID).
			Delete(); err != nil {
			return fmt.Errorf("delete post tags: %w", err)
		}

		if _, err := tx.ModelContext(ctx, (*Post)(nil)).
			Where(`"t"."postId" = ?`, post.ID).
			Delete(); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}

		return nil
	})
}

// RecordView increments the view counter for a slug, creating the row with
// count = 1 on first view. A single conditional statement, so concurrent
// increments never lose updates.
func (r *Repository) RecordView(ctx context.Context, slug string) (int, error) {
	view := &View{Slug: slug, Count: 1}
	_, err := r.db.ModelContext(ctx, view).
		OnConflict(`("slug") DO UPDATE`).
		Set(`"count" = "t"."count" + 1`).
		Returning(`"count"`).
		Insert()
	if err != nil {
		return 0, fmt.Errorf("record view: %w", err)
	}

	return view.Count, nil
}

// UpsertPaper creates or overwrites the newspaper entry for paper.Date in one
// atomic statement, so concurrent writers for the same date cannot race.
func (r *Repository) UpsertPaper(ctx context.Context, paper *Newspaper) error {
	if paper.CreatedAt.IsZero() {
		paper.CreatedAt = time.Now()
	}

	_, err := r.db.ModelContext(ctx, paper).
		OnConflict(`("date") DO UPDATE`).
		Set(`"title" = EXCLUDED."title", "content" = EXCLUDED."content", "updatedAt" = now()`).
		Insert()
	if err != nil {
		return fmt.Errorf("upsert newspaper: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err is a unique-constraint violation.
// The constraint is declared in the schema, so the SQLSTATE is authoritative
// and no error-message matching is needed.
func IsUniqueViolation(err error) bool {
	return pgErrCode(err) == "23505"
}

// IsForeignKeyViolation reports whether err is a foreign-key violation, e.g.
// an association referencing a tag id that does not exist.
func IsForeignKeyViolation(err error) bool {
	return pgErrCode(err) == "23503"
}

func pgErrCode(err error) string {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}
