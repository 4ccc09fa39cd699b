package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/velkovsky/blog-portal/internal/blogportal"
)

//go:generate zenrpc

// BlogService provides RPC methods for the publishing core.
type BlogService struct {
	zenrpc.Service
	manager *blogportal.Manager
}

func NewBlogService(manager *blogportal.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// toError maps the domain error taxonomy onto JSON-RPC error codes.
func toError(err error) *zenrpc.Error {
	switch {
	case blogportal.IsValidation(err):
		return zenrpc.NewStringError(400, err.Error())
	case errors.Is(err, blogportal.ErrTagNotFound):
		return zenrpc.NewStringError(400, err.Error())
	case errors.Is(err, blogportal.ErrPostNotFound):
		return zenrpc.NewStringError(404, err.Error())
	case errors.Is(err, blogportal.ErrSlugExists):
		return zenrpc.NewStringError(409, err.Error())
	default:
		return zenrpc.NewStringError(500, "an unknown error occurred")
	}
}

// List retrieves all posts with their tags, most recent first.
//
//zenrpc:filter optional tag filter
//zenrpc:return list of posts
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context, filter PostsFilter) ([]Post, error) {
	posts, err := s.manager.Posts(ctx, &blogportal.PostFilter{TagID: filter.TagID})
	if err != nil {
		return nil, toError(err)
	}

	return NewPosts(posts), nil
}

// BySlug retrieves a single post by its exact slug.
//
//zenrpc:slug post slug
//zenrpc:return post with tags
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) BySlug(ctx context.Context, slug string) (*Post, error) {
	post, err := s.manager.PostBySlug(ctx, slug)
	if err != nil {
		return nil, toError(err)
	}
	if post == nil {
		return nil, zenrpc.NewStringError(404, "blog entry not found")
	}

	out := NewPost(*post)
	return &out, nil
}

// Create validates and creates a post with its tag associations in one
// transaction, then revalidates the listing page.
//
//zenrpc:req new post fields
//zenrpc:return slug of the created post
//zenrpc:400 validation failure
//zenrpc:409 slug already exists
//zenrpc:500 internal server error
func (s *BlogService) Create(ctx context.Context, req CreatePostRequest) (*CreatePostResponse, error) {
	slug, err := s.manager.CreatePost(ctx, blogportal.CreateParams{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		TagIDs:  req.Tags,
		Date:    req.Date,
	})
	if err != nil {
		return nil, toError(err)
	}

	return &CreatePostResponse{Slug: slug}, nil
}

// Update updates a post matched by slug and replaces its tag set wholesale,
// in one transaction.
//
//zenrpc:req changed fields
//zenrpc:400 validation failure
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) Update(ctx context.Context, req UpdatePostRequest) (bool, error) {
	err := s.manager.UpdatePost(ctx, blogportal.UpdateParams{
		Slug:    req.Slug,
		Title:   req.Title,
		Content: req.Content,
		TagIDs:  req.Tags,
	})
	if err != nil {
		return false, toError(err)
	}

	return true, nil
}

// Delete removes a post and all of its tag associations in one transaction.
//
//zenrpc:slug post slug
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) Delete(ctx context.Context, slug string) (bool, error) {
	if err := s.manager.DeletePost(ctx, slug); err != nil {
		return false, toError(err)
	}

	return true, nil
}

// RecordView atomically increments the view counter for a slug and returns
// the new count.
//
//zenrpc:slug post slug
//zenrpc:return new view count
//zenrpc:500 internal server error
func (s *BlogService) RecordView(ctx context.Context, slug string) (*ViewCount, error) {
	count, err := s.manager.RecordView(ctx, slug)
	if err != nil {
		return nil, toError(err)
	}

	return &ViewCount{Slug: slug, Count: count}, nil
}

// Tags retrieves all tags ordered by name.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) ([]Tag, error) {
	tags, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, toError(err)
	}

	return NewTags(tags), nil
}

// PaperByDate retrieves the newspaper entry for a calendar day.
//
//zenrpc:date calendar day, YYYY-MM-DD
//zenrpc:404 newspaper not found
//zenrpc:500 internal server error
func (s *BlogService) PaperByDate(ctx context.Context, date string) (*Newspaper, error) {
	paper, err := s.manager.PaperByDate(ctx, date)
	if err != nil {
		return nil, toError(err)
	}
	if paper == nil {
		return nil, zenrpc.NewStringError(404, "newspaper not found")
	}

	out := NewNewspaper(*paper)
	return &out, nil
}

// SavePaper creates or overwrites the newspaper entry for a date in one
// atomic statement.
//
//zenrpc:req entry payload
//zenrpc:400 validation failure
//zenrpc:500 internal server error
func (s *BlogService) SavePaper(ctx context.Context, req SavePaperRequest) (bool, error) {
	err := s.manager.SavePaper(ctx, blogportal.PaperParams{
		Date:    req.Date,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return false, toError(err)
	}

	return true, nil
}
