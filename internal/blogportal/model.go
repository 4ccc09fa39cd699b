package blogportal

import (
	"github.com/velkovsky/blog-portal/internal/db"
)

type Tag struct {
	db.Tag
}

type Post struct {
	db.Post
	Tags []Tag
}

type Newspaper struct {
	db.Newspaper
}

// PostFilter narrows the post listing. A nil filter returns everything.
type PostFilter struct {
	TagID *int
}
