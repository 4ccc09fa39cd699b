package rpc

import (
	"time"
)

type Tag struct {
	//tagId tag identifier
	TagID int `json:"tagId"`
	//name unique tag name
	Name string `json:"name"`
}

type Post struct {
	PostID    int        `json:"postId"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Tags      []Tag      `json:"tags"`
}

type Newspaper struct {
	Date      string     `json:"date"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type ViewCount struct {
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type PostsFilter struct {
	//tagId optional tag filter
	TagID *int `json:"tagId,omitempty"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Tags    []int  `json:"tags"`
	Date    string `json:"date"`
}

type UpdatePostRequest struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    []int  `json:"tags"`
}

type SavePaperRequest struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreatePostResponse struct {
	Slug string `json:"slug"`
}
