package rest

import "time"

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
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

type PostsRequest struct {
	TagID *int `query:"tagId"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Tags    []int  `json:"tags"`
	Date    string `json:"date"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    []int  `json:"tags"`
}

type SavePaperRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// RevalidateRequest is bound from query params by urlstruct, matching the
// collaborator-owned endpoint shape: ?secret=...&path=...
type RevalidateRequest struct {
	Secret string
	Path   string
}
