package rpc

import "github.com/velkovsky/blog-portal/internal/blogportal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewTag(t blogportal.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
	}
}

func NewTags(list []blogportal.Tag) []Tag {
	return Map(list, NewTag)
}

func NewPost(p blogportal.Post) Post {
	return Post{
		PostID:    p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Tags:      NewTags(p.Tags),
	}
}

func NewPosts(list []blogportal.Post) []Post {
	return Map(list, NewPost)
}

func NewNewspaper(n blogportal.Newspaper) Newspaper {
	return Newspaper{
		Date:      n.Date,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
