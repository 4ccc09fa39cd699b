package blogportal

import (
	"sort"

	"github.com/velkovsky/blog-portal/internal/db"
)

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewTags(list []db.Tag) []Tag {
	tags := make([]Tag, len(list))
	for i := range list {
		tags[i] = NewTag(&list[i])
	}
	return tags
}

func NewPost(p *db.Post) Post {
	return Post{
		Post: *p,
		Tags: []Tag{},
	}
}

func NewPaper(n *db.Newspaper) Newspaper {
	return Newspaper{Newspaper: *n}
}

// NewPostsFromRows folds the flat left-join row stream into one record per
// distinct post id, accumulating tags in the order they were encountered.
// Untagged posts arrive as a single row with a null tag and keep an empty tag
// set. The join may interleave rows of different posts, so ordering is
// computed here, after the fold: reverse chronological by createdAt, post id
// as tie-break.
func NewPostsFromRows(rows []db.PostTagRow) []Post {
	index := make(map[int]int, len(rows))
	posts := make([]Post, 0, len(rows))

	for _, row := range rows {
		pos, ok := index[row.PostID]
		if !ok {
			pos = len(posts)
			index[row.PostID] = pos
			posts = append(posts, Post{
				Post: db.Post{
					ID:        row.PostID,
					Slug:      row.Slug,
					Title:     row.Title,
					Content:   row.Content,
					CreatedAt: row.CreatedAt,
					UpdatedAt: row.UpdatedAt,
				},
				Tags: []Tag{},
			})
		}

		if row.TagID != nil {
			tag := db.Tag{ID: *row.TagID}
			if row.TagName != nil {
				tag.Name = *row.TagName
			}
			posts[pos].Tags = append(posts[pos].Tags, Tag{Tag: tag})
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})

	return posts
}
