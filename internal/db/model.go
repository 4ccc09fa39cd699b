// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Newspaper struct {
		Date, Title, Content, CreatedAt, UpdatedAt string
	}
	Post struct {
		ID, Slug, Title, Content, CreatedAt, UpdatedAt string
	}
	PostTag struct {
		PostID, TagID string

		Post, Tag string
	}
	Tag struct {
		ID, Name string
	}
	View struct {
		Slug, Count string
	}
}{
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Newspaper: struct {
		Date, Title, Content, CreatedAt, UpdatedAt string
	}{
		Date:      "date",
		Title:     "title",
		Content:   "content",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
	Post: struct {
		ID, Slug, Title, Content, CreatedAt, UpdatedAt string
	}{
		ID:        "postId",
		Slug:      "slug",
		Title:     "title",
		Content:   "content",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
	PostTag: struct {
		PostID, TagID string

		Post, Tag string
	}{
		PostID: "postId",
		TagID:  "tagId",

		Post: "Post",
		Tag:  "Tag",
	},
	Tag: struct {
		ID, Name string
	}{
		ID:   "tagId",
		Name: "name",
	},
	View: struct {
		Slug, Count string
	}{
		Slug:  "slug",
		Count: "count",
	},
}

var Tables = struct {
	GooseDbVersion struct {
		Name, Alias string
	}
	Newspaper struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	PostTag struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	View struct {
		Name, Alias string
	}
}{
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Newspaper: struct {
		Name, Alias string
	}{
		Name:  "newspapers",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	PostTag: struct {
		Name, Alias string
	}{
		Name:  "post_tags",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	View: struct {
		Name, Alias string
	}{
		Name:  "views",
		Alias: "t",
	},
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Newspaper struct {
	tableName struct{} `pg:"newspapers,alias:t,discard_unknown_columns"`

	Date      string     `pg:"date,pk"`
	Title     string     `pg:"title,use_zero"`
	Content   string     `pg:"content,use_zero"`
	CreatedAt time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt *time.Time `pg:"updatedAt"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID        int        `pg:"postId,pk"`
	Slug      string     `pg:"slug,use_zero"`
	Title     string     `pg:"title,use_zero"`
	Content   string     `pg:"content,use_zero"`
	CreatedAt time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt *time.Time `pg:"updatedAt"`
}

type PostTag struct {
	tableName struct{} `pg:"post_tags,alias:t,discard_unknown_columns"`

	PostID int `pg:"postId,pk,use_zero"`
	TagID  int `pg:"tagId,pk,use_zero"`

	Post *Post `pg:"fk:postId,rel:has-one"`
	Tag  *Tag  `pg:"fk:tagId,rel:has-one"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int    `pg:"tagId,pk"`
	Name string `pg:"name,use_zero"`
}

type View struct {
	tableName struct{} `pg:"views,alias:t,discard_unknown_columns"`

	Slug  string `pg:"slug,pk"`
	Count int    `pg:"count,use_zero"`
}
