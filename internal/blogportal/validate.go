package blogportal

import "time"

// DateLayout is the calendar-day key format used by post creation dates and
// newspaper entries.
const DateLayout = "2006-01-02"

type CreateParams struct {
	Title   string
	Slug    string
	Content string
	TagIDs  []int
	Date    string
}

type UpdateParams struct {
	Slug    string
	Title   string
	Content string
	TagIDs  []int
}

type PaperParams struct {
	Date    string
	Title   string
	Content string
}

// Validate checks fields in declaration order and returns the first failure,
// so the caller gets a single message per attempt.
func (p CreateParams) Validate() error {
	if p.Title == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if p.Slug == "" {
		return &ValidationError{Field: "slug", Message: "Slug is required"}
	}
	if p.Content == "" {
		return &ValidationError{Field: "content", Message: "Content is required"}
	}
	if len(p.TagIDs) == 0 {
		return &ValidationError{Field: "tags", Message: "At least one tag is required"}
	}
	if p.Date == "" {
		return &ValidationError{Field: "date", Message: "Date is required"}
	}
	if _, err := time.Parse(DateLayout, p.Date); err != nil {
		return &ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"}
	}
	return nil
}

func (p UpdateParams) Validate() error {
	if p.Slug == "" {
		return &ValidationError{Field: "slug", Message: "Slug is required"}
	}
	if p.Title == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if p.Content == "" {
		return &ValidationError{Field: "content", Message: "Content is required"}
	}
	if len(p.TagIDs) == 0 {
		return &ValidationError{Field: "tags", Message: "At least one tag is required"}
	}
	return nil
}

func (p PaperParams) Validate() error {
	if p.Date == "" {
		return &ValidationError{Field: "date", Message: "Date is required"}
	}
	if _, err := time.Parse(DateLayout, p.Date); err != nil {
		return &ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"}
	}
	if p.Title == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if p.Content == "" {
		return &ValidationError{Field: "content", Message: "Content is required"}
	}
	return nil
}
