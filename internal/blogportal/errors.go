package blogportal

import "errors"

var (
	// ErrPostNotFound is returned by update and delete when the slug matches
	// no post.
	ErrPostNotFound = errors.New("blog entry not found")
	// ErrSlugExists is returned by create when the slug is already taken.
	ErrSlugExists = errors.New("that slug already exists")
	// ErrTagNotFound is returned when a supplied tag id references no tag.
	ErrTagNotFound = errors.New("one or more tags do not exist")
)

// ValidationError reports the first failing input field, caught before any
// storage access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is an input validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
