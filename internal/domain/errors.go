package domain

import "errors"

// Sentinel errors shared by repositories and services. Controllers map them to HTTP status codes.
var (
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrDuplicateSlug  = errors.New("slug already in use")
	ErrAlreadyUpvoted = errors.New("project already upvoted")
	// ErrEmptySlug is returned when a name or title has no characters usable in a slug.
	ErrEmptySlug = errors.New("name must contain at least one letter or digit")
)
