package listing

import "errors"

var (
	ErrEmptyName          = errors.New("listing name is required")
	ErrEmptyLocation      = errors.New("listing location is required")
	ErrInvalidPrice       = errors.New("nightly price must be positive")
	ErrInvalidRating      = errors.New("rating must be between 0 and 5")
	ErrInvalidReviewCount = errors.New("review count cannot be negative")
)
