package scholarfolio

import "errors"

// Domain errors. All editor-facing failures are non-fatal; callers
// surface them as notices and leave the live document untouched.
var (
	// ErrLastPage is returned when deleting the only remaining page.
	ErrLastPage = errors.New("cannot delete the last page")

	// ErrPageNotFound is returned when a page id does not resolve.
	ErrPageNotFound = errors.New("page not found")

	// ErrMalformedSnapshot is returned when an imported snapshot is not
	// valid JSON or is missing its root fields.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
