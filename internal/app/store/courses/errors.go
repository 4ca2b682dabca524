// internal/app/store/courses/errors.go
package coursestore

import (
	"errors"
	"fmt"
)

// CourseNotFoundError reports that no course matches the given identifier.
// The ID is kept exactly as the caller supplied it; a syntactically invalid
// ObjectID is reported the same way as a missing document.
type CourseNotFoundError struct {
	ID string
}

func (e *CourseNotFoundError) Error() string {
	return fmt.Sprintf("Course %s not found", e.ID)
}

// ChapterNotFoundError reports that no course anywhere in the catalog
// contains a chapter with the given name.
type ChapterNotFoundError struct {
	Name string
}

func (e *ChapterNotFoundError) Error() string {
	return fmt.Sprintf("Chapter %s not found", e.Name)
}

// ChapterNotInCourseError reports that the chapter exists somewhere in the
// catalog, but not inside the course that was addressed.
type ChapterNotInCourseError struct {
	Chapter  string
	CourseID string
}

func (e *ChapterNotInCourseError) Error() string {
	return fmt.Sprintf("Chapter %s in Course %s not found", e.Chapter, e.CourseID)
}

// IsNotFound reports whether err is one of the catalog not-found kinds.
// Driver-level failures (connectivity, timeouts) are never not-found and
// must surface as server errors, so they return false here.
func IsNotFound(err error) bool {
	var courseErr *CourseNotFoundError
	var chapterErr *ChapterNotFoundError
	var scopeErr *ChapterNotInCourseError
	return errors.As(err, &courseErr) || errors.As(err, &chapterErr) || errors.As(err, &scopeErr)
}
