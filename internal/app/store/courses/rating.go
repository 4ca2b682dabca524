// internal/app/store/courses/rating.go
package coursestore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vote is the direction of a chapter rating submission.
type Vote int

const (
	VotePositive Vote = 1
	VoteNegative Vote = -1
)

// ParseVote maps the wire values "Positive" and "Negative" to a Vote.
func ParseVote(s string) (Vote, error) {
	switch s {
	case "Positive":
		return VotePositive, nil
	case "Negative":
		return VoteNegative, nil
	default:
		return 0, fmt.Errorf("rating must be Positive or Negative, got %q", s)
	}
}

// SubmitRating applies one vote to the named chapter of the given course and
// refreshes the course-level aggregate.
//
// The sequence is deliberately two separate writes: an atomic conditional
// increment of the chapter counter, then a recompute-and-set of the course
// aggregate from a fresh snapshot. Between the two writes the aggregate is
// stale relative to the chapters. There is no locking between concurrent
// submissions for the same course, so the aggregate set is last-writer-wins:
// two racing submissions can each persist an aggregate that misses the
// other's increment.
//
// Failure ladder, in order:
//   - no chapter anywhere has this name: ChapterNotFoundError, no mutation
//   - courseID is not a valid ObjectID: CourseNotFoundError, no mutation
//   - the increment matched nothing (chapter not in this course):
//     ChapterNotInCourseError
//   - the course vanished before the re-fetch: CourseNotFoundError (the
//     increment has already happened)
func (s *Store) SubmitRating(ctx context.Context, courseID, chapterName string, vote Vote) error {
	// Pre-check: the chapter must exist somewhere in the catalog. This is
	// not scoped to courseID; membership is verified by the conditional
	// increment below.
	if _, err := s.GetChapterByName(ctx, chapterName); err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return &CourseNotFoundError{ID: courseID}
	}

	modified, err := s.IncChapterRating(ctx, oid, chapterName, int(vote))
	if err != nil {
		return err
	}
	if modified == 0 {
		return &ChapterNotInCourseError{Chapter: chapterName, CourseID: courseID}
	}

	course, err := s.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	// Missing chapter rating fields decode as zero, so the sum treats them
	// as unrated. The set is unconditional; a course deleted at this exact
	// point leaves the vote recorded and is not reported.
	return s.SetAggregateRating(ctx, course.ID, course.ChapterRatingSum())
}
