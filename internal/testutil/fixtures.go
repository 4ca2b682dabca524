package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/kimohq/coursecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCourse creates a test course with the given name and chapters.
// The course-level ratings field is set to the sum of the chapter ratings,
// keeping the aggregate invariant true from the start.
func (f *Fixtures) CreateCourse(ctx context.Context, name string, chapters ...models.Chapter) models.Course {
	f.t.Helper()
	return f.CreateCourseWithDetails(ctx, name, time.Now().Unix(), "Test course description", []string{"programming"}, chapters)
}

// CreateCourseWithDetails creates a test course with full control over the
// metadata fields.
func (f *Fixtures) CreateCourseWithDetails(ctx context.Context, name string, date int64, description string, domains []string, chapters []models.Chapter) models.Course {
	f.t.Helper()

	if chapters == nil {
		chapters = []models.Chapter{}
	}
	course := models.Course{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Date:        date,
		Description: description,
		Domain:      domains,
		Chapters:    chapters,
	}
	course.Ratings = course.ChapterRatingSum()

	_, err := f.db.Collection("courses").InsertOne(ctx, course)
	if err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}

	return course
}
