// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"errors"
	"strings"

	"github.com/kimohq/coursecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the course collection.
const Collection = "courses"

// Store wraps the course collection with domain-shaped queries. It holds no
// state beyond the collection handle and is safe for concurrent use.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// GetByID returns the course with the given identifier. The id is the raw
// string from the request; a value that is not a valid ObjectID is reported
// the same way as an id no document carries.
func (s *Store) GetByID(ctx context.Context, id string) (models.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Course{}, &CourseNotFoundError{ID: id}
	}

	var course models.Course
	err = s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Course{}, &CourseNotFoundError{ID: id}
	}
	if err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// GetChapterByName returns the first chapter with the given name across the
// whole catalog, in store order. The search is not scoped to a course; if
// two courses share a chapter name, whichever document the store yields
// first wins.
func (s *Store) GetChapterByName(ctx context.Context, name string) (models.Chapter, error) {
	opts := options.FindOne().SetProjection(bson.M{"chapters.$": 1})

	var course models.Course
	err := s.c.FindOne(ctx, bson.M{"chapters.name": name}, opts).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Chapter{}, &ChapterNotFoundError{Name: name}
	}
	if err != nil {
		return models.Chapter{}, err
	}
	if len(course.Chapters) == 0 {
		return models.Chapter{}, &ChapterNotFoundError{Name: name}
	}
	return course.Chapters[0], nil
}

// IncChapterRating applies delta to the rating of the chapter named
// chapterName inside the course with the given id. The update is a single
// conditional write: when no document matches both the id and the chapter
// name, nothing is modified and the returned count is zero.
func (s *Store) IncChapterRating(ctx context.Context, id primitive.ObjectID, chapterName string, delta int) (int64, error) {
	filter := bson.M{
		"_id":           id,
		"chapters.name": chapterName,
	}
	update := bson.M{
		"$inc": bson.M{"chapters.$.ratings": delta},
	}

	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// SetAggregateRating persists total as the course-level ratings field. The
// write is unconditional and creates the field if absent; callers do not get
// a modified count back because a course vanishing at this exact point is an
// accepted gap, not an error.
func (s *Store) SetAggregateRating(ctx context.Context, id primitive.ObjectID, total int) error {
	update := bson.M{
		"$set": bson.M{"ratings": total},
	}
	opts := options.Update().SetUpsert(true)

	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update, opts)
	return err
}

// Insert stores a new course, assigning an ObjectID when none is set.
func (s *Store) Insert(ctx context.Context, course models.Course) (models.Course, error) {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	if strings.TrimSpace(course.Name) == "" {
		return models.Course{}, mongo.CommandError{Message: "name is required"}
	}

	_, err := s.c.InsertOne(ctx, course)
	if err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// InsertMany stores a batch of courses and returns the number inserted.
// Used by the bulk importer.
func (s *Store) InsertMany(ctx context.Context, courses []models.Course) (int, error) {
	if len(courses) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(courses))
	for i := range courses {
		if courses[i].ID.IsZero() {
			courses[i].ID = primitive.NewObjectID()
		}
		docs = append(docs, courses[i])
	}

	res, err := s.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// Find returns courses matching the given filter with optional find options.
// The caller is responsible for building the filter and options (sorting,
// projection).
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Course, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Count returns the number of courses matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
