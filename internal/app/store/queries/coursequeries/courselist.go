// Package coursequeries provides read-only catalog queries for courses.
package coursequeries

import (
	"context"
	"fmt"

	"github.com/kimohq/coursecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SortKey selects the ordering of a course listing.
type SortKey string

const (
	SortAlphabetical SortKey = "alphabetical"
	SortDate         SortKey = "date"
	SortRating       SortKey = "rating"
)

// ParseSortKey maps the sort_by query value to a SortKey. An empty value
// selects alphabetical ordering; anything outside the closed set is an
// error for the boundary to reject.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortAlphabetical, SortDate, SortRating:
		return SortKey(s), nil
	case "":
		return SortAlphabetical, nil
	default:
		return "", fmt.Errorf("sort_by must be alphabetical, date, or rating, got %q", s)
	}
}

// ListFilter defines the filter options for listing courses.
type ListFilter struct {
	Domain string // exact tag match against the domain array; empty means all courses
}

// Filter builds the Mongo filter document.
func (f ListFilter) Filter() bson.M {
	q := bson.M{}
	if f.Domain != "" {
		q["domain"] = f.Domain
	}
	return q
}

// SortSpec returns the sort document for the key: name ascending for
// alphabetical, date and ratings descending for the other two. No tie-break
// key is applied, so equal values come back in store order.
func (k SortKey) SortSpec() bson.D {
	switch k {
	case SortDate:
		return bson.D{{Key: "date", Value: -1}}
	case SortRating:
		return bson.D{{Key: "ratings", Value: -1}}
	default:
		return bson.D{{Key: "name", Value: 1}}
	}
}

// ListCourses fetches the ordered course listing for the given filter and
// sort key. A filter that matches nothing yields an empty slice, not an
// error.
func ListCourses(ctx context.Context, db *mongo.Database, filter ListFilter, key SortKey) ([]models.Course, error) {
	find := options.Find().SetSort(key.SortSpec())

	cur, err := db.Collection("courses").Find(ctx, filter.Filter(), find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courses := []models.Course{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
