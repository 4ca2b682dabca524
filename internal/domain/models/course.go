// internal/domain/models/course.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a catalog entry with its embedded chapters.
//
// Ratings is a denormalized aggregate: the sum of Chapters[*].Ratings,
// persisted eagerly so the rating sort can run on an indexed field. It is
// recomputed and rewritten after every rating submission rather than being
// derived at read time.
type Course struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Date        int64              `bson:"date" json:"date"`
	Description string             `bson:"description" json:"description"`
	Domain      []string           `bson:"domain" json:"domain"`
	Chapters    []Chapter          `bson:"chapters" json:"chapters"`
	Ratings     int                `bson:"ratings" json:"ratings"`
}

// Chapter is a named sub-unit of a Course carrying its own rating counter.
// Names are used as lookup keys and are not guaranteed unique across courses.
type Chapter struct {
	Name    string `bson:"name" json:"name"`
	Ratings int    `bson:"ratings" json:"ratings"`
}

// ChapterRatingSum sums the chapter rating counters, which is the value the
// course-level Ratings field must hold after a successful submission.
func (c Course) ChapterRatingSum() int {
	total := 0
	for _, ch := range c.Chapters {
		total += ch.Ratings
	}
	return total
}
