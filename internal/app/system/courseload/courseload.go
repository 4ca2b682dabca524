// Package courseload reads bulk course data from the JSON seed format: a
// top-level array of course objects carrying everything but the store
// identifier.
package courseload

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kimohq/coursecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// seedCourse is the course shape as it appears in the seed file, without an
// _id. Chapter rating counters default to zero when absent.
type seedCourse struct {
	Name        string           `json:"name"`
	Date        int64            `json:"date"`
	Description string           `json:"description"`
	Domain      []string         `json:"domain"`
	Chapters    []models.Chapter `json:"chapters"`
	Ratings     int              `json:"ratings"`
}

// LoadFile parses the seed file and returns courses with freshly assigned
// ObjectIDs, ready for insertion.
func LoadFile(path string) ([]models.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seeds []seedCourse
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	courses := make([]models.Course, 0, len(seeds))
	for i, s := range seeds {
		if s.Name == "" {
			return nil, fmt.Errorf("%s: course %d has no name", path, i)
		}
		courses = append(courses, models.Course{
			ID:          primitive.NewObjectID(),
			Name:        s.Name,
			Date:        s.Date,
			Description: s.Description,
			Domain:      s.Domain,
			Chapters:    s.Chapters,
			Ratings:     s.Ratings,
		})
	}
	return courses, nil
}
