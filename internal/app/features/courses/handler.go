// internal/app/features/courses/handler.go
package courses

import (
	coursestore "github.com/kimohq/coursecatalog/internal/app/store/courses"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the course catalog API.
// The store is constructed once here and shared by every request.
type Handler struct {
	DB      *mongo.Database
	Courses *coursestore.Store
	Log     *zap.Logger
}

// NewHandler constructs a catalog handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Courses: coursestore.New(db),
		Log:     logger,
	}
}
