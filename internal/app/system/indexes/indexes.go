// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureAll creates the indexes the catalog queries depend on. It is called
// at startup and by the bulk importer; index creation is idempotent, so
// repeated runs are safe.
//
// name, date, and ratings back the three listing sort orders; domain backs
// the listing filter; chapters.name backs the chapter lookups and the
// conditional rating increment.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	desired := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName("name_asc")},
		{Keys: bson.D{{Key: "date", Value: -1}}, Options: options.Index().SetName("date_desc")},
		{Keys: bson.D{{Key: "ratings", Value: -1}}, Options: options.Index().SetName("ratings_desc")},
		{Keys: bson.D{{Key: "domain", Value: 1}}, Options: options.Index().SetName("domain_asc")},
		{Keys: bson.D{{Key: "chapters.name", Value: 1}}, Options: options.Index().SetName("chapter_name_asc")},
	}

	names, err := db.Collection("courses").Indexes().CreateMany(ctx, desired)
	if err != nil {
		return fmt.Errorf("courses indexes: %w", err)
	}

	logger.Info("ensured course indexes", zap.Strings("indexes", names))
	return nil
}
