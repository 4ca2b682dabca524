// Command importcourses bulk-loads a JSON seed file of courses into the
// catalog collection and ensures the catalog indexes exist.
//
// Usage:
//
//	importcourses -file courses.json [-uri mongodb://...] [-db coursecatalog]
//
// Connection settings fall back to COURSECATALOG_MONGO_URI and
// COURSECATALOG_MONGO_DATABASE, loaded from the environment or a .env file.
package main

import (
	"context"
	"flag"
	"os"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/joho/godotenv"
	coursestore "github.com/kimohq/coursecatalog/internal/app/store/courses"
	"github.com/kimohq/coursecatalog/internal/app/system/courseload"
	"github.com/kimohq/coursecatalog/internal/app/system/indexes"
	"github.com/kimohq/coursecatalog/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	var (
		file   = flag.String("file", "courses.json", "path to the course JSON seed file")
		uri    = flag.String("uri", envOr("COURSECATALOG_MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
		dbName = flag.String("db", envOr("COURSECATALOG_MONGO_DATABASE", "coursecatalog"), "MongoDB database name")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := wafflemongo.ValidateURI(*uri); err != nil {
		logger.Fatal("invalid MongoDB URI", zap.Error(err))
	}

	courses, err := courseload.LoadFile(*file)
	if err != nil {
		logger.Fatal("load seed file failed", zap.String("file", *file), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Batch())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*uri))
	if err != nil {
		logger.Fatal("connect mongodb failed", zap.Error(err))
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(*dbName)

	if err := indexes.EnsureAll(ctx, db, logger); err != nil {
		logger.Fatal("ensure indexes failed", zap.Error(err))
	}

	n, err := coursestore.New(db).InsertMany(ctx, courses)
	if err != nil {
		if wafflemongo.IsDup(err) {
			logger.Fatal("duplicate course data", zap.Error(err))
		}
		logger.Fatal("insert courses failed", zap.Error(err))
	}

	logger.Info("course data imported",
		zap.Int("count", n),
		zap.String("database", *dbName))
}
