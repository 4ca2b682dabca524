// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// The Mongo client is the only shared process-wide resource; it is created
// once at startup and is safe for concurrent use by in-flight requests.
type DBDeps struct {
	CatalogMongoClient   *mongo.Client
	CatalogMongoDatabase *mongo.Database
}
