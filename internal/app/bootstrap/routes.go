// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	coursesfeature "github.com/kimohq/coursecatalog/internal/app/features/courses"
	healthfeature "github.com/kimohq/coursecatalog/internal/app/features/health"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, and schema setup
// have completed. The catalog API is a flat JSON surface, so the router is
// small: the health endpoint for load balancers, and the courses feature
// mounted at the root carrying the greeting, listing, lookups, and rating
// submission.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.CatalogMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Catalog API
	coursesHandler := coursesfeature.NewHandler(deps.CatalogMongoDatabase, logger)
	r.Mount("/", coursesfeature.Routes(coursesHandler))

	return r, nil
}
