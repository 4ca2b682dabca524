// internal/app/features/courses/index.go
package courses

import (
	"net/http"

	"github.com/kimohq/coursecatalog/internal/app/system/httpjson"
)

// ServeIndex handles GET /.
// Liveness greeting; no store access.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, map[string]string{"msg": "Hello World"})
}
