// internal/app/features/courses/list.go
package courses

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	coursequeries "github.com/kimohq/coursecatalog/internal/app/store/queries/coursequeries"
	"github.com/kimohq/coursecatalog/internal/app/system/httpjson"
	"github.com/kimohq/coursecatalog/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /courses.
//
// sort_by selects one of the three fixed orderings (alphabetical when
// absent); domain restricts the listing to courses tagged with that exact
// value. No matches is an empty array, not an error.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	key, err := coursequeries.ParseSortKey(query.Get(r, "sort_by"))
	if err != nil {
		httpjson.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	filter := coursequeries.ListFilter{Domain: query.Get(r, "domain")}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := coursequeries.ListCourses(ctx, h.DB, filter, key)
	if err != nil {
		h.Log.Error("list courses failed", zap.Error(err))
		httpjson.Detail(w, http.StatusServiceUnavailable, "course store unavailable")
		return
	}

	httpjson.Write(w, http.StatusOK, list)
}
