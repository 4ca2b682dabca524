// internal/app/features/courses/course.go
package courses

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	coursestore "github.com/kimohq/coursecatalog/internal/app/store/courses"
	"github.com/kimohq/coursecatalog/internal/app/system/httpjson"
	"github.com/kimohq/coursecatalog/internal/app/system/timeouts"
	"github.com/kimohq/coursecatalog/internal/domain/models"
	"go.uber.org/zap"
)

// ServeCourse handles GET /course/{course_id}.
// The body is a single-element array; a malformed id gets the same 404 as a
// missing one, with the raw id echoed in the detail.
func (h *Handler) ServeCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "course_id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	course, err := h.Courses.GetByID(ctx, id)
	if err != nil {
		var notFound *coursestore.CourseNotFoundError
		if errors.As(err, &notFound) {
			httpjson.Detail(w, http.StatusNotFound, notFound.Error())
			return
		}
		h.Log.Error("get course failed", zap.String("course_id", id), zap.Error(err))
		httpjson.Detail(w, http.StatusServiceUnavailable, "course store unavailable")
		return
	}

	httpjson.Write(w, http.StatusOK, []models.Course{course})
}
