// internal/app/features/courses/rate.go
package courses

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	coursestore "github.com/kimohq/coursecatalog/internal/app/store/courses"
	"github.com/kimohq/coursecatalog/internal/app/system/httpjson"
	"github.com/kimohq/coursecatalog/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleRate handles POST /rate_chapter.
//
// The rating value is validated here, before any store call; the not-found
// ladder (chapter anywhere, course id, chapter within course, course on
// re-fetch) is the workflow's, and each rung carries its own detail string.
// Store failures are never reported as 404.
func (h *Handler) HandleRate(w http.ResponseWriter, r *http.Request) {
	courseID := query.Get(r, "course_id")
	chapterName := query.Get(r, "chapter_name")

	vote, err := coursestore.ParseVote(query.Get(r, "rating"))
	if err != nil {
		httpjson.Detail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Courses.SubmitRating(ctx, courseID, chapterName, vote); err != nil {
		if coursestore.IsNotFound(err) {
			httpjson.Detail(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("rating submission failed",
			zap.String("course_id", courseID),
			zap.String("chapter_name", chapterName),
			zap.Error(err))
		httpjson.Detail(w, http.StatusServiceUnavailable, "course store unavailable")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Rating submitted successfully"})
}
