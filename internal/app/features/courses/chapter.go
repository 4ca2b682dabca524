// internal/app/features/courses/chapter.go
package courses

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	coursestore "github.com/kimohq/coursecatalog/internal/app/store/courses"
	"github.com/kimohq/coursecatalog/internal/app/system/httpjson"
	"github.com/kimohq/coursecatalog/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeChapter handles GET /chapters/{chapter_name}.
// The lookup is unscoped: it returns the first chapter with this name in
// store order, regardless of which course holds it.
func (h *Handler) ServeChapter(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "chapter_name")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	chapter, err := h.Courses.GetChapterByName(ctx, name)
	if err != nil {
		var notFound *coursestore.ChapterNotFoundError
		if errors.As(err, &notFound) {
			httpjson.Detail(w, http.StatusNotFound, notFound.Error())
			return
		}
		h.Log.Error("get chapter failed", zap.String("chapter_name", name), zap.Error(err))
		httpjson.Detail(w, http.StatusServiceUnavailable, "course store unavailable")
		return
	}

	httpjson.Write(w, http.StatusOK, chapter)
}
