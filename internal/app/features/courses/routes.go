// internal/app/features/courses/routes.go
package courses

import "github.com/go-chi/chi/v5"

// Routes returns the catalog subrouter, mounted at the root path from
// bootstrap. The greeting, listing, lookups, and rating submission all live
// on one router because they share the Handler and its store.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeIndex)
	r.Get("/courses", h.ServeList)
	r.Get("/course/{course_id}", h.ServeCourse)
	r.Get("/chapters/{chapter_name}", h.ServeChapter)
	r.Post("/rate_chapter", h.HandleRate)

	return r
}
