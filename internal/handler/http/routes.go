package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-student-registry/internal/app"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withTracing, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Group(func(r chi.Router) {
		r.Use(h.withAccessKey)

		r.Get(app.CollectionPath, h.listStudents)
		r.Post(app.CollectionPath, h.createStudent)
		r.Delete(app.CollectionPath+"/{id}", h.deleteStudent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
