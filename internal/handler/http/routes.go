package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/user/{id}", h.updateUser)

		r.Get("/api/City", h.listCities)
		r.Get("/api/User", h.listUsers)
		r.Get("/api/Crop", h.listCrops)
		r.Get("/api/Supplies", h.listSupplies)
		r.Get("/api/Lot", h.listLots)

		r.Route("/api/Farm", func(r chi.Router) {
			r.Get("/", h.listFarms)
			r.Post("/", h.createFarm)
			r.Put("/", h.updateFarm)
			r.Delete("/{id}", h.deleteFarm)
		})

		r.Route("/api/Person", func(r chi.Router) {
			r.Get("/", h.listPersons)
			r.Post("/", h.createPerson)
			r.Put("/", h.updatePerson)
			r.Delete("/{id}", h.deletePerson)
		})

		r.Route("/api/Modulo", func(r chi.Router) {
			r.Get("/", h.listModules)
			r.Post("/", h.createModule)
			r.Put("/", h.updateModule)
			r.Delete("/{id}", h.deleteModule)
		})

		r.Route("/api/Treatment", func(r chi.Router) {
			r.Get("/", h.listTreatments)
			r.Post("/", h.createTreatment)
			r.Put("/{id}", h.updateTreatment)
			r.Delete("/{id}", h.deleteTreatment)
		})

		r.Route("/api/ReviewTechnical", func(r chi.Router) {
			r.Get("/", h.listReviews)
			r.Post("/", h.createReview)
			r.Put("/", h.updateReview)
			r.Delete("/{id}", h.deleteReview)
		})
	})

	return router
}
