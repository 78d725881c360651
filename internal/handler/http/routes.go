package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/signin", h.signIn)
		r.Get("/api/doctors", h.searchDoctors)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/signout", h.signOut)
		r.Get("/api/auth/session", h.session)

		r.Post("/api/profiles", h.insertProfile)
		r.Get("/api/profiles/{id}", h.getProfile)
		r.Put("/api/profiles/{id}", h.updateProfile)

		r.With(h.bookingHashing).Post("/api/appointments", h.bookAppointment)
		r.Get("/api/appointments", h.listAppointments)
		r.Delete("/api/appointments/{id}", h.cancelAppointment)
	})

	router.MethodNotAllowed(unsupportedMethod)

	return router
}
