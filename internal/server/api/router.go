package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/get_config", s.handleGetConfig)
		r.Post("/greet", s.handleGreet)

		r.Post("/register_user", s.handleRegisterUser)
		r.Post("/check_login", s.handleCheckLogin)

		r.Get("/get_users", s.handleGetUsers)
		r.Post("/add_user", s.handleAddUser)
		r.Put("/update_user", s.handleUpdateUser)
		r.Delete("/delete_user", s.handleDeleteUser)

		r.Get("/get_messages", s.handleGetMessages)
		r.Post("/add_message", s.handleAddMessage)
		r.Delete("/delete_message", s.handleDeleteMessage)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}
