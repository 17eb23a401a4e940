package routers

import (
	"psyeval-service/internal/app/delivery/http/middlewares"
	"psyeval-service/internal/app/services/core/sessions"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *sessions.SessionController) {
	router.With(middlewares.Authenticate).Get("/", sessionController.FindSessions)
	router.With(middlewares.Authenticate).Get("/consultation/{consultation_id}", sessionController.FindSessionByConsultation)
	router.With(middlewares.Authenticate).Get("/{session_id}", sessionController.FindSessionByID)
}
