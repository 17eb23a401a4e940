package routers

import (
	"psyeval-service/internal/app/delivery/http/middlewares"
	"psyeval-service/internal/app/services/core/workflow"

	"github.com/go-chi/chi/v5"
)

func attachWorkflowRoutes(router chi.Router, middlewares *middlewares.Middlewares, workflowController *workflow.WorkflowController) {
	router.With(middlewares.Authenticate).Post("/", workflowController.StartWorkflow)
	router.With(middlewares.Authenticate).Get("/", workflowController.FindWorkflowHistory)
	router.With(middlewares.Authenticate).Get("/{workflow_id}", workflowController.FindWorkflowByID)
	router.With(middlewares.Authenticate).Get("/{workflow_id}/patients", workflowController.FindSelectablePatients)
	router.With(middlewares.Authenticate).Post("/{workflow_id}/patient", workflowController.SelectPatient)
	router.With(middlewares.Authenticate).Post("/{workflow_id}/decision", workflowController.ApplyResumeDecision)
	router.With(middlewares.Authenticate).Post("/{workflow_id}/answers", workflowController.RecordAnswer)
	router.With(middlewares.Authenticate).Post("/{workflow_id}/back", workflowController.StepBack)
	router.With(middlewares.Authenticate).Post("/{workflow_id}/submit", workflowController.SubmitAnswers)
	router.With(middlewares.Authenticate).Delete("/{workflow_id}", workflowController.TeardownWorkflow)
}
