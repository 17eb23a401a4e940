package workflow

import (
	"context"
	"net/http"
	"time"

	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/dto/requests"
	"psyeval-service/internal/pkg/exceptions"
	"psyeval-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type WorkflowController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
}

func NewWorkflowController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase) *WorkflowController {
	return &WorkflowController{
		Log:             logger,
		WorkflowUsecase: workflowUsecase,
	}
}

func (ctrl *WorkflowController) StartWorkflow(w http.ResponseWriter, r *http.Request) {
	request := new(requests.StartWorkflow)
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}
	practitionerID := utils.PractitionerIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.Start(ctx, practitionerID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WorkflowStartedSuccessMessage, response)
}

func (ctrl *WorkflowController) FindWorkflowByID(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, constvars.URLParamWorkflowID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.Snapshot(ctx, workflowID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowSnapshotSuccessMessage, response)
}

func (ctrl *WorkflowController) FindWorkflowHistory(w http.ResponseWriter, r *http.Request) {
	practitionerID := utils.PractitionerIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.History(ctx, practitionerID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowHistorySuccessMessage, response)
}

func (ctrl *WorkflowController) FindSelectablePatients(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, constvars.URLParamWorkflowID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.SelectablePatients(ctx, workflowID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowPatientsSuccessMessage, response)
}

func (ctrl *WorkflowController) SelectPatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectPatient)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	workflowID := chi.URLParam(r, constvars.URLParamWorkflowID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.SelectPatient(ctx, workflowID, request.PatientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowSelectSuccessMessage, response)
}

func (ctrl *WorkflowController) ApplyResumeDecision(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResumeDecision)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	workflowID := chi.URLParam(r, constvars.URLParamWorkflowID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.ApplyResumeDecision(ctx, workflowID, request.Decision)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowDecisionSuccessMessage, response)
}

func (ctrl *WorkflowController) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RecordAnswer)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	workflowID := chi.URLParam(r, constvars.URLParamWorkflowID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.RecordAnswer(ctx, workflowID, *request.Value)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowAnswerSuccessMessage, response)
}

func (ctrl *WorkflowController) StepBack(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, constvars.URLParamWorkflowID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.StepBack(ctx, workflowID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowBackSuccessMessage, response)
}

func (ctrl *WorkflowController) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, constvars.URLParamWorkflowID)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.WorkflowUsecase.Submit(ctx, workflowID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.WorkflowSubmitSuccessMessage, response)
}

func (ctrl *WorkflowController) TeardownWorkflow(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, constvars.URLParamWorkflowID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.WorkflowUsecase.Teardown(ctx, workflowID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkflowTeardownSuccessMessage, nil)
}
