package handlers

import (
	"errors"
	"log"
	"net/http"

	request "odonto_core/internal/adapter/http/dto/request"
	response "odonto_core/internal/adapter/http/dto/response"
	"odonto_core/internal/usecase"
	"odonto_core/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid treatment plan payload", http.StatusBadRequest)

// TreatmentPlanHandler handles HTTP requests for the treatment plan engine.

type TreatmentPlanHandler struct {
	usecase usecase.ITreatmentPlanUseCase
}

func NewTreatmentPlanHandler(uc usecase.ITreatmentPlanUseCase) *TreatmentPlanHandler {
	return &TreatmentPlanHandler{usecase: uc}
}

// ListPlans returns a patient's treatment plans, most recent first.
func (h *TreatmentPlanHandler) ListPlans(c *gin.Context) {
	patientID := c.Param("patient_id")

	plans, err := h.usecase.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		appErr := mapTreatmentPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTreatmentPlans(plans))
}

// SavePlan persists a plan with create-or-update semantics. The engine routes
// on the id shape inside the payload, so new and edited plans share this
// endpoint the way they share the editor's save button.
func (h *TreatmentPlanHandler) SavePlan(c *gin.Context) {
	patientID := c.Param("patient_id")

	var payload request.TreatmentPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := payload.ToEntity(patientID)
	if err != nil {
		log.Printf("[plan][handler] save rejected patient_id=%s err=%v", patientID, err)
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), plan)
	if err != nil {
		log.Printf("[plan][handler] save failed patient_id=%s err=%v", patientID, err)
		appErr := mapTreatmentPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[plan][handler] save success patient_id=%s plan_id=%s progress=%d", patientID, saved.ID, saved.Progress)

	c.JSON(http.StatusOK, response.FromTreatmentPlan(saved))
}

// DeletePlan removes a plan and its nested items/sessions.
func (h *TreatmentPlanHandler) DeletePlan(c *gin.Context) {
	planID := c.Param("plan_id")

	if err := h.usecase.Delete(c.Request.Context(), planID); err != nil {
		appErr := mapTreatmentPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateSession applies a partial session update. The response always carries
// the optimistically-updated plan; a completed session additionally leaves an
// annotation on the patient timeline.
func (h *TreatmentPlanHandler) UpdateSession(c *gin.Context) {
	planID := c.Param("plan_id")
	sessionID := c.Param("session_id")

	var payload request.SessionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.UpdateSession(c.Request.Context(), planID, sessionID, payload.ToPatch())
	if err != nil {
		log.Printf("[plan][handler] session update failed plan_id=%s session_id=%s err=%v", planID, sessionID, err)
		appErr := mapTreatmentPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTreatmentPlan(plan))
}

// ListAnnotations returns the patient's generated timeline entries.
func (h *TreatmentPlanHandler) ListAnnotations(c *gin.Context) {
	patientID := c.Param("patient_id")

	annotations, err := h.usecase.ListAnnotations(c.Request.Context(), patientID)
	if err != nil {
		appErr := mapTreatmentPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAnnotations(annotations))
}

func mapTreatmentPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPatientID),
		errors.Is(err, usecase.ErrInvalidPlanID),
		errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidPlanTitle),
		errors.Is(err, usecase.ErrInvalidProcedure),
		errors.Is(err, usecase.ErrInvalidEstimatedCost),
		errors.Is(err, usecase.ErrInvalidPriority):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid item status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlanIdentityConflict):
		return pkg.NewDomainErrorSimple("PLAN_IDENTITY_CONFLICT", "Plan identity conflicts with create submission", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Treatment plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Treatment item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
