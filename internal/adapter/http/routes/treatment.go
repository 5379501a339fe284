package routes

import (
	"odonto_core/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPatients       = "/patients"
	PathTreatmentPlans = "/treatment-plans"
)

func addTreatmentRoutes(rg *gin.RouterGroup, planHandler *handlers.TreatmentPlanHandler) {
	patients := rg.Group(PathPatients)
	{
		patients.GET("/:patient_id/treatment-plans", planHandler.ListPlans)
		patients.POST("/:patient_id/treatment-plans", planHandler.SavePlan)
		patients.GET("/:patient_id/annotations", planHandler.ListAnnotations)
	}

	plans := rg.Group(PathTreatmentPlans)
	{
		plans.DELETE("/:plan_id", planHandler.DeletePlan)
		plans.PATCH("/:plan_id/sessions/:session_id", planHandler.UpdateSession)
	}
}
