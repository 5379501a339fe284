package response

import (
	"time"

	"odonto_core/internal/domain/entities"
)

type SessionResponse struct {
	ID            string `json:"id"`
	SessionNumber int    `json:"session_number"`
	Date          string `json:"date,omitempty"`
	Description   string `json:"description,omitempty"`
	Completed     bool   `json:"completed"`
}

type TreatmentItemResponse struct {
	ID                string            `json:"id"`
	Procedure         string            `json:"procedure"`
	Description       string            `json:"description"`
	Tooth             string            `json:"tooth,omitempty"`
	Priority          string            `json:"priority"`
	EstimatedCost     float64           `json:"estimated_cost"`
	EstimatedSessions int               `json:"estimated_sessions"`
	Status            string            `json:"status"`
	StartDate         string            `json:"start_date,omitempty"`
	CompletionDate    string            `json:"completion_date,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	Order             int               `json:"order"`
	Progress          int               `json:"progress"`
	Sessions          []SessionResponse `json:"sessions"`
}

type TreatmentPlanResponse struct {
	ID          string                  `json:"id"`
	PatientID   string                  `json:"patient_id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description,omitempty"`
	Items       []TreatmentItemResponse `json:"items"`
	TotalCost   float64                 `json:"total_cost"`
	Progress    int                     `json:"progress"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// FromTreatmentPlan shapes the aggregate for API consumers. Item progress is
// derived here so list views get it without a second round trip.
func FromTreatmentPlan(plan entities.TreatmentPlan) TreatmentPlanResponse {
	items := make([]TreatmentItemResponse, 0, len(plan.Items))
	for _, item := range plan.Items {
		sessions := make([]SessionResponse, 0, len(item.Sessions))
		for _, s := range item.Sessions {
			sessions = append(sessions, SessionResponse{
				ID:            s.ID,
				SessionNumber: s.SessionNumber,
				Date:          s.Date,
				Description:   s.Description,
				Completed:     s.Completed,
			})
		}
		items = append(items, TreatmentItemResponse{
			ID:                item.ID,
			Procedure:         item.Procedure,
			Description:       item.Description,
			Tooth:             item.Tooth,
			Priority:          string(item.Priority),
			EstimatedCost:     item.EstimatedCost,
			EstimatedSessions: item.EstimatedSessions,
			Status:            string(item.Status),
			StartDate:         item.StartDate,
			CompletionDate:    item.CompletionDate,
			Notes:             item.Notes,
			Order:             item.Order,
			Progress:          entities.ItemProgress(item),
			Sessions:          sessions,
		})
	}
	return TreatmentPlanResponse{
		ID:          plan.ID,
		PatientID:   plan.PatientID,
		Title:       plan.Title,
		Description: plan.Description,
		Items:       items,
		TotalCost:   entities.PlanTotalCost(plan),
		Progress:    entities.PlanProgress(plan),
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

func FromTreatmentPlans(plans []entities.TreatmentPlan) []TreatmentPlanResponse {
	out := make([]TreatmentPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromTreatmentPlan(p))
	}
	return out
}
