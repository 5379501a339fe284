package request

import (
	"errors"
	"strings"

	"odonto_core/internal/domain/entities"
)

var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
)

type SessionRequest struct {
	ID            string `json:"id"`
	SessionNumber int    `json:"session_number"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	Completed     bool   `json:"completed"`
}

type TreatmentItemRequest struct {
	ID                string           `json:"id"`
	Procedure         string           `json:"procedure" binding:"required"`
	Description       string           `json:"description"`
	Tooth             string           `json:"tooth"`
	Priority          string           `json:"priority"`
	EstimatedCost     float64          `json:"estimated_cost"`
	EstimatedSessions int              `json:"estimated_sessions"`
	Status            string           `json:"status"`
	StartDate         string           `json:"start_date"`
	CompletionDate    string           `json:"completion_date"`
	Notes             string           `json:"notes"`
	Order             int              `json:"order"`
	Sessions          []SessionRequest `json:"sessions"`
}

// TreatmentPlanRequest is the save payload produced by the plan editor UI.
// ID may be a client-local placeholder (new plan) or a server id (edit); the
// engine routes create-vs-update from its shape, never from the HTTP verb.
type TreatmentPlanRequest struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description"`
	Items       []TreatmentItemRequest `json:"items"`
}

// ToEntity converts the payload into the domain aggregate, filling enum
// defaults (medium priority, planned status) and rejecting unknown values.
func (r TreatmentPlanRequest) ToEntity(patientID string) (entities.TreatmentPlan, error) {
	items := make([]entities.TreatmentItem, 0, len(r.Items))
	for i, item := range r.Items {
		priority, err := resolvePriority(item.Priority)
		if err != nil {
			return entities.TreatmentPlan{}, err
		}
		status, err := resolveStatus(item.Status)
		if err != nil {
			return entities.TreatmentPlan{}, err
		}

		order := item.Order
		if order <= 0 {
			order = i + 1
		}
		sessions := make([]entities.Session, 0, len(item.Sessions))
		for j, s := range item.Sessions {
			number := s.SessionNumber
			if number <= 0 {
				number = j + 1
			}
			sessions = append(sessions, entities.Session{
				ID:            strings.TrimSpace(s.ID),
				SessionNumber: number,
				Date:          strings.TrimSpace(s.Date),
				Description:   s.Description,
				Completed:     s.Completed,
			})
		}

		items = append(items, entities.TreatmentItem{
			ID:                strings.TrimSpace(item.ID),
			Procedure:         strings.TrimSpace(item.Procedure),
			Description:       item.Description,
			Tooth:             strings.TrimSpace(item.Tooth),
			Priority:          priority,
			EstimatedCost:     item.EstimatedCost,
			EstimatedSessions: item.EstimatedSessions,
			Status:            status,
			StartDate:         strings.TrimSpace(item.StartDate),
			CompletionDate:    strings.TrimSpace(item.CompletionDate),
			Notes:             item.Notes,
			Order:             order,
			Sessions:          sessions,
		})
	}

	plan := entities.TreatmentPlan{
		ID:          strings.TrimSpace(r.ID),
		PatientID:   strings.TrimSpace(patientID),
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Items:       items,
	}
	entities.Recalculate(&plan)
	return plan, nil
}

// SessionUpdateRequest is a partial session patch; absent fields stay
// untouched server-side.
type SessionUpdateRequest struct {
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (r SessionUpdateRequest) ToPatch() entities.SessionPatch {
	return entities.SessionPatch{
		Date:        r.Date,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

func resolvePriority(s string) (entities.ItemPriority, error) {
	switch entities.ItemPriority(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return entities.ItemPriorityMedium, nil
	case entities.ItemPriorityHigh:
		return entities.ItemPriorityHigh, nil
	case entities.ItemPriorityMedium:
		return entities.ItemPriorityMedium, nil
	case entities.ItemPriorityLow:
		return entities.ItemPriorityLow, nil
	}
	return "", ErrInvalidPriority
}

func resolveStatus(s string) (entities.ItemStatus, error) {
	switch entities.ItemStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return entities.ItemStatusPlanned, nil
	case entities.ItemStatusPlanned:
		return entities.ItemStatusPlanned, nil
	case entities.ItemStatusInProgress:
		return entities.ItemStatusInProgress, nil
	case entities.ItemStatusCompleted:
		return entities.ItemStatusCompleted, nil
	case entities.ItemStatusCancelled:
		return entities.ItemStatusCancelled, nil
	}
	return "", ErrInvalidStatus
}
