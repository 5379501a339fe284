package entities

import "time"

// ItemPriority ranks how urgently a planned procedure should be delivered.

type ItemPriority string

const (
	ItemPriorityHigh   ItemPriority = "high"
	ItemPriorityMedium ItemPriority = "medium"
	ItemPriorityLow    ItemPriority = "low"
)

// ItemStatus represents the lifecycle of a treatment item.
//
// Domain notes:
//   - Transitions are explicit user actions (status selector), never automatic.
//   - Entering in-progress stamps StartDate once; entering completed stamps
//     CompletionDate once. Re-entering a stamped state keeps the original date.
//   - cancelled is reachable from planned/in-progress only and is terminal.

type ItemStatus string

const (
	ItemStatusPlanned    ItemStatus = "planned"
	ItemStatusInProgress ItemStatus = "in-progress"
	ItemStatusCompleted  ItemStatus = "completed"
	ItemStatusCancelled  ItemStatus = "cancelled"
)

// Session is one scheduled/completed visit delivering part of an item's procedure.
//
// SessionNumber is 1-based, assigned at creation from the session's position
// within its owning item, and never renumbered afterwards.
type Session struct {
	ID            string `json:"id"`
	SessionNumber int    `json:"session_number"`
	Date          string `json:"date,omitempty"`
	Description   string `json:"description,omitempty"`
	Completed     bool   `json:"completed"`
}

// SessionPatch is a partial session update. Nil fields are left untouched.
type SessionPatch struct {
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// TreatmentItem is one procedure within a plan (e.g. "Root canal, tooth 21").
//
// Sessions has a fixed length equal to EstimatedSessions at creation time and
// is never resized; estimating more sessions means adding a new item.
type TreatmentItem struct {
	ID                string       `json:"id"`
	Procedure         string       `json:"procedure"`
	Description       string       `json:"description"`
	Tooth             string       `json:"tooth,omitempty"`
	Priority          ItemPriority `json:"priority"`
	EstimatedCost     float64      `json:"estimated_cost"`
	EstimatedSessions int          `json:"estimated_sessions"`
	Status            ItemStatus   `json:"status"`
	StartDate         string       `json:"start_date,omitempty"`
	CompletionDate    string       `json:"completion_date,omitempty"`
	Notes             string       `json:"notes,omitempty"`
	Order             int          `json:"order"`
	Sessions          []Session    `json:"sessions"`
}

// TreatmentPlan is a patient's ordered set of treatment procedures.
//
// TotalCost and Progress are derived from Items by the progress calculator and
// recomputed after every mutation; they are persisted for cheap list reads but
// the in-memory snapshot is the source of truth while editing.
type TreatmentPlan struct {
	ID          string          `json:"id"`
	PatientID   string          `json:"patient_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Items       []TreatmentItem `json:"items"`
	TotalCost   float64         `json:"total_cost"`
	Progress    int             `json:"progress"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// FindItem returns a pointer into Items for the given item id, or nil.
func (p *TreatmentPlan) FindItem(itemID string) *TreatmentItem {
	for i := range p.Items {
		if p.Items[i].ID == itemID {
			return &p.Items[i]
		}
	}
	return nil
}

// FindSession returns pointers into Items/Sessions for the given pair, or nils.
func (p *TreatmentPlan) FindSession(itemID, sessionID string) (*TreatmentItem, *Session) {
	item := p.FindItem(itemID)
	if item == nil {
		return nil, nil
	}
	for i := range item.Sessions {
		if item.Sessions[i].ID == sessionID {
			return item, &item.Sessions[i]
		}
	}
	return item, nil
}
