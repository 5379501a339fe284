package usecase

import (
	"errors"
	"strings"
	"time"

	"odonto_core/internal/domain/entities"
)

var (
	ErrInvalidPatientID        = errors.New("invalid patient id")
	ErrInvalidProcedure        = errors.New("invalid procedure")
	ErrInvalidEstimatedCost    = errors.New("invalid estimated cost")
	ErrInvalidPriority         = errors.New("invalid priority")
	ErrItemNotFound            = errors.New("treatment item not found")
	ErrSessionNotFound         = errors.New("session not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

const dateLayout = "2006-01-02"

// PlanEditor owns one in-memory TreatmentPlan aggregate for the duration of
// an editing session (one user, one open editor) and exposes explicit
// mutation commands. Every command recomputes the derived total cost and
// progress from the resulting snapshot, so derived fields can never drift
// from the items they summarize.
//
// The editor performs no I/O. Persistence is the PlanReconciler's job; the
// session two-phase sync lives in TreatmentPlanUseCase.
type PlanEditor struct {
	plan     entities.TreatmentPlan
	identity entities.PlanIdentity
}

// NewPlanEditor opens an editor on a brand-new plan for the given patient.
// The plan carries a client-local placeholder id until its first save.
func NewPlanEditor(patientID string) (*PlanEditor, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidPatientID
	}
	identity := entities.ParsePlanIdentity("")
	now := time.Now().UTC()
	return &PlanEditor{
		plan: entities.TreatmentPlan{
			ID:        identity.ID(),
			PatientID: patientID,
			Items:     []entities.TreatmentItem{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		identity: identity,
	}, nil
}

// NewPlanEditorFor opens an editor on an existing snapshot (typically loaded
// through the persistence gateway). The plan's identity is classified here,
// once, and tags the editor for the lifetime of the editing session.
func NewPlanEditorFor(plan entities.TreatmentPlan) *PlanEditor {
	identity := entities.ParsePlanIdentity(plan.ID)
	plan.ID = identity.ID()
	entities.Recalculate(&plan)
	return &PlanEditor{plan: plan, identity: identity}
}

// Plan returns a deep copy of the current snapshot.
func (e *PlanEditor) Plan() entities.TreatmentPlan {
	return clonePlan(e.plan)
}

// Identity returns the identity tag decided at construction.
func (e *PlanEditor) Identity() entities.PlanIdentity {
	return e.identity
}

// PlanProgress returns the derived plan completion percentage.
func (e *PlanEditor) PlanProgress() int {
	return entities.PlanProgress(e.plan)
}

// PlanTotalCost returns the derived plan cost.
func (e *PlanEditor) PlanTotalCost() float64 {
	return entities.PlanTotalCost(e.plan)
}

// ItemProgress returns the derived completion percentage for one item.
func (e *PlanEditor) ItemProgress(itemID string) (int, error) {
	item := e.plan.FindItem(itemID)
	if item == nil {
		return 0, ErrItemNotFound
	}
	return entities.ItemProgress(*item), nil
}

// SetTitle updates the plan title.
func (e *PlanEditor) SetTitle(title string) {
	e.plan.Title = title
	e.touch()
}

// SetDescription updates the plan description.
func (e *PlanEditor) SetDescription(description string) {
	e.plan.Description = description
	e.touch()
}

// AddItemInput carries the fields of an "add item" action.
type AddItemInput struct {
	Procedure         string
	Description       string
	Tooth             string
	Priority          entities.ItemPriority
	EstimatedCost     float64
	EstimatedSessions int
	Notes             string
}

// AddItem appends a new item to the plan, pre-populating one placeholder
// session per estimated session. Session numbers are fixed here and never
// renumbered.
func (e *PlanEditor) AddItem(input AddItemInput) (entities.TreatmentItem, error) {
	if strings.TrimSpace(input.Procedure) == "" {
		return entities.TreatmentItem{}, ErrInvalidProcedure
	}
	if input.EstimatedCost < 0 {
		return entities.TreatmentItem{}, ErrInvalidEstimatedCost
	}
	priority := input.Priority
	if priority == "" {
		priority = entities.ItemPriorityMedium
	}
	if !validPriority(priority) {
		return entities.TreatmentItem{}, ErrInvalidPriority
	}
	if input.EstimatedSessions < 0 {
		input.EstimatedSessions = 0
	}

	order := len(e.plan.Items) + 1
	item := entities.TreatmentItem{
		ID:                entities.NewLocalItemID(order),
		Procedure:         strings.TrimSpace(input.Procedure),
		Description:       input.Description,
		Tooth:             strings.TrimSpace(input.Tooth),
		Priority:          priority,
		EstimatedCost:     input.EstimatedCost,
		EstimatedSessions: input.EstimatedSessions,
		Status:            entities.ItemStatusPlanned,
		Notes:             input.Notes,
		Order:             order,
		Sessions:          make([]entities.Session, 0, input.EstimatedSessions),
	}
	for n := 1; n <= input.EstimatedSessions; n++ {
		item.Sessions = append(item.Sessions, entities.Session{
			ID:            entities.NewLocalSessionID(n),
			SessionNumber: n,
		})
	}

	e.plan.Items = append(e.plan.Items, item)
	e.recalculate()
	return cloneItem(item), nil
}

// RemoveItem deletes an item and its sessions, then renumbers the remaining
// items' order.
func (e *PlanEditor) RemoveItem(itemID string) error {
	idx := -1
	for i := range e.plan.Items {
		if e.plan.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrItemNotFound
	}
	e.plan.Items = append(e.plan.Items[:idx], e.plan.Items[idx+1:]...)
	for i := range e.plan.Items {
		e.plan.Items[i].Order = i + 1
	}
	e.recalculate()
	return nil
}

// ItemFieldPatch is a partial item update. Nil fields are left untouched.
// EstimatedSessions is deliberately absent: the session list is fixed at
// creation and resizing it would orphan recorded visits.
type ItemFieldPatch struct {
	Procedure     *string
	Description   *string
	Tooth         *string
	Priority      *entities.ItemPriority
	EstimatedCost *float64
	Notes         *string
}

// UpdateItemField applies a partial update to one item.
func (e *PlanEditor) UpdateItemField(itemID string, patch ItemFieldPatch) (entities.TreatmentItem, error) {
	item := e.plan.FindItem(itemID)
	if item == nil {
		return entities.TreatmentItem{}, ErrItemNotFound
	}
	if patch.Procedure != nil {
		if strings.TrimSpace(*patch.Procedure) == "" {
			return entities.TreatmentItem{}, ErrInvalidProcedure
		}
		item.Procedure = strings.TrimSpace(*patch.Procedure)
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Tooth != nil {
		item.Tooth = strings.TrimSpace(*patch.Tooth)
	}
	if patch.Priority != nil {
		if !validPriority(*patch.Priority) {
			return entities.TreatmentItem{}, ErrInvalidPriority
		}
		item.Priority = *patch.Priority
	}
	if patch.EstimatedCost != nil {
		if *patch.EstimatedCost < 0 {
			return entities.TreatmentItem{}, ErrInvalidEstimatedCost
		}
		item.EstimatedCost = *patch.EstimatedCost
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}
	e.recalculate()
	return cloneItem(*item), nil
}

// SetItemStatus drives the item state machine. Selecting the current status
// again is a no-op. Entering in-progress stamps StartDate once; entering
// completed stamps CompletionDate once; an already-stamped date survives
// re-entry unchanged.
func (e *PlanEditor) SetItemStatus(itemID string, status entities.ItemStatus) (entities.TreatmentItem, error) {
	item := e.plan.FindItem(itemID)
	if item == nil {
		return entities.TreatmentItem{}, ErrItemNotFound
	}
	if status == item.Status {
		return cloneItem(*item), nil
	}
	if !validStatusTransition(item.Status, status) {
		return entities.TreatmentItem{}, ErrInvalidStatusTransition
	}

	item.Status = status
	switch status {
	case entities.ItemStatusInProgress:
		if item.StartDate == "" {
			item.StartDate = time.Now().UTC().Format(dateLayout)
		}
	case entities.ItemStatusCompleted:
		if item.CompletionDate == "" {
			item.CompletionDate = time.Now().UTC().Format(dateLayout)
		}
	}
	e.touch()
	return cloneItem(*item), nil
}

// SessionUpdateResult reports the outcome of an UpdateSession command.
// CompletedNow is set only on a false-to-true completion transition where the
// resulting session carries both a date and a description; it is what gates
// the annotation side effect.
type SessionUpdateResult struct {
	Item         entities.TreatmentItem
	Session      entities.Session
	CompletedNow bool
	PlanProgress int
}

// UpdateSession applies a partial session update to local state. This always
// succeeds locally when the session exists; remote sync is the caller's
// concern and never blocks or reverts this mutation.
func (e *PlanEditor) UpdateSession(itemID, sessionID string, patch entities.SessionPatch) (SessionUpdateResult, error) {
	item, session := e.plan.FindSession(itemID, sessionID)
	if item == nil {
		return SessionUpdateResult{}, ErrItemNotFound
	}
	if session == nil {
		return SessionUpdateResult{}, ErrSessionNotFound
	}

	wasCompleted := session.Completed
	if patch.Date != nil {
		session.Date = strings.TrimSpace(*patch.Date)
	}
	if patch.Description != nil {
		session.Description = *patch.Description
	}
	if patch.Completed != nil {
		session.Completed = *patch.Completed
	}
	e.recalculate()

	completedNow := !wasCompleted && session.Completed &&
		session.Date != "" && strings.TrimSpace(session.Description) != ""

	return SessionUpdateResult{
		Item:         cloneItem(*item),
		Session:      *session,
		CompletedNow: completedNow,
		PlanProgress: e.plan.Progress,
	}, nil
}

func (e *PlanEditor) recalculate() {
	entities.Recalculate(&e.plan)
	e.touch()
}

func (e *PlanEditor) touch() {
	e.plan.UpdatedAt = time.Now().UTC()
}

func validPriority(p entities.ItemPriority) bool {
	switch p {
	case entities.ItemPriorityHigh, entities.ItemPriorityMedium, entities.ItemPriorityLow:
		return true
	}
	return false
}

// validStatusTransition encodes the item state machine: planned, in-progress
// and completed may be re-selected in any direction (the status selector is a
// correction tool, not a ratchet), cancelled is reachable from non-terminal
// states only, and nothing leaves cancelled.
func validStatusTransition(from, to entities.ItemStatus) bool {
	if from == entities.ItemStatusCancelled {
		return false
	}
	switch to {
	case entities.ItemStatusPlanned, entities.ItemStatusInProgress, entities.ItemStatusCompleted:
		return true
	case entities.ItemStatusCancelled:
		return from == entities.ItemStatusPlanned || from == entities.ItemStatusInProgress
	}
	return false
}

func clonePlan(plan entities.TreatmentPlan) entities.TreatmentPlan {
	out := plan
	out.Items = make([]entities.TreatmentItem, len(plan.Items))
	for i, item := range plan.Items {
		out.Items[i] = cloneItem(item)
	}
	return out
}

func cloneItem(item entities.TreatmentItem) entities.TreatmentItem {
	out := item
	out.Sessions = make([]entities.Session, len(item.Sessions))
	copy(out.Sessions, item.Sessions)
	return out
}
