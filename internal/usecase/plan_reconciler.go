package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"odonto_core/internal/domain/entities"
	"odonto_core/internal/usecase/interfaces"
)

var (
	ErrInvalidPlanTitle     = errors.New("invalid plan title")
	ErrPlanIdentityConflict = errors.New("plan identity conflicts with create submission")
)

// PlaceholderItemDescription is substituted for an empty item description at
// submit time instead of rejecting the save.
const PlaceholderItemDescription = "No specific description provided"

// PlanReconciler decides whether a save is a create or an update and merges
// server-assigned identities back into local state.
//
// Routing follows the plan's identity tag (classified once from the id
// shape): persisted ids go to Update, everything else goes to Create with the
// local placeholder id stripped. After a create, the patient's plan list is
// reloaded because the create response does not carry generated session
// identifiers; the reloaded plan replaces local state.
//
// On any gateway failure the error is surfaced and local state stays
// untouched; there is no partial merge.
type PlanReconciler struct {
	planRepo interfaces.ITreatmentPlanRepository
}

func NewPlanReconciler(planRepo interfaces.ITreatmentPlanRepository) *PlanReconciler {
	return &PlanReconciler{planRepo: planRepo}
}

// Save persists the plan with create-or-update semantics and returns the
// server's current representation.
func (r *PlanReconciler) Save(ctx context.Context, plan entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	if strings.TrimSpace(plan.Title) == "" {
		return entities.TreatmentPlan{}, ErrInvalidPlanTitle
	}
	if strings.TrimSpace(plan.PatientID) == "" {
		return entities.TreatmentPlan{}, ErrInvalidPatientID
	}
	for _, item := range plan.Items {
		if strings.TrimSpace(item.Procedure) == "" {
			return entities.TreatmentPlan{}, ErrInvalidProcedure
		}
	}

	identity := entities.ParsePlanIdentity(plan.ID)
	plan.ID = identity.ID()
	entities.Recalculate(&plan)

	if identity.Persisted() {
		return r.update(ctx, plan)
	}
	return r.create(ctx, plan)
}

func (r *PlanReconciler) update(ctx context.Context, plan entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	submission := clonePlan(plan)
	submission.Items = sanitizeItems(submission.Items, false)

	log.Printf("[plan][reconciler] update start plan_id=%s items=%d progress=%d", submission.ID, len(submission.Items), submission.Progress)
	updated, err := r.planRepo.Update(ctx, submission)
	if err != nil {
		log.Printf("[plan][reconciler] update failed plan_id=%s err=%v", submission.ID, err)
		return entities.TreatmentPlan{}, err
	}
	if updated.ID == "" {
		log.Printf("[plan][reconciler] update target missing plan_id=%s", submission.ID)
		return entities.TreatmentPlan{}, ErrPlanNotFound
	}
	log.Printf("[plan][reconciler] update success plan_id=%s", updated.ID)
	return updated, nil
}

func (r *PlanReconciler) create(ctx context.Context, plan entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	// A create submission carrying a server-shaped id means routing went
	// wrong upstream; aborting beats silently duplicating the plan.
	if entities.IsPersistedID(plan.ID) {
		return entities.TreatmentPlan{}, ErrPlanIdentityConflict
	}

	submission := clonePlan(plan)
	submission.ID = ""
	submission.Items = sanitizeItems(submission.Items, true)

	log.Printf("[plan][reconciler] create start patient_id=%s items=%d", submission.PatientID, len(submission.Items))
	created, err := r.planRepo.Create(ctx, submission)
	if err != nil {
		log.Printf("[plan][reconciler] create failed patient_id=%s err=%v", submission.PatientID, err)
		return entities.TreatmentPlan{}, err
	}
	log.Printf("[plan][reconciler] create success plan_id=%s; reloading plan list patient_id=%s", created.ID, created.PatientID)

	// The create response does not include generated session identifiers, so
	// reload the patient's plans and adopt the server's representation. If
	// the reload fails we fall back to the create response rather than
	// leaving the caller with nothing.
	plans, err := r.planRepo.ListByPatientID(ctx, created.PatientID)
	if err != nil {
		log.Printf("[plan][reconciler] reload after create failed patient_id=%s err=%v; using create response", created.PatientID, err)
		return created, nil
	}
	for _, candidate := range plans {
		if candidate.ID == created.ID {
			return candidate, nil
		}
	}
	log.Printf("[plan][reconciler] reload after create missing plan_id=%s; using create response", created.ID)
	return created, nil
}

// sanitizeItems prepares items for submission: empty descriptions get the
// fixed placeholder, date fields are dropped unless they parse as calendar
// dates, and create submissions are stripped of identity and session fields
// (the server generates sessions on creation, never the client).
func sanitizeItems(items []entities.TreatmentItem, forCreate bool) []entities.TreatmentItem {
	out := make([]entities.TreatmentItem, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			item.Description = PlaceholderItemDescription
		}
		if !validCalendarDate(item.StartDate) {
			item.StartDate = ""
		}
		if !validCalendarDate(item.CompletionDate) {
			item.CompletionDate = ""
		}
		if forCreate {
			item.ID = ""
			item.Sessions = nil
		}
		out[i] = item
	}
	return out
}

func validCalendarDate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
