package interfaces

import (
	"context"

	"odonto_core/internal/domain/entities"
)

// ITreatmentPlanRepository is the persistence gateway for treatment plans.
//
// The engine needs to:
//   - list a patient's plans (most recent first) to populate the editor and
//     to reload generated identities after a create
//   - create a plan (server assigns plan/item/session ids and generates one
//     session placeholder per estimated session)
//   - update a plan in place (sessions included so session edits persist)
//   - patch one session independently of a full plan save
//
// UpdateSession takes the owning plan id because sessions are stored nested
// in the plan document; callers always have it.

type ITreatmentPlanRepository interface {
	ListByPatientID(ctx context.Context, patientID string) ([]entities.TreatmentPlan, error)
	GetByID(ctx context.Context, planID string) (entities.TreatmentPlan, error)
	Create(ctx context.Context, plan entities.TreatmentPlan) (entities.TreatmentPlan, error)
	Update(ctx context.Context, plan entities.TreatmentPlan) (entities.TreatmentPlan, error)
	Delete(ctx context.Context, planID string) error
	UpdateSession(ctx context.Context, planID, sessionID string, patch entities.SessionPatch) error
}
