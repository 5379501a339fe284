package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"odonto_core/internal/domain/entities"
	"odonto_core/internal/infrastructure/metrics"
	"odonto_core/internal/usecase/interfaces"
)

var (
	ErrPlanNotFound     = errors.New("treatment plan not found")
	ErrInvalidPlanID    = errors.New("invalid plan id")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// ITreatmentPlanUseCase exposes the treatment plan engine to its callers.
//
// Operation mapping:
//   - list plans for the patient overview => ListByPatient()
//   - explicit save from the plan editor (create-or-update) => Save()
//   - per-session patch with optimistic local apply => UpdateSession()
//   - patient timeline read side => ListAnnotations()

type ITreatmentPlanUseCase interface {
	ListByPatient(ctx context.Context, patientID string) ([]entities.TreatmentPlan, error)
	Save(ctx context.Context, plan entities.TreatmentPlan) (entities.TreatmentPlan, error)
	Delete(ctx context.Context, planID string) error
	UpdateSession(ctx context.Context, planID, sessionID string, patch entities.SessionPatch) (entities.TreatmentPlan, error)
	ListAnnotations(ctx context.Context, patientID string) ([]entities.Annotation, error)
}

type TreatmentPlanUseCase struct {
	planRepo       interfaces.ITreatmentPlanRepository
	annotationRepo interfaces.IAnnotationRepository
	reconciler     *PlanReconciler
	emitter        *AnnotationEmitter
}

var _ ITreatmentPlanUseCase = (*TreatmentPlanUseCase)(nil)

func NewTreatmentPlanUseCase(planRepo interfaces.ITreatmentPlanRepository, annotationRepo interfaces.IAnnotationRepository) *TreatmentPlanUseCase {
	return &TreatmentPlanUseCase{
		planRepo:       planRepo,
		annotationRepo: annotationRepo,
		reconciler:     NewPlanReconciler(planRepo),
		emitter:        NewAnnotationEmitter(annotationRepo),
	}
}

func (u *TreatmentPlanUseCase) ListByPatient(ctx context.Context, patientID string) ([]entities.TreatmentPlan, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidPatientID
	}
	return u.planRepo.ListByPatientID(ctx, patientID)
}

// Save persists the plan through the reconciler. Derived fields are
// recomputed from the submitted snapshot before routing; the caller gets the
// server's representation back (with generated identities merged in after a
// create).
func (u *TreatmentPlanUseCase) Save(ctx context.Context, plan entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	persisted := entities.IsPersistedID(plan.ID)

	saved, err := u.reconciler.Save(ctx, plan)
	if err != nil {
		metrics.PlanSaves.WithLabelValues("error").Inc()
		return entities.TreatmentPlan{}, err
	}
	if persisted {
		metrics.PlanSaves.WithLabelValues("update").Inc()
	} else {
		metrics.PlanSaves.WithLabelValues("create").Inc()
	}
	return saved, nil
}

func (u *TreatmentPlanUseCase) Delete(ctx context.Context, planID string) error {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return ErrInvalidPlanID
	}
	return u.planRepo.Delete(ctx, planID)
}

// UpdateSession applies the patch to the plan's in-memory state first (the
// optimistic apply always wins), then reconciles:
//
//   - local placeholder session ids are local-only; nothing exists
//     server-side to update, so no gateway call is issued
//   - persisted session ids are additionally patched through the gateway;
//     a gateway failure is logged and swallowed, keeping the optimistic value
//
// A false-to-true completion with date and description present emits exactly
// one timeline annotation and recomputes progress in the same mutation.
func (u *TreatmentPlanUseCase) UpdateSession(ctx context.Context, planID, sessionID string, patch entities.SessionPatch) (entities.TreatmentPlan, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.TreatmentPlan{}, ErrInvalidPlanID
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.TreatmentPlan{}, ErrInvalidSessionID
	}

	plan, err := u.planRepo.GetByID(ctx, planID)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}
	if plan.ID == "" {
		return entities.TreatmentPlan{}, ErrPlanNotFound
	}

	itemID := ""
	for _, item := range plan.Items {
		for _, s := range item.Sessions {
			if s.ID == sessionID {
				itemID = item.ID
				break
			}
		}
	}
	if itemID == "" {
		return entities.TreatmentPlan{}, ErrSessionNotFound
	}

	editor := NewPlanEditorFor(plan)
	result, err := editor.UpdateSession(itemID, sessionID, patch)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}

	if entities.IsPersistedID(sessionID) {
		if err := u.planRepo.UpdateSession(ctx, planID, sessionID, patch); err != nil {
			// Best-effort sync: the optimistic local value stands.
			log.Printf("[plan][usecase] session sync failed plan_id=%s session_id=%s err=%v", planID, sessionID, err)
		}
	} else {
		log.Printf("[plan][usecase] session %s is local-only; skipping gateway update", sessionID)
	}

	if result.CompletedNow {
		metrics.SessionCompletions.Inc()
		if _, err := u.emitter.EmitSessionCompleted(ctx, editor.Plan(), result.Item, result.Session); err == nil {
			metrics.AnnotationsEmitted.Inc()
		}
	}

	return editor.Plan(), nil
}

func (u *TreatmentPlanUseCase) ListAnnotations(ctx context.Context, patientID string) ([]entities.Annotation, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidPatientID
	}
	return u.annotationRepo.ListByPatientID(ctx, patientID)
}
