package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"odonto_core/internal/domain/entities"
	"odonto_core/internal/usecase/interfaces"
)

// AnnotationEmitter turns a session completion into one patient-timeline
// annotation. Exactly one annotation per completed session; annotations are
// never retroactively edited.
type AnnotationEmitter struct {
	repo interfaces.IAnnotationRepository
}

func NewAnnotationEmitter(repo interfaces.IAnnotationRepository) *AnnotationEmitter {
	return &AnnotationEmitter{repo: repo}
}

// EmitSessionCompleted persists the completion summary for the patient's
// timeline, tagged with the treatment-progress category.
func (a *AnnotationEmitter) EmitSessionCompleted(ctx context.Context, plan entities.TreatmentPlan, item entities.TreatmentItem, session entities.Session) (entities.Annotation, error) {
	annotation := entities.Annotation{
		PatientID: plan.PatientID,
		Content:   BuildSessionCompletionContent(plan, item, session),
		Category:  entities.CategoryTreatmentProgress,
		CreatedAt: time.Now().UTC(),
	}

	created, err := a.repo.Create(ctx, annotation)
	if err != nil {
		log.Printf("[annotation][usecase] emit failed patient_id=%s plan_id=%s session=%d err=%v", plan.PatientID, plan.ID, session.SessionNumber, err)
		return entities.Annotation{}, err
	}
	log.Printf("[annotation][usecase] emitted patient_id=%s plan_id=%s session=%d progress=%d", plan.PatientID, plan.ID, session.SessionNumber, plan.Progress)
	return created, nil
}

// BuildSessionCompletionContent formats the timeline entry for a completed
// session: plan title, session ordinal within its item, procedure with
// optional tooth locator, long-form date, resulting plan progress with a
// status line, total estimated cost, and the work description.
func BuildSessionCompletionContent(plan entities.TreatmentPlan, item entities.TreatmentItem, session entities.Session) string {
	procedure := item.Procedure
	if item.Tooth != "" {
		procedure = fmt.Sprintf("%s (tooth %s)", item.Procedure, item.Tooth)
	}

	statusLine := "in progress"
	if plan.Progress == 100 {
		statusLine = "treatment finished"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Treatment plan: %s\n", plan.Title)
	fmt.Fprintf(&b, "Session %d of %d\n", session.SessionNumber, len(item.Sessions))
	fmt.Fprintf(&b, "Procedure: %s\n", procedure)
	fmt.Fprintf(&b, "Date: %s\n", longFormDate(session.Date))
	fmt.Fprintf(&b, "Plan progress: %d%% (%s)\n", plan.Progress, statusLine)
	fmt.Fprintf(&b, "Total estimated cost: %.2f\n", plan.TotalCost)
	fmt.Fprintf(&b, "Work performed: %s", session.Description)
	return b.String()
}

func longFormDate(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("January 2, 2006")
}
