package usecase

import (
	"errors"
	"strings"
	"testing"

	"odonto_core/internal/domain/entities"
)

func newEditorWithItem(t *testing.T, sessions int) (*PlanEditor, entities.TreatmentItem) {
	t.Helper()
	editor, err := NewPlanEditor("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	editor.SetTitle("Phase 1")
	item, err := editor.AddItem(AddItemInput{
		Procedure:         "Root canal",
		Tooth:             "21",
		EstimatedCost:     800,
		EstimatedSessions: sessions,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return editor, item
}

func TestNewPlanEditor(t *testing.T) {
	t.Run("invalid patient id", func(t *testing.T) {
		if _, err := NewPlanEditor("  "); !errors.Is(err, ErrInvalidPatientID) {
			t.Fatalf("expected ErrInvalidPatientID, got %v", err)
		}
	})

	t.Run("new plan has local identity", func(t *testing.T) {
		editor, err := NewPlanEditor("42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if editor.Identity().Persisted() {
			t.Fatalf("expected local identity for a new plan")
		}
		if !strings.HasPrefix(editor.Plan().ID, "plan-") {
			t.Fatalf("expected plan- placeholder, got %q", editor.Plan().ID)
		}
	})

	t.Run("existing snapshot keeps server identity", func(t *testing.T) {
		editor := NewPlanEditorFor(entities.TreatmentPlan{
			ID:        "f3a1c9e2-7b44-4d6a-9c01-2e5f8a7b3c88",
			PatientID: "42",
			Title:     "Phase 1",
		})
		if !editor.Identity().Persisted() {
			t.Fatalf("expected persisted identity")
		}
	})
}

func TestPlanEditor_AddItem(t *testing.T) {
	t.Run("missing procedure", func(t *testing.T) {
		editor, _ := NewPlanEditor("42")
		if _, err := editor.AddItem(AddItemInput{Procedure: "  "}); !errors.Is(err, ErrInvalidProcedure) {
			t.Fatalf("expected ErrInvalidProcedure, got %v", err)
		}
	})

	t.Run("negative cost", func(t *testing.T) {
		editor, _ := NewPlanEditor("42")
		if _, err := editor.AddItem(AddItemInput{Procedure: "Cleaning", EstimatedCost: -1}); !errors.Is(err, ErrInvalidEstimatedCost) {
			t.Fatalf("expected ErrInvalidEstimatedCost, got %v", err)
		}
	})

	t.Run("unknown priority", func(t *testing.T) {
		editor, _ := NewPlanEditor("42")
		if _, err := editor.AddItem(AddItemInput{Procedure: "Cleaning", Priority: "urgent"}); !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("pre-populates sessions with stable numbers", func(t *testing.T) {
		_, item := newEditorWithItem(t, 4)
		if len(item.Sessions) != 4 {
			t.Fatalf("expected 4 sessions, got %d", len(item.Sessions))
		}
		for i, s := range item.Sessions {
			if s.SessionNumber != i+1 {
				t.Fatalf("session %d has number %d", i, s.SessionNumber)
			}
			if entities.IsPersistedID(s.ID) {
				t.Fatalf("expected local session id, got %q", s.ID)
			}
			if s.Completed {
				t.Fatalf("new session must start incomplete")
			}
		}
		if item.Status != entities.ItemStatusPlanned {
			t.Fatalf("new item must start planned, got %s", item.Status)
		}
		if item.Priority != entities.ItemPriorityMedium {
			t.Fatalf("expected medium default priority, got %s", item.Priority)
		}
	})

	t.Run("recomputes derived fields", func(t *testing.T) {
		editor, _ := newEditorWithItem(t, 4)
		if editor.PlanTotalCost() != 800 {
			t.Fatalf("expected total cost 800, got %v", editor.PlanTotalCost())
		}
		if editor.PlanProgress() != 0 {
			t.Fatalf("expected progress 0, got %d", editor.PlanProgress())
		}
	})

	t.Run("orders items by insertion", func(t *testing.T) {
		editor, _ := newEditorWithItem(t, 2)
		second, err := editor.AddItem(AddItemInput{Procedure: "Crown", EstimatedSessions: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Order != 2 {
			t.Fatalf("expected order 2, got %d", second.Order)
		}
	})
}

func TestPlanEditor_RemoveItem(t *testing.T) {
	t.Run("unknown item", func(t *testing.T) {
		editor, _ := NewPlanEditor("42")
		if err := editor.RemoveItem("missing"); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("cascades and renumbers", func(t *testing.T) {
		editor, first := newEditorWithItem(t, 2)
		second, _ := editor.AddItem(AddItemInput{Procedure: "Crown", EstimatedCost: 450, EstimatedSessions: 1})

		if err := editor.RemoveItem(first.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		plan := editor.Plan()
		if len(plan.Items) != 1 || plan.Items[0].ID != second.ID {
			t.Fatalf("unexpected items: %+v", plan.Items)
		}
		if plan.Items[0].Order != 1 {
			t.Fatalf("expected renumbered order 1, got %d", plan.Items[0].Order)
		}
		if editor.PlanTotalCost() != 450 {
			t.Fatalf("expected total cost 450, got %v", editor.PlanTotalCost())
		}
	})
}

func TestPlanEditor_UpdateItemField(t *testing.T) {
	editor, item := newEditorWithItem(t, 2)

	t.Run("partial patch", func(t *testing.T) {
		cost := 950.0
		notes := "needs anesthesia"
		updated, err := editor.UpdateItemField(item.ID, ItemFieldPatch{EstimatedCost: &cost, Notes: &notes})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.EstimatedCost != 950 || updated.Notes != notes {
			t.Fatalf("patch not applied: %+v", updated)
		}
		if updated.Procedure != "Root canal" {
			t.Fatalf("untouched field changed: %q", updated.Procedure)
		}
		if editor.PlanTotalCost() != 950 {
			t.Fatalf("derived cost not recomputed: %v", editor.PlanTotalCost())
		}
	})

	t.Run("rejects blank procedure", func(t *testing.T) {
		blank := "   "
		if _, err := editor.UpdateItemField(item.ID, ItemFieldPatch{Procedure: &blank}); !errors.Is(err, ErrInvalidProcedure) {
			t.Fatalf("expected ErrInvalidProcedure, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		if _, err := editor.UpdateItemField("missing", ItemFieldPatch{}); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestPlanEditor_SetItemStatus(t *testing.T) {
	t.Run("in-progress stamps start date once", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 2)

		updated, err := editor.SetItemStatus(item.ID, entities.ItemStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.StartDate == "" {
			t.Fatalf("expected start date stamp")
		}
		stamped := updated.StartDate

		// leave and re-enter
		if _, err := editor.SetItemStatus(item.ID, entities.ItemStatusPlanned); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		again, err := editor.SetItemStatus(item.ID, entities.ItemStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.StartDate != stamped {
			t.Fatalf("start date overwritten: %q then %q", stamped, again.StartDate)
		}
	})

	t.Run("completed stamps completion date once", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 2)
		updated, err := editor.SetItemStatus(item.ID, entities.ItemStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CompletionDate == "" {
			t.Fatalf("expected completion date stamp")
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 2)
		updated, err := editor.SetItemStatus(item.ID, entities.ItemStatusPlanned)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.StartDate != "" || updated.CompletionDate != "" {
			t.Fatalf("no-op must not stamp dates: %+v", updated)
		}
	})

	t.Run("cancelled only from non-terminal states", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 2)
		if _, err := editor.SetItemStatus(item.ID, entities.ItemStatusCompleted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := editor.SetItemStatus(item.ID, entities.ItemStatusCancelled); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("nothing leaves cancelled", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 2)
		if _, err := editor.SetItemStatus(item.ID, entities.ItemStatusCancelled); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := editor.SetItemStatus(item.ID, entities.ItemStatusPlanned); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestPlanEditor_UpdateSession(t *testing.T) {
	completed := true
	date := "2024-06-01"
	description := "Filling placed"

	t.Run("unknown session", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 2)
		if _, err := editor.UpdateSession(item.ID, "missing", entities.SessionPatch{Completed: &completed}); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("patch applies locally and recomputes progress", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 4)
		result, err := editor.UpdateSession(item.ID, item.Sessions[0].ID, entities.SessionPatch{
			Date: &date, Description: &description, Completed: &completed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Session.Completed || result.Session.Date != date {
			t.Fatalf("patch not applied: %+v", result.Session)
		}
		if result.PlanProgress != 25 {
			t.Fatalf("expected plan progress 25, got %d", result.PlanProgress)
		}
	})

	t.Run("completion requires date and description", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 4)
		result, err := editor.UpdateSession(item.ID, item.Sessions[0].ID, entities.SessionPatch{Completed: &completed})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.CompletedNow {
			t.Fatalf("completion without date/description must not trigger the annotation side effect")
		}
	})

	t.Run("false to true transition with details is a completion", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 4)
		result, err := editor.UpdateSession(item.ID, item.Sessions[0].ID, entities.SessionPatch{
			Date: &date, Description: &description, Completed: &completed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.CompletedNow {
			t.Fatalf("expected completion event")
		}

		// setting completed=true again is not a second completion
		repeat, err := editor.UpdateSession(item.ID, item.Sessions[0].ID, entities.SessionPatch{Completed: &completed})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repeat.CompletedNow {
			t.Fatalf("repeated completion must not re-trigger the side effect")
		}
	})

	t.Run("uncompleting is never a completion", func(t *testing.T) {
		editor, item := newEditorWithItem(t, 4)
		if _, err := editor.UpdateSession(item.ID, item.Sessions[0].ID, entities.SessionPatch{
			Date: &date, Description: &description, Completed: &completed,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uncomplete := false
		result, err := editor.UpdateSession(item.ID, item.Sessions[0].ID, entities.SessionPatch{Completed: &uncomplete})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.CompletedNow {
			t.Fatalf("uncompleting must not trigger the side effect")
		}
		if result.PlanProgress != 0 {
			t.Fatalf("expected progress back to 0, got %d", result.PlanProgress)
		}
	})
}
