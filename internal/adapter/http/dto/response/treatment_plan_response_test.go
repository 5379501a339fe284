package response

import (
	"testing"

	"odonto_core/internal/domain/entities"
)

func TestFromTreatmentPlan(t *testing.T) {
	plan := entities.TreatmentPlan{
		ID:        "f3a1c9e2-7b44-4d6a-9c01-2e5f8a7b3c88",
		PatientID: "42",
		Title:     "Phase 1",
		Items: []entities.TreatmentItem{
			{
				ID:                "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d",
				Procedure:         "Root canal",
				Tooth:             "21",
				Priority:          entities.ItemPriorityHigh,
				EstimatedCost:     800,
				EstimatedSessions: 4,
				Status:            entities.ItemStatusInProgress,
				Order:             1,
				Sessions: []entities.Session{
					{ID: "s1", SessionNumber: 1, Completed: true},
					{ID: "s2", SessionNumber: 2, Completed: true},
					{ID: "s3", SessionNumber: 3, Completed: true},
					{ID: "s4", SessionNumber: 4},
				},
			},
		},
	}

	resp := FromTreatmentPlan(plan)

	if resp.ID != plan.ID || resp.PatientID != "42" {
		t.Fatalf("unexpected header: %+v", resp)
	}
	if resp.Progress != 75 {
		t.Fatalf("expected derived plan progress 75, got %d", resp.Progress)
	}
	if resp.TotalCost != 800 {
		t.Fatalf("expected derived total cost 800, got %v", resp.TotalCost)
	}
	item := resp.Items[0]
	if item.Progress != 75 {
		t.Fatalf("expected derived item progress 75, got %d", item.Progress)
	}
	if item.Priority != "high" || item.Status != "in-progress" {
		t.Fatalf("unexpected enum serialization: %+v", item)
	}
	if len(item.Sessions) != 4 || !item.Sessions[0].Completed {
		t.Fatalf("unexpected sessions: %+v", item.Sessions)
	}
}

func TestFromTreatmentPlans(t *testing.T) {
	out := FromTreatmentPlans(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}
