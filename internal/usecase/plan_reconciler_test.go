package usecase

import (
	"context"
	"errors"
	"testing"

	"odonto_core/internal/domain/entities"
	mock_interfaces "odonto_core/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const serverPlanID = "f3a1c9e2-7b44-4d6a-9c01-2e5f8a7b3c88"

func localPlanFixture() entities.TreatmentPlan {
	return entities.TreatmentPlan{
		ID:        "plan-1730000000000000000",
		PatientID: "42",
		Title:     "Phase 1",
		Items: []entities.TreatmentItem{
			{
				ID:                "item-1-1730000000000000000",
				Procedure:         "Root canal",
				Tooth:             "21",
				Priority:          entities.ItemPriorityHigh,
				EstimatedCost:     800,
				EstimatedSessions: 4,
				Status:            entities.ItemStatusPlanned,
				Order:             1,
				Sessions: []entities.Session{
					{ID: "session-1-1730000000000000000", SessionNumber: 1},
					{ID: "session-2-1730000000000000000", SessionNumber: 2},
					{ID: "session-3-1730000000000000000", SessionNumber: 3},
					{ID: "session-4-1730000000000000000", SessionNumber: 4},
				},
			},
		},
	}
}

func TestPlanReconciler_Save_Validation(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		r := NewPlanReconciler(nil)
		plan := localPlanFixture()
		plan.Title = "  "
		if _, err := r.Save(context.Background(), plan); !errors.Is(err, ErrInvalidPlanTitle) {
			t.Fatalf("expected ErrInvalidPlanTitle, got %v", err)
		}
	})

	t.Run("missing patient id", func(t *testing.T) {
		r := NewPlanReconciler(nil)
		plan := localPlanFixture()
		plan.PatientID = ""
		if _, err := r.Save(context.Background(), plan); !errors.Is(err, ErrInvalidPatientID) {
			t.Fatalf("expected ErrInvalidPatientID, got %v", err)
		}
	})

	t.Run("item without procedure", func(t *testing.T) {
		r := NewPlanReconciler(nil)
		plan := localPlanFixture()
		plan.Items[0].Procedure = " "
		if _, err := r.Save(context.Background(), plan); !errors.Is(err, ErrInvalidProcedure) {
			t.Fatalf("expected ErrInvalidProcedure, got %v", err)
		}
	})
}

func TestPlanReconciler_Save_RoutesByIdentity(t *testing.T) {
	t.Run("local placeholder id routes to create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITreatmentPlanRepository(ctrl)
		r := NewPlanReconciler(repo)

		created := localPlanFixture()
		created.ID = serverPlanID

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.TreatmentPlan{})).DoAndReturn(
			func(_ context.Context, p entities.TreatmentPlan) (entities.TreatmentPlan, error) {
				if p.ID != "" {
					t.Fatalf("create submission must strip the local id, got %q", p.ID)
				}
				return created, nil
			},
		)
		repo.EXPECT().ListByPatientID(gomock.Any(), "42").Return([]entities.TreatmentPlan{created}, nil)

		saved, err := r.Save(context.Background(), localPlanFixture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID != serverPlanID {
			t.Fatalf("expected reloaded server plan, got %q", saved.ID)
		}
	})

	t.Run("server id routes to update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITreatmentPlanRepository(ctrl)
		r := NewPlanReconciler(repo)

		plan := localPlanFixture()
		plan.ID = serverPlanID

		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.TreatmentPlan{})).DoAndReturn(
			func(_ context.Context, p entities.TreatmentPlan) (entities.TreatmentPlan, error) {
				if p.ID != serverPlanID {
					t.Fatalf("update must keep the server id, got %q", p.ID)
				}
				if len(p.Items[0].Sessions) != 4 {
					t.Fatalf("update must include sessions so session edits persist")
				}
				return p, nil
			},
		)

		saved, err := r.Save(context.Background(), plan)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID != serverPlanID {
			t.Fatalf("unexpected id: %q", saved.ID)
		}
	})
}

func TestPlanReconciler_Save_Sanitization(t *testing.T) {
	t.Run("empty description gets placeholder on create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITreatmentPlanRepository(ctrl)
		r := NewPlanReconciler(repo)

		plan := localPlanFixture()
		plan.Items[0].Description = "   "

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.TreatmentPlan) (entities.TreatmentPlan, error) {
				if p.Items[0].Description != PlaceholderItemDescription {
					t.Fatalf("expected placeholder description, got %q", p.Items[0].Description)
				}
				if p.Items[0].ID != "" || p.Items[0].Sessions != nil {
					t.Fatalf("create submission must strip item identity and sessions")
				}
				p.ID = serverPlanID
				return p, nil
			},
		)
		repo.EXPECT().ListByPatientID(gomock.Any(), "42").Return(nil, nil)

		if _, err := r.Save(context.Background(), plan); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid dates are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITreatmentPlanRepository(ctrl)
		r := NewPlanReconciler(repo)

		plan := localPlanFixture()
		plan.ID = serverPlanID
		plan.Items[0].StartDate = "not-a-date"
		plan.Items[0].CompletionDate = "2024-06-01"

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.TreatmentPlan) (entities.TreatmentPlan, error) {
				if p.Items[0].StartDate != "" {
					t.Fatalf("invalid start date must be omitted, got %q", p.Items[0].StartDate)
				}
				if p.Items[0].CompletionDate != "2024-06-01" {
					t.Fatalf("valid completion date must survive, got %q", p.Items[0].CompletionDate)
				}
				return p, nil
			},
		)

		if _, err := r.Save(context.Background(), plan); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPlanReconciler_Save_CreateReload(t *testing.T) {
	t.Run("reload failure falls back to create response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITreatmentPlanRepository(ctrl)
		r := NewPlanReconciler(repo)

		created := localPlanFixture()
		created.ID = serverPlanID

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
		repo.EXPECT().ListByPatientID(gomock.Any(), "42").Return(nil, errors.New("db"))

		saved, err := r.Save(context.Background(), localPlanFixture())
		if err != nil {
			t.Fatalf("reload failure must not fail the save: %v", err)
		}
		if saved.ID != serverPlanID {
			t.Fatalf("expected create response fallback, got %q", saved.ID)
		}
	})

	t.Run("reload picks the created plan among others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITreatmentPlanRepository(ctrl)
		r := NewPlanReconciler(repo)

		created := localPlanFixture()
		created.ID = serverPlanID
		other := localPlanFixture()
		other.ID = "aaaaaaaa-1111-2222-3333-444444444444"
		reloaded := created
		reloaded.Title = "Phase 1 (server)"

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
		repo.EXPECT().ListByPatientID(gomock.Any(), "42").Return([]entities.TreatmentPlan{other, reloaded}, nil)

		saved, err := r.Save(context.Background(), localPlanFixture())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Title != "Phase 1 (server)" {
			t.Fatalf("expected reloaded representation, got %+v", saved)
		}
	})
}

func TestPlanReconciler_Save_Failures(t *testing.T) {
	t.Run("create failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITreatmentPlanRepository(ctrl)
		r := NewPlanReconciler(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.TreatmentPlan{}, errors.New("db"))

		if _, err := r.Save(context.Background(), localPlanFixture()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("update failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITreatmentPlanRepository(ctrl)
		r := NewPlanReconciler(repo)

		plan := localPlanFixture()
		plan.ID = serverPlanID
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.TreatmentPlan{}, errors.New("db"))

		if _, err := r.Save(context.Background(), plan); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("update target missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITreatmentPlanRepository(ctrl)
		r := NewPlanReconciler(repo)

		plan := localPlanFixture()
		plan.ID = serverPlanID
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.TreatmentPlan{}, nil)

		if _, err := r.Save(context.Background(), plan); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})
}
