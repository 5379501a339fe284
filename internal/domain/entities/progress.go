package entities

import "math"

// Progress calculator: pure functions over a plan/item snapshot. No state,
// no side effects; repeated calls on the same snapshot return the same value.
// Derived fields on TreatmentPlan are always recomputed from these, never
// mutated independently.

// CompletedSessionCount counts the item's sessions with Completed set.
func CompletedSessionCount(item TreatmentItem) int {
	n := 0
	for _, s := range item.Sessions {
		if s.Completed {
			n++
		}
	}
	return n
}

// ItemProgress returns the item's completion percentage, 0-100. An item
// without sessions yields 0 (the divisor is clamped to 1).
func ItemProgress(item TreatmentItem) int {
	total := len(item.Sessions)
	if total < 1 {
		total = 1
	}
	return int(math.Round(100 * float64(CompletedSessionCount(item)) / float64(total)))
}

// PlanTotalCost sums the estimated cost over all items.
func PlanTotalCost(plan TreatmentPlan) float64 {
	total := 0.0
	for _, item := range plan.Items {
		total += item.EstimatedCost
	}
	return total
}

// PlanProgress returns the plan's completion percentage across all items'
// sessions, 0-100. Cancelled items' sessions still count. A plan without
// sessions yields 0.
func PlanProgress(plan TreatmentPlan) int {
	total := 0
	completed := 0
	for _, item := range plan.Items {
		total += len(item.Sessions)
		completed += CompletedSessionCount(item)
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// Recalculate refreshes the plan's derived fields from its items.
func Recalculate(plan *TreatmentPlan) {
	plan.TotalCost = PlanTotalCost(*plan)
	plan.Progress = PlanProgress(*plan)
}
