package entities

import "time"

// CategoryTreatmentProgress tags annotations generated by the session
// completion flow so the patient timeline can distinguish them from
// hand-written notes.
const CategoryTreatmentProgress = "treatment_progress"

// Annotation is a generated timeline note documenting a completed session.
// Annotations are write-once: the engine never edits one after emission.
type Annotation struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
