package response

import (
	"time"

	"odonto_core/internal/domain/entities"
)

type AnnotationResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAnnotation(a entities.Annotation) AnnotationResponse {
	return AnnotationResponse{
		ID:        a.ID,
		PatientID: a.PatientID,
		Content:   a.Content,
		Category:  a.Category,
		CreatedAt: a.CreatedAt,
	}
}

func FromAnnotations(annotations []entities.Annotation) []AnnotationResponse {
	out := make([]AnnotationResponse, 0, len(annotations))
	for _, a := range annotations {
		out = append(out, FromAnnotation(a))
	}
	return out
}
