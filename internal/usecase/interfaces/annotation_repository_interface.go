package interfaces

import (
	"context"

	"odonto_core/internal/domain/entities"
)

// IAnnotationRepository persists generated timeline annotations.
//
// Annotations are write-once from this engine's point of view: the session
// completion flow creates them and the timeline only ever reads them.
type IAnnotationRepository interface {
	Create(ctx context.Context, annotation entities.Annotation) (entities.Annotation, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Annotation, error)
}
