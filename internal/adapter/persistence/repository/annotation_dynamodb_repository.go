package repository

import (
	"context"
	"sort"
	"time"

	"odonto_core/internal/domain/entities"
	"odonto_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultAnnotationsTableName = "annotations"
	annotationsPatientIDIndex   = "patient_id-index"
)

type annotationItem struct {
	ID        string `dynamodbav:"id"`
	PatientID string `dynamodbav:"patient_id"`
	Content   string `dynamodbav:"content"`
	Category  string `dynamodbav:"category"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AnnotationDynamoRepository persists timeline annotations in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id, SK: created_at)

type AnnotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAnnotationRepository = (*AnnotationDynamoRepository)(nil)

func NewAnnotationDynamoRepository(ddb *dynamodb.Client) *AnnotationDynamoRepository {
	return &AnnotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ANNOTATIONS_TABLE", defaultAnnotationsTableName),
	}
}

func (r *AnnotationDynamoRepository) Create(ctx context.Context, annotation entities.Annotation) (entities.Annotation, error) {
	if annotation.ID == "" {
		annotation.ID = uuid.NewString()
	}
	if annotation.CreatedAt.IsZero() {
		annotation.CreatedAt = time.Now().UTC()
	}

	av, err := attributevalue.MarshalMap(toAnnotationItem(annotation))
	if err != nil {
		return entities.Annotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Annotation{}, err
	}
	return annotation, nil
}

func (r *AnnotationDynamoRepository) ListByPatientID(ctx context.Context, patientID string) ([]entities.Annotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(annotationsPatientIDIndex),
		KeyConditionExpression: aws.String("patient_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: patientID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	annotations := make([]entities.Annotation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it annotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		annotations = append(annotations, fromAnnotationItem(it))
	}
	sort.SliceStable(annotations, func(i, j int) bool {
		return annotations[i].CreatedAt.After(annotations[j].CreatedAt)
	})
	return annotations, nil
}

func toAnnotationItem(a entities.Annotation) annotationItem {
	return annotationItem{
		ID:        a.ID,
		PatientID: a.PatientID,
		Content:   a.Content,
		Category:  a.Category,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAnnotationItem(it annotationItem) entities.Annotation {
	return entities.Annotation{
		ID:        it.ID,
		PatientID: it.PatientID,
		Content:   it.Content,
		Category:  it.Category,
		CreatedAt: parseTimestamp(it.CreatedAt),
	}
}
