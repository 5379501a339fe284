package repository

import (
	"context"
	"errors"
	"fmt"
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
	defaultTreatmentPlansTableName = "treatment_plans"
	plansPatientIDIndex            = "patient_id-index"
)

type sessionRecord struct {
	ID            string `dynamodbav:"id"`
	SessionNumber int    `dynamodbav:"session_number"`
	Date          string `dynamodbav:"date,omitempty"`
	Description   string `dynamodbav:"description,omitempty"`
	Completed     bool   `dynamodbav:"completed"`
}

type treatmentItemRecord struct {
	ID                string          `dynamodbav:"id"`
	Procedure         string          `dynamodbav:"procedure"`
	Description       string          `dynamodbav:"description"`
	Tooth             string          `dynamodbav:"tooth,omitempty"`
	Priority          string          `dynamodbav:"priority"`
	EstimatedCost     string          `dynamodbav:"estimated_cost"`
	EstimatedSessions int             `dynamodbav:"estimated_sessions"`
	Status            string          `dynamodbav:"status"`
	StartDate         string          `dynamodbav:"start_date,omitempty"`
	CompletionDate    string          `dynamodbav:"completion_date,omitempty"`
	Notes             string          `dynamodbav:"notes,omitempty"`
	Order             int             `dynamodbav:"order"`
	Sessions          []sessionRecord `dynamodbav:"sessions"`
}

type treatmentPlanItem struct {
	ID          string                `dynamodbav:"id"`
	PatientID   string                `dynamodbav:"patient_id"`
	Title       string                `dynamodbav:"title"`
	Description string                `dynamodbav:"description,omitempty"`
	Items       []treatmentItemRecord `dynamodbav:"items"`
	TotalCost   string                `dynamodbav:"total_cost"`
	Progress    int                   `dynamodbav:"progress"`
	CreatedAt   string                `dynamodbav:"created_at"`
	UpdatedAt   string                `dynamodbav:"updated_at"`
}

// TreatmentPlanDynamoRepository persists TreatmentPlan aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id, SK: created_at)
//
// A plan is stored as one document with its items and sessions nested, so
// session updates address the owning plan and rewrite the items attribute.
// This repository is the server side of the engine's identity handoff: it
// replaces client-local placeholder ids with uuids and generates session
// placeholders for items that arrive without persisted sessions.

type TreatmentPlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITreatmentPlanRepository = (*TreatmentPlanDynamoRepository)(nil)

func NewTreatmentPlanDynamoRepository(ddb *dynamodb.Client) *TreatmentPlanDynamoRepository {
	return &TreatmentPlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TREATMENT_PLANS_TABLE", defaultTreatmentPlansTableName),
	}
}

func (r *TreatmentPlanDynamoRepository) Create(ctx context.Context, plan entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	now := time.Now().UTC()
	plan.ID = uuid.NewString()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	for i := range plan.Items {
		assignItemIdentity(&plan.Items[i])
	}

	it := toTreatmentPlanItem(plan)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TreatmentPlan{}, err
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
		return entities.TreatmentPlan{}, err
	}
	return plan, nil
}

func (r *TreatmentPlanDynamoRepository) GetByID(ctx context.Context, planID string) (entities.TreatmentPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: planID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TreatmentPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.TreatmentPlan{}, nil
	}

	var it treatmentPlanItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TreatmentPlan{}, err
	}
	return fromTreatmentPlanItem(it), nil
}

func (r *TreatmentPlanDynamoRepository) ListByPatientID(ctx context.Context, patientID string) ([]entities.TreatmentPlan, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(plansPatientIDIndex),
		KeyConditionExpression: aws.String("patient_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: patientID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	plans := make([]entities.TreatmentPlan, 0, len(out.Items))
	for _, raw := range out.Items {
		var it treatmentPlanItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		plans = append(plans, fromTreatmentPlanItem(it))
	}
	// The GSI sorts by created_at already; keep the guarantee even if the
	// index projection changes.
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	return plans, nil
}

func (r *TreatmentPlanDynamoRepository) Update(ctx context.Context, plan entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	for i := range plan.Items {
		assignItemIdentity(&plan.Items[i])
	}

	records := make([]treatmentItemRecord, len(plan.Items))
	for i, item := range plan.Items {
		records[i] = toTreatmentItemRecord(item)
	}
	itemsAV, err := attributevalue.Marshal(records)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: plan.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #title = :title, #description = :description, #items = :items, #total_cost = :total_cost, #progress = :progress, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":title":       &types.AttributeValueMemberS{Value: plan.Title},
			":description": &types.AttributeValueMemberS{Value: plan.Description},
			":items":       itemsAV,
			":total_cost":  &types.AttributeValueMemberS{Value: floatToString(plan.TotalCost)},
			":progress":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", plan.Progress)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#title":       "title",
			"#description": "description",
			"#items":       "items",
			"#total_cost":  "total_cost",
			"#progress":    "progress",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TreatmentPlan{}, nil
		}
		return entities.TreatmentPlan{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.TreatmentPlan{}, nil
	}
	var it treatmentPlanItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TreatmentPlan{}, err
	}
	return fromTreatmentPlanItem(it), nil
}

func (r *TreatmentPlanDynamoRepository) Delete(ctx context.Context, planID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: planID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Idempotent delete: a missing plan is already gone.
			return nil
		}
		return err
	}
	return nil
}

func (r *TreatmentPlanDynamoRepository) UpdateSession(ctx context.Context, planID, sessionID string, patch entities.SessionPatch) error {
	plan, err := r.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan.ID == "" {
		return fmt.Errorf("plan %s not found", planID)
	}

	found := false
	for i := range plan.Items {
		for j := range plan.Items[i].Sessions {
			s := &plan.Items[i].Sessions[j]
			if s.ID != sessionID {
				continue
			}
			if patch.Date != nil {
				s.Date = *patch.Date
			}
			if patch.Description != nil {
				s.Description = *patch.Description
			}
			if patch.Completed != nil {
				s.Completed = *patch.Completed
			}
			found = true
		}
	}
	if !found {
		return fmt.Errorf("session %s not found in plan %s", sessionID, planID)
	}

	entities.Recalculate(&plan)
	_, err = r.Update(ctx, plan)
	return err
}

// assignItemIdentity replaces client-local placeholder ids with server ids
// and generates session placeholders for items arriving without sessions
// (the create path strips them; session count comes from the estimate).
func assignItemIdentity(item *entities.TreatmentItem) {
	if !entities.IsPersistedID(item.ID) {
		item.ID = uuid.NewString()
	}
	if len(item.Sessions) == 0 && item.EstimatedSessions > 0 {
		item.Sessions = make([]entities.Session, 0, item.EstimatedSessions)
		for n := 1; n <= item.EstimatedSessions; n++ {
			item.Sessions = append(item.Sessions, entities.Session{
				ID:            uuid.NewString(),
				SessionNumber: n,
			})
		}
		return
	}
	for i := range item.Sessions {
		if !entities.IsPersistedID(item.Sessions[i].ID) {
			item.Sessions[i].ID = uuid.NewString()
		}
	}
}

func toTreatmentPlanItem(plan entities.TreatmentPlan) treatmentPlanItem {
	items := make([]treatmentItemRecord, len(plan.Items))
	for i, item := range plan.Items {
		items[i] = toTreatmentItemRecord(item)
	}
	return treatmentPlanItem{
		ID:          plan.ID,
		PatientID:   plan.PatientID,
		Title:       plan.Title,
		Description: plan.Description,
		Items:       items,
		TotalCost:   floatToString(plan.TotalCost),
		Progress:    plan.Progress,
		CreatedAt:   plan.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   plan.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTreatmentPlanItem(it treatmentPlanItem) entities.TreatmentPlan {
	items := make([]entities.TreatmentItem, len(it.Items))
	for i, rec := range it.Items {
		items[i] = fromTreatmentItemRecord(rec)
	}
	return entities.TreatmentPlan{
		ID:          it.ID,
		PatientID:   it.PatientID,
		Title:       it.Title,
		Description: it.Description,
		Items:       items,
		TotalCost:   stringToFloat(it.TotalCost),
		Progress:    it.Progress,
		CreatedAt:   parseTimestamp(it.CreatedAt),
		UpdatedAt:   parseTimestamp(it.UpdatedAt),
	}
}

func toTreatmentItemRecord(item entities.TreatmentItem) treatmentItemRecord {
	sessions := make([]sessionRecord, len(item.Sessions))
	for i, s := range item.Sessions {
		sessions[i] = sessionRecord{
			ID:            s.ID,
			SessionNumber: s.SessionNumber,
			Date:          s.Date,
			Description:   s.Description,
			Completed:     s.Completed,
		}
	}
	return treatmentItemRecord{
		ID:                item.ID,
		Procedure:         item.Procedure,
		Description:       item.Description,
		Tooth:             item.Tooth,
		Priority:          string(item.Priority),
		EstimatedCost:     floatToString(item.EstimatedCost),
		EstimatedSessions: item.EstimatedSessions,
		Status:            string(item.Status),
		StartDate:         item.StartDate,
		CompletionDate:    item.CompletionDate,
		Notes:             item.Notes,
		Order:             item.Order,
		Sessions:          sessions,
	}
}

func fromTreatmentItemRecord(rec treatmentItemRecord) entities.TreatmentItem {
	sessions := make([]entities.Session, len(rec.Sessions))
	for i, s := range rec.Sessions {
		sessions[i] = entities.Session{
			ID:            s.ID,
			SessionNumber: s.SessionNumber,
			Date:          s.Date,
			Description:   s.Description,
			Completed:     s.Completed,
		}
	}
	return entities.TreatmentItem{
		ID:                rec.ID,
		Procedure:         rec.Procedure,
		Description:       rec.Description,
		Tooth:             rec.Tooth,
		Priority:          entities.ItemPriority(rec.Priority),
		EstimatedCost:     stringToFloat(rec.EstimatedCost),
		EstimatedSessions: rec.EstimatedSessions,
		Status:            entities.ItemStatus(rec.Status),
		StartDate:         rec.StartDate,
		CompletionDate:    rec.CompletionDate,
		Notes:             rec.Notes,
		Order:             rec.Order,
		Sessions:          sessions,
	}
}
