package repository

import (
	"context"
	"errors"
	"time"

	"hrx_backoffice/internal/domain/entities"
	"hrx_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTeamMembersTableName = "project_team_members"
	defaultEquipmentTableName   = "project_equipment"

	projectIDIndexName = "project_id-index"
)

type teamMemberItem struct {
	ID             string `dynamodbav:"id"`
	ProjectID      string `dynamodbav:"project_id"`
	Role           string `dynamodbav:"role"`
	Category       string `dynamodbav:"category,omitempty"`
	Quantity       int    `dynamodbav:"quantity"`
	DurationDays   int    `dynamodbav:"duration_days"`
	DailyRateCents *int64 `dynamodbav:"daily_rate_cents,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type equipmentItemRecord struct {
	ID                     string `dynamodbav:"id"`
	ProjectID              string `dynamodbav:"project_id"`
	Name                   string `dynamodbav:"name"`
	Category               string `dynamodbav:"category,omitempty"`
	Quantity               int    `dynamodbav:"quantity"`
	DurationDays           int    `dynamodbav:"duration_days"`
	Status                 string `dynamodbav:"status"`
	ResolvedUnitPriceCents *int64 `dynamodbav:"resolved_unit_price_cents,omitempty"`
	ResolvedByQuotationID  string `dynamodbav:"resolved_by_quotation_id,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// LineItemDynamoRepository persists team member and equipment line items
// in two DynamoDB tables, each with a project_id-index GSI for listing
// the items of a project.
type LineItemDynamoRepository struct {
	ddb            *dynamodb.Client
	teamTable      string
	equipmentTable string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:            ddb,
		teamTable:      getenvDefault("TEAM_MEMBERS_TABLE", defaultTeamMembersTableName),
		equipmentTable: getenvDefault("EQUIPMENT_TABLE", defaultEquipmentTableName),
	}
}

func (r *LineItemDynamoRepository) CreateTeamMember(ctx context.Context, m entities.TeamLineItem) (entities.TeamLineItem, error) {
	av, err := attributevalue.MarshalMap(toTeamMemberItem(m))
	if err != nil {
		return entities.TeamLineItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.teamTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.TeamLineItem{}, err
	}
	return m, nil
}

func (r *LineItemDynamoRepository) ListTeamByProject(ctx context.Context, projectID string) ([]entities.TeamLineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.teamTable),
		IndexName:              aws.String(projectIDIndexName),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	members := make([]entities.TeamLineItem, 0, len(out.Items))
	for _, item := range out.Items {
		var it teamMemberItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		members = append(members, fromTeamMemberItem(it))
	}
	return members, nil
}

// UpdateTeamMemberRate sets the daily rate of an existing member. A missing
// row yields a zero-value entity and a nil error.
func (r *LineItemDynamoRepository) UpdateTeamMemberRate(ctx context.Context, memberID string, dailyRateCents int64) (entities.TeamLineItem, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.teamTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: memberID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #rate = :rate, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#rate":       "daily_rate_cents",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rate":       numberAttr(dailyRateCents),
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TeamLineItem{}, nil
		}
		return entities.TeamLineItem{}, err
	}

	var it teamMemberItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TeamLineItem{}, err
	}
	return fromTeamMemberItem(it), nil
}

func (r *LineItemDynamoRepository) CreateEquipment(ctx context.Context, e entities.EquipmentLineItem) (entities.EquipmentLineItem, error) {
	av, err := attributevalue.MarshalMap(toEquipmentItem(e))
	if err != nil {
		return entities.EquipmentLineItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.equipmentTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EquipmentLineItem{}, err
	}
	return e, nil
}

func (r *LineItemDynamoRepository) ListEquipmentByProject(ctx context.Context, projectID string) ([]entities.EquipmentLineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.equipmentTable),
		IndexName:              aws.String(projectIDIndexName),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EquipmentLineItem, 0, len(out.Items))
	for _, item := range out.Items {
		var it equipmentItemRecord
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEquipmentItem(it))
	}
	return items, nil
}

// MarkEquipmentQuoting moves a pending line to quoting. Lines already
// quoted keep their resolved price untouched, so the transition is
// guarded against regressing a resolved line.
func (r *LineItemDynamoRepository) MarkEquipmentQuoting(ctx context.Context, equipmentID string) (entities.EquipmentLineItem, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.equipmentTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: equipmentID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :quoted"),
		UpdateExpression:    aws.String("SET #status = :quoting, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quoting":    &types.AttributeValueMemberS{Value: string(entities.EquipmentStatusQuoting)},
			":quoted":     &types.AttributeValueMemberS{Value: string(entities.EquipmentStatusQuoted)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EquipmentLineItem{}, nil
		}
		return entities.EquipmentLineItem{}, err
	}

	var it equipmentItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EquipmentLineItem{}, err
	}
	return fromEquipmentItem(it), nil
}

// ResolveEquipment stamps the accepted unit price on a line and moves it
// to quoted, recording the winning quotation. The condition rejects a
// resolution by any other quotation, which keeps at most one accepted
// quotation per line while letting the winner rewrite its own lines on
// a retried acceptance.
func (r *LineItemDynamoRepository) ResolveEquipment(ctx context.Context, equipmentID string, unitPriceCents int64, quotationID string) (entities.EquipmentLineItem, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.equipmentTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: equipmentID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (#status <> :quoted OR #resolved_by = :qid)"),
		UpdateExpression:    aws.String("SET #status = :quoted, #price = :price, #resolved_by = :qid, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#price":       "resolved_unit_price_cents",
			"#resolved_by": "resolved_by_quotation_id",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quoted":     &types.AttributeValueMemberS{Value: string(entities.EquipmentStatusQuoted)},
			":price":      numberAttr(unitPriceCents),
			":qid":        &types.AttributeValueMemberS{Value: quotationID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EquipmentLineItem{}, nil
		}
		return entities.EquipmentLineItem{}, err
	}

	var it equipmentItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EquipmentLineItem{}, err
	}
	return fromEquipmentItem(it), nil
}

func toTeamMemberItem(m entities.TeamLineItem) teamMemberItem {
	return teamMemberItem{
		ID:             m.ID,
		ProjectID:      m.ProjectID,
		Role:           m.Role,
		Category:       m.Category,
		Quantity:       m.Quantity,
		DurationDays:   m.DurationDays,
		DailyRateCents: m.DailyRateCents,
		CreatedAt:      m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTeamMemberItem(it teamMemberItem) entities.TeamLineItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.TeamLineItem{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		Role:           it.Role,
		Category:       it.Category,
		Quantity:       it.Quantity,
		DurationDays:   it.DurationDays,
		DailyRateCents: it.DailyRateCents,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func toEquipmentItem(e entities.EquipmentLineItem) equipmentItemRecord {
	return equipmentItemRecord{
		ID:                     e.ID,
		ProjectID:              e.ProjectID,
		Name:                   e.Name,
		Category:               e.Category,
		Quantity:               e.Quantity,
		DurationDays:           e.DurationDays,
		Status:                 string(e.Status),
		ResolvedUnitPriceCents: e.ResolvedUnitPriceCents,
		ResolvedByQuotationID:  e.ResolvedByQuotationID,
		CreatedAt:              e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEquipmentItem(it equipmentItemRecord) entities.EquipmentLineItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.EquipmentLineItem{
		ID:                     it.ID,
		ProjectID:              it.ProjectID,
		Name:                   it.Name,
		Category:               it.Category,
		Quantity:               it.Quantity,
		DurationDays:           it.DurationDays,
		Status:                 entities.EquipmentStatus(it.Status),
		ResolvedUnitPriceCents: it.ResolvedUnitPriceCents,
		ResolvedByQuotationID:  it.ResolvedByQuotationID,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
}
