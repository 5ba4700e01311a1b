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

const defaultProjectsTableName = "event_projects"

type projectItem struct {
	ID            string `dynamodbav:"id"`
	ProjectNumber string `dynamodbav:"project_number"`

	ClientName  string `dynamodbav:"client_name"`
	ClientEmail string `dynamodbav:"client_email,omitempty"`

	EventName    string  `dynamodbav:"event_name"`
	EventType    string  `dynamodbav:"event_type,omitempty"`
	EventDate    string  `dynamodbav:"event_date,omitempty"`
	VenueAddress string  `dynamodbav:"venue_address,omitempty"`
	VenueCity    string  `dynamodbav:"venue_city,omitempty"`
	VenueState   string  `dynamodbav:"venue_state,omitempty"`
	Latitude     float64 `dynamodbav:"latitude,omitempty"`
	Longitude    float64 `dynamodbav:"longitude,omitempty"`

	IsUrgent          bool   `dynamodbav:"is_urgent"`
	MarginOverrideBps *int64 `dynamodbav:"margin_override_bps,omitempty"`

	Status string `dynamodbav:"status"`

	TotalTeamCostCents      int64 `dynamodbav:"total_team_cost_cents"`
	TotalEquipmentCostCents int64 `dynamodbav:"total_equipment_cost_cents"`
	TotalCostCents          int64 `dynamodbav:"total_cost_cents"`
	TotalProfitCents        int64 `dynamodbav:"total_profit_cents"`
	TotalClientPriceCents   int64 `dynamodbav:"total_client_price_cents"`
	MarginBps               int64 `dynamodbav:"margin_bps"`

	UrgencyNotifiedAt string `dynamodbav:"urgency_notified_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The five aggregate fields always change together through a single
// UpdateItem, so a reader never sees a partially refreshed aggregate.
// The urgency_notified_at attribute is written through a conditional
// update that only the first caller wins.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) SaveAggregates(ctx context.Context, id string, agg entities.Aggregates) (entities.Project, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #team = :team, #equipment = :equipment, #cost = :cost, " +
			"#profit = :profit, #client_price = :client_price, #margin = :margin, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#team":         "total_team_cost_cents",
			"#equipment":    "total_equipment_cost_cents",
			"#cost":         "total_cost_cents",
			"#profit":       "total_profit_cents",
			"#client_price": "total_client_price_cents",
			"#margin":       "margin_bps",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":team":         numberAttr(agg.TotalTeamCostCents),
			":equipment":    numberAttr(agg.TotalEquipmentCostCents),
			":cost":         numberAttr(agg.TotalCostCents),
			":profit":       numberAttr(agg.TotalProfitCents),
			":client_price": numberAttr(agg.TotalClientPriceCents),
			":margin":       numberAttr(agg.MarginBps),
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) MarkUrgencyNotified(ctx context.Context, id string, at time.Time) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#notified)"),
		UpdateExpression:    aws.String("SET #notified = :notified"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#notified": "urgency_notified_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":notified": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:            p.ID,
		ProjectNumber: p.ProjectNumber,
		ClientName:    p.ClientName,
		ClientEmail:   p.ClientEmail,
		EventName:     p.EventName,
		EventType:     p.EventType,
		EventDate:     p.EventDate,
		VenueAddress:  p.VenueAddress,
		VenueCity:     p.VenueCity,
		VenueState:    p.VenueState,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,

		IsUrgent:          p.IsUrgent,
		MarginOverrideBps: p.MarginOverrideBps,

		Status: string(p.Status),

		TotalTeamCostCents:      p.Aggregates.TotalTeamCostCents,
		TotalEquipmentCostCents: p.Aggregates.TotalEquipmentCostCents,
		TotalCostCents:          p.Aggregates.TotalCostCents,
		TotalProfitCents:        p.Aggregates.TotalProfitCents,
		TotalClientPriceCents:   p.Aggregates.TotalClientPriceCents,
		MarginBps:               p.Aggregates.MarginBps,

		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.UrgencyNotifiedAt != nil {
		it.UrgencyNotifiedAt = p.UrgencyNotifiedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.Project{
		ID:            it.ID,
		ProjectNumber: it.ProjectNumber,
		ClientName:    it.ClientName,
		ClientEmail:   it.ClientEmail,
		EventName:     it.EventName,
		EventType:     it.EventType,
		EventDate:     it.EventDate,
		VenueAddress:  it.VenueAddress,
		VenueCity:     it.VenueCity,
		VenueState:    it.VenueState,
		Latitude:      it.Latitude,
		Longitude:     it.Longitude,

		IsUrgent:          it.IsUrgent,
		MarginOverrideBps: it.MarginOverrideBps,

		Status: entities.ProjectStatus(it.Status),
		Aggregates: entities.Aggregates{
			TotalTeamCostCents:      it.TotalTeamCostCents,
			TotalEquipmentCostCents: it.TotalEquipmentCostCents,
			TotalCostCents:          it.TotalCostCents,
			TotalProfitCents:        it.TotalProfitCents,
			TotalClientPriceCents:   it.TotalClientPriceCents,
			MarginBps:               it.MarginBps,
		},

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.UrgencyNotifiedAt != "" {
		notifiedAt, err := time.Parse(time.RFC3339Nano, it.UrgencyNotifiedAt)
		if err == nil {
			p.UrgencyNotifiedAt = &notifiedAt
		}
	}
	return p
}
