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

const defaultQuotationsTableName = "supplier_quotations"

type quotationItem struct {
	ID         string `dynamodbav:"id"`
	ProjectID  string `dynamodbav:"project_id"`
	SupplierID string `dynamodbav:"supplier_id"`

	EquipmentItemIDs []string `dynamodbav:"equipment_item_ids"`

	Status string `dynamodbav:"status"`

	TotalPriceCents  *int64 `dynamodbav:"total_price_cents,omitempty"`
	UnitPriceCents   *int64 `dynamodbav:"unit_price_cents,omitempty"`
	DeliveryFeeCents *int64 `dynamodbav:"delivery_fee_cents,omitempty"`
	SetupFeeCents    *int64 `dynamodbav:"setup_fee_cents,omitempty"`

	ValidUntil  string `dynamodbav:"valid_until,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	SubmittedAt string `dynamodbav:"submitted_at,omitempty"`
	RespondedAt string `dynamodbav:"responded_at,omitempty"`
}

// QuotationDynamoRepository persists supplier quotations in DynamoDB.
//
// Every status transition is a conditional update keyed on the current
// status, so two concurrent transitions can never both win: the loser's
// ConditionalCheckFailedException surfaces as a zero-value entity with a
// nil error, which the use case maps to the proper conflict error.
type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectIDIndexName),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotations := make([]entities.Quotation, 0, len(out.Items))
	for _, item := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotations = append(quotations, fromQuotationItem(it))
	}
	return quotations, nil
}

// MarkSubmitted stamps the supplier prices and moves pending -> submitted.
func (r *QuotationDynamoRepository) MarkSubmitted(ctx context.Context, id string, prices entities.Quotation) (entities.Quotation, error) {
	now := time.Now().UTC()

	names := map[string]string{
		"#status":       "status",
		"#submitted_at": "submitted_at",
	}
	values := map[string]types.AttributeValue{
		":pending":      &types.AttributeValueMemberS{Value: string(entities.QuotationStatusPending)},
		":submitted":    &types.AttributeValueMemberS{Value: string(entities.QuotationStatusSubmitted)},
		":submitted_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
	}
	update := "SET #status = :submitted, #submitted_at = :submitted_at"

	if prices.UnitPriceCents != nil {
		names["#unit_price"] = "unit_price_cents"
		values[":unit_price"] = numberAttr(*prices.UnitPriceCents)
		update += ", #unit_price = :unit_price"
	}
	if prices.TotalPriceCents != nil {
		names["#total_price"] = "total_price_cents"
		values[":total_price"] = numberAttr(*prices.TotalPriceCents)
		update += ", #total_price = :total_price"
	}
	if prices.DeliveryFeeCents != nil {
		names["#delivery_fee"] = "delivery_fee_cents"
		values[":delivery_fee"] = numberAttr(*prices.DeliveryFeeCents)
		update += ", #delivery_fee = :delivery_fee"
	}
	if prices.SetupFeeCents != nil {
		names["#setup_fee"] = "setup_fee_cents"
		values[":setup_fee"] = numberAttr(*prices.SetupFeeCents)
		update += ", #setup_fee = :setup_fee"
	}
	if prices.ValidUntil != nil {
		names["#valid_until"] = "valid_until"
		values[":valid_until"] = &types.AttributeValueMemberS{Value: prices.ValidUntil.UTC().Format(time.RFC3339Nano)}
		update += ", #valid_until = :valid_until"
	}

	return r.transition(ctx, id, update, "#status = :pending", names, values)
}

// MarkAccepted moves submitted -> accepted.
func (r *QuotationDynamoRepository) MarkAccepted(ctx context.Context, id string) (entities.Quotation, error) {
	return r.respond(ctx, id, entities.QuotationStatusSubmitted, entities.QuotationStatusAccepted)
}

// MarkRejected moves a pending or submitted quotation to rejected.
func (r *QuotationDynamoRepository) MarkRejected(ctx context.Context, id string) (entities.Quotation, error) {
	names := map[string]string{
		"#status":       "status",
		"#responded_at": "responded_at",
	}
	values := map[string]types.AttributeValue{
		":pending":      &types.AttributeValueMemberS{Value: string(entities.QuotationStatusPending)},
		":submitted":    &types.AttributeValueMemberS{Value: string(entities.QuotationStatusSubmitted)},
		":rejected":     &types.AttributeValueMemberS{Value: string(entities.QuotationStatusRejected)},
		":responded_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	update := "SET #status = :rejected, #responded_at = :responded_at"
	condition := "#status = :pending OR #status = :submitted"

	return r.transition(ctx, id, update, condition, names, values)
}

// MarkSuperseded forces a non-terminal competitor out of the running
// after another quotation covering the same lines was accepted.
func (r *QuotationDynamoRepository) MarkSuperseded(ctx context.Context, id string) (entities.Quotation, error) {
	names := map[string]string{
		"#status":       "status",
		"#responded_at": "responded_at",
	}
	values := map[string]types.AttributeValue{
		":superseded":   &types.AttributeValueMemberS{Value: string(entities.QuotationStatusSuperseded)},
		":accepted":     &types.AttributeValueMemberS{Value: string(entities.QuotationStatusAccepted)},
		":rejected":     &types.AttributeValueMemberS{Value: string(entities.QuotationStatusRejected)},
		":responded_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	update := "SET #status = :superseded, #responded_at = :responded_at"
	condition := "attribute_exists(id) AND #status <> :accepted AND #status <> :rejected AND #status <> :superseded"

	return r.transition(ctx, id, update, condition, names, values)
}

func (r *QuotationDynamoRepository) respond(ctx context.Context, id string, from, to entities.QuotationStatus) (entities.Quotation, error) {
	names := map[string]string{
		"#status":       "status",
		"#responded_at": "responded_at",
	}
	values := map[string]types.AttributeValue{
		":from":         &types.AttributeValueMemberS{Value: string(from)},
		":to":           &types.AttributeValueMemberS{Value: string(to)},
		":responded_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	update := "SET #status = :to, #responded_at = :responded_at"

	return r.transition(ctx, id, update, "#status = :from", names, values)
}

func (r *QuotationDynamoRepository) transition(ctx context.Context, id, update, condition string, names map[string]string, values map[string]types.AttributeValue) (entities.Quotation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(update),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:         q.ID,
		ProjectID:  q.ProjectID,
		SupplierID: q.SupplierID,

		EquipmentItemIDs: q.EquipmentItemIDs,

		Status: string(q.Status),

		TotalPriceCents:  q.TotalPriceCents,
		UnitPriceCents:   q.UnitPriceCents,
		DeliveryFeeCents: q.DeliveryFeeCents,
		SetupFeeCents:    q.SetupFeeCents,

		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.ValidUntil != nil {
		it.ValidUntil = q.ValidUntil.UTC().Format(time.RFC3339Nano)
	}
	if q.SubmittedAt != nil {
		it.SubmittedAt = q.SubmittedAt.UTC().Format(time.RFC3339Nano)
	}
	if q.RespondedAt != nil {
		it.RespondedAt = q.RespondedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	q := entities.Quotation{
		ID:         it.ID,
		ProjectID:  it.ProjectID,
		SupplierID: it.SupplierID,

		EquipmentItemIDs: it.EquipmentItemIDs,

		Status: entities.QuotationStatus(it.Status),

		TotalPriceCents:  it.TotalPriceCents,
		UnitPriceCents:   it.UnitPriceCents,
		DeliveryFeeCents: it.DeliveryFeeCents,
		SetupFeeCents:    it.SetupFeeCents,

		CreatedAt: createdAt,
	}
	q.ValidUntil = parseTimePtr(it.ValidUntil)
	q.SubmittedAt = parseTimePtr(it.SubmittedAt)
	q.RespondedAt = parseTimePtr(it.RespondedAt)
	return q
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
