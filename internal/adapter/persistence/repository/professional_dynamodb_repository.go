package repository

import (
	"context"

	"hrx_backoffice/internal/domain/matching"
	"hrx_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProfessionalsTableName = "professionals"

	approvalStatusIndexName = "approval_status-index"
	approvalStatusApproved  = "approved"
)

type professionalItem struct {
	ID         string   `dynamodbav:"id"`
	FullName   string   `dynamodbav:"full_name"`
	Email      string   `dynamodbav:"email,omitempty"`
	Phone      string   `dynamodbav:"phone,omitempty"`
	Categories []string `dynamodbav:"categories,omitempty"`
	City       string   `dynamodbav:"city,omitempty"`
	State      string   `dynamodbav:"state,omitempty"`
	Latitude   float64  `dynamodbav:"latitude,omitempty"`
	Longitude  float64  `dynamodbav:"longitude,omitempty"`

	ApprovalStatus    string   `dynamodbav:"approval_status"`
	YearsOfExperience int      `dynamodbav:"years_of_experience"`
	BusyDates         []string `dynamodbav:"busy_dates,omitempty"`
	PerformanceRating float64  `dynamodbav:"performance_rating"`
}

// ProfessionalDynamoRepository reads the approved-professional pool that
// feeds team suggestions. Registration and approval are owned by another
// service; this repository only consumes the table.
type ProfessionalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfessionalRepository = (*ProfessionalDynamoRepository)(nil)

func NewProfessionalDynamoRepository(ddb *dynamodb.Client) *ProfessionalDynamoRepository {
	return &ProfessionalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFESSIONALS_TABLE", defaultProfessionalsTableName),
	}
}

// ListApproved returns every approved professional as a scoring
// candidate. Availability on eventDate is derived from the stored busy
// dates; an empty eventDate marks everyone available.
func (r *ProfessionalDynamoRepository) ListApproved(ctx context.Context, eventDate string) ([]matching.Candidate, error) {
	candidates := make([]matching.Candidate, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(approvalStatusIndexName),
			KeyConditionExpression: aws.String("approval_status = :approved"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":approved": &types.AttributeValueMemberS{Value: approvalStatusApproved},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it professionalItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			candidates = append(candidates, fromProfessionalItem(it, eventDate))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return candidates, nil
}

func fromProfessionalItem(it professionalItem, eventDate string) matching.Candidate {
	available := true
	if eventDate != "" {
		for _, d := range it.BusyDates {
			if d == eventDate {
				available = false
				break
			}
		}
	}

	return matching.Candidate{
		ID:         it.ID,
		FullName:   it.FullName,
		Email:      it.Email,
		Phone:      it.Phone,
		Categories: it.Categories,
		City:       it.City,
		State:      it.State,
		Latitude:   it.Latitude,
		Longitude:  it.Longitude,

		YearsOfExperience: it.YearsOfExperience,
		AvailableOnDate:   available,
		PerformanceRating: it.PerformanceRating,
	}
}
