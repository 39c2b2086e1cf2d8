package repository

import (
	"context"
	"sort"

	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesLeadIDIndex      = "lead_id-index"
)

type estimateItem struct {
	ID          string  `dynamodbav:"id"`
	LeadID      string  `dynamodbav:"lead_id,omitempty"`
	Status      string  `dynamodbav:"status"`
	TotalAmount float64 `dynamodbav:"total_amount"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository reads Estimate entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)
//
// The costing core never writes estimates; it only resolves approved ones
// by estimate link or lead link.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

// FindApproved returns approved estimates matching the estimate id or the
// lead id, ordered by creation time descending (id descending on ties).
func (r *EstimateDynamoRepository) FindApproved(ctx context.Context, estimateID, leadID string) ([]entities.Estimate, error) {
	matches := make([]entities.Estimate, 0, 2)
	seen := make(map[string]bool)

	if estimateID != "" {
		e, err := r.getByID(ctx, estimateID)
		if err != nil {
			return nil, err
		}
		if e.ID != "" && e.Status == entities.EstimateStatusApproved {
			matches = append(matches, e)
			seen[e.ID] = true
		}
	}

	if leadID != "" {
		byLead, err := r.queryApprovedByLeadID(ctx, leadID)
		if err != nil {
			return nil, err
		}
		for _, e := range byLead {
			if !seen[e.ID] {
				matches = append(matches, e)
				seen[e.ID] = true
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID > matches[j].ID
	})
	return matches, nil
}

func (r *EstimateDynamoRepository) getByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) queryApprovedByLeadID(ctx context.Context, leadID string) ([]entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		FilterExpression:       aws.String("#status = :approved"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid":      &types.AttributeValueMemberS{Value: leadID},
			":approved": &types.AttributeValueMemberS{Value: string(entities.EstimateStatusApproved)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Estimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEstimateItem(it))
	}
	return items, nil
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:          it.ID,
		LeadID:      it.LeadID,
		Status:      entities.EstimateStatus(it.Status),
		TotalAmount: it.TotalAmount,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
