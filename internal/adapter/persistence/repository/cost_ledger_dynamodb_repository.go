package repository

import (
	"context"

	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobCostsTableName = "job_costs"
	jobCostsJobIDIndex       = "job_id-index"
)

type costEntryItem struct {
	ID          string  `dynamodbav:"id"`
	JobID       string  `dynamodbav:"job_id"`
	CostType    string  `dynamodbav:"cost_type"`
	Subtype     string  `dynamodbav:"subtype,omitempty"`
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	UnitCost    float64 `dynamodbav:"unit_cost"`
	TotalCost   float64 `dynamodbav:"total_cost"`
	CostDate    string  `dynamodbav:"cost_date"`
	Vendor      string  `dynamodbav:"vendor,omitempty"`
	MarkupPct   float64 `dynamodbav:"markup_pct,omitempty"`
	MarkupType  string  `dynamodbav:"markup_type,omitempty"`
	ApprovedBy  string  `dynamodbav:"approved_by,omitempty"`
	ApprovedAt  string  `dynamodbav:"approved_at,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// CostLedgerDynamoRepository persists CostEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type CostLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostLedgerRepository = (*CostLedgerDynamoRepository)(nil)

func NewCostLedgerDynamoRepository(ddb *dynamodb.Client) *CostLedgerDynamoRepository {
	return &CostLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_COSTS_TABLE", defaultJobCostsTableName),
	}
}

func (r *CostLedgerDynamoRepository) Create(ctx context.Context, e entities.CostEntry) (entities.CostEntry, error) {
	av, err := attributevalue.MarshalMap(toCostEntryItem(e))
	if err != nil {
		return entities.CostEntry{}, err
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
		return entities.CostEntry{}, err
	}
	return e, nil
}

func (r *CostLedgerDynamoRepository) Update(ctx context.Context, e entities.CostEntry) (entities.CostEntry, error) {
	av, err := attributevalue.MarshalMap(toCostEntryItem(e))
	if err != nil {
		return entities.CostEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CostEntry{}, err
	}
	return e, nil
}

func (r *CostLedgerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *CostLedgerDynamoRepository) GetByID(ctx context.Context, id string) (entities.CostEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostEntry{}, nil
	}

	var it costEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostEntry{}, err
	}
	return fromCostEntryItem(it), nil
}

func (r *CostLedgerDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.CostEntry, error) {
	entries := make([]entities.CostEntry, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(jobCostsJobIDIndex),
			KeyConditionExpression: aws.String("job_id = :jid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":jid": &types.AttributeValueMemberS{Value: jobID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it costEntryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromCostEntryItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func toCostEntryItem(e entities.CostEntry) costEntryItem {
	it := costEntryItem{
		ID:          e.ID,
		JobID:       e.JobID,
		CostType:    string(e.CostType),
		Subtype:     e.Subtype,
		Description: e.Description,
		Quantity:    e.Quantity,
		UnitCost:    e.UnitCost,
		TotalCost:   e.TotalCost,
		CostDate:    formatTime(e.CostDate),
		Vendor:      e.Vendor,
		MarkupPct:   e.MarkupPct,
		MarkupType:  string(e.MarkupType),
		ApprovedBy:  e.ApprovedBy,
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
	if e.ApprovedAt != nil {
		it.ApprovedAt = formatTime(*e.ApprovedAt)
	}
	return it
}

func fromCostEntryItem(it costEntryItem) entities.CostEntry {
	e := entities.CostEntry{
		ID:          it.ID,
		JobID:       it.JobID,
		CostType:    entities.CostType(it.CostType),
		Subtype:     it.Subtype,
		Description: it.Description,
		Quantity:    it.Quantity,
		UnitCost:    it.UnitCost,
		TotalCost:   it.TotalCost,
		CostDate:    parseTime(it.CostDate),
		Vendor:      it.Vendor,
		MarkupPct:   it.MarkupPct,
		MarkupType:  entities.MarkupType(it.MarkupType),
		ApprovedBy:  it.ApprovedBy,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.ApprovedAt != "" {
		t := parseTime(it.ApprovedAt)
		e.ApprovedAt = &t
	}
	return e
}
