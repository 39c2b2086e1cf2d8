package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID                   string  `dynamodbav:"id"`
	Title                string  `dynamodbav:"title"`
	Status               string  `dynamodbav:"status"`
	StartDate            string  `dynamodbav:"start_date,omitempty"`
	EstimatedHours       float64 `dynamodbav:"estimated_hours"`
	ActualHours          float64 `dynamodbav:"actual_hours"`
	EstimatedCost        float64 `dynamodbav:"estimated_cost"`
	ActualCost           float64 `dynamodbav:"actual_cost"`
	ContractPrice        float64 `dynamodbav:"contract_price"`
	CompletionPercentage float64 `dynamodbav:"completion_percentage"`
	EstimateID           string  `dynamodbav:"estimate_id,omitempty"`
	LeadID               string  `dynamodbav:"lead_id,omitempty"`
	CreatedAt            string  `dynamodbav:"created_at"`
	UpdatedAt            string  `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The costing core only ever writes two job fields (actual_cost and
// contract_price); both writes go through targeted update expressions so
// concurrent edits from the owning application are not clobbered.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) UpdateActualCost(ctx context.Context, id string, actualCost float64) (entities.Job, error) {
	return r.updateField(ctx, id, "actual_cost", actualCost)
}

func (r *JobDynamoRepository) UpdateContractPrice(ctx context.Context, id string, contractPrice float64) (entities.Job, error) {
	return r.updateField(ctx, id, "contract_price", contractPrice)
}

func (r *JobDynamoRepository) updateField(ctx context.Context, id, field string, value float64) (entities.Job, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #field = :value, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value":      &types.AttributeValueMemberN{Value: strconv.FormatFloat(value, 'f', -1, 64)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#field":      field,
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListMissingContractPrice(ctx context.Context) ([]entities.Job, error) {
	jobs := make([]entities.Job, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("attribute_not_exists(contract_price) OR contract_price = :zero"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":zero": &types.AttributeValueMemberN{Value: "0"},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return jobs, nil
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:                   it.ID,
		Title:                it.Title,
		Status:               entities.JobStatus(it.Status),
		StartDate:            parseTime(it.StartDate),
		EstimatedHours:       it.EstimatedHours,
		ActualHours:          it.ActualHours,
		EstimatedCost:        it.EstimatedCost,
		ActualCost:           it.ActualCost,
		ContractPrice:        it.ContractPrice,
		CompletionPercentage: it.CompletionPercentage,
		EstimateID:           it.EstimateID,
		LeadID:               it.LeadID,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
