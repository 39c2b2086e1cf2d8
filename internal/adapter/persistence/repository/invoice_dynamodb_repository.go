package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fieldserve_costing/internal/domain/entities"
	"fieldserve_costing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesJobIDIndex       = "job_id-index"
)

type invoiceItem struct {
	ID                string  `dynamodbav:"id"`
	JobID             string  `dynamodbav:"job_id"`
	TotalAmount       float64 `dynamodbav:"total_amount"`
	PaymentStatus     string  `dynamodbav:"payment_status"`
	PaidAt            string  `dynamodbav:"paid_at,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
	GatewayPayloadRaw string  `dynamodbav:"gateway_payload_raw,omitempty"`
}

// InvoiceDynamoRepository reads Invoice entities from DynamoDB and applies
// the single write this core owns: marking an invoice paid after gateway
// approval.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListPaidByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		FilterExpression:       aws.String("payment_status = :paid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid":  &types.AttributeValueMemberS{Value: jobID},
			":paid": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func (r *InvoiceDynamoRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time, gatewayPayload json.RawMessage) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET payment_status = :paid, paid_at = :paid_at, gateway_payload_raw = :payload, updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":paid_at":    &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
			":payload":    &types.AttributeValueMemberS{Value: string(gatewayPayload)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:            it.ID,
		JobID:         it.JobID,
		TotalAmount:   it.TotalAmount,
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.PaidAt != "" {
		t := parseTime(it.PaidAt)
		inv.PaidAt = &t
	}
	if it.GatewayPayloadRaw != "" {
		inv.GatewayPayloadRaw = []byte(it.GatewayPayloadRaw)
	}
	return inv
}
