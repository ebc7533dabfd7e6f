package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hvacworks/internal/domain/entities"
	"hvacworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultQuoteSnapshotsTableName = "quote_snapshots"

type quoteSnapshotItem struct {
	ID          string `dynamodbav:"id"`
	QuoteNumber string `dynamodbav:"quote_number"`
	DraftID     string `dynamodbav:"draft_id"`

	CustomerName    string `dynamodbav:"customer_name"`
	CustomerAddress string `dynamodbav:"customer_address"`
	CustomerPhone   string `dynamodbav:"customer_phone"`
	CustomerEmail   string `dynamodbav:"customer_email"`

	ItemsJSON       string `dynamodbav:"items_json"`
	LaborHours      string `dynamodbav:"labor_hours"`
	LaborRate       string `dynamodbav:"labor_rate"`
	AdjustmentsJSON string `dynamodbav:"adjustments_json"`
	TaxPercent      string `dynamodbav:"tax_percent"`

	MaterialsSubtotal      string `dynamodbav:"materials_subtotal"`
	LaborCost              string `dynamodbav:"labor_cost"`
	AppliedAdjustmentsJSON string `dynamodbav:"applied_adjustments_json"`
	TaxAmount              string `dynamodbav:"tax_amount"`
	Total                  string `dynamodbav:"total"`
	DepositAmount          string `dynamodbav:"deposit_amount,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteSnapshotDynamoRepository persists saved quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Create is condition-protected so a snapshot can never be overwritten;
// status is the only attribute UpdateStatusByID touches.

type QuoteSnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteSnapshotRepository = (*QuoteSnapshotDynamoRepository)(nil)

func NewQuoteSnapshotDynamoRepository(ddb *dynamodb.Client) *QuoteSnapshotDynamoRepository {
	return &QuoteSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_SNAPSHOTS_TABLE", defaultQuoteSnapshotsTableName),
	}
}

func (r *QuoteSnapshotDynamoRepository) Create(ctx context.Context, s entities.QuoteSnapshot) (entities.QuoteSnapshot, error) {
	it, err := toQuoteSnapshotItem(s)
	if err != nil {
		return entities.QuoteSnapshot{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteSnapshot{}, err
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
		return entities.QuoteSnapshot{}, err
	}
	return s, nil
}

func (r *QuoteSnapshotDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteSnapshot{}, nil
	}

	var it quoteSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteSnapshot{}, err
	}
	return fromQuoteSnapshotItem(it)
}

func (r *QuoteSnapshotDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.SnapshotStatus) (entities.QuoteSnapshot, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteSnapshot{}, nil
		}
		return entities.QuoteSnapshot{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteSnapshot{}, nil
	}

	var it quoteSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteSnapshot{}, err
	}
	return fromQuoteSnapshotItem(it)
}

func toQuoteSnapshotItem(s entities.QuoteSnapshot) (quoteSnapshotItem, error) {
	itemsJSON, err := json.Marshal(s.Items)
	if err != nil {
		return quoteSnapshotItem{}, err
	}
	adjustmentsJSON, err := json.Marshal(s.Adjustments)
	if err != nil {
		return quoteSnapshotItem{}, err
	}
	appliedJSON, err := json.Marshal(s.AppliedAdjustments)
	if err != nil {
		return quoteSnapshotItem{}, err
	}

	deposit := ""
	if s.DepositAmount != nil {
		deposit = s.DepositAmount.String()
	}

	return quoteSnapshotItem{
		ID:          s.ID,
		QuoteNumber: s.QuoteNumber,
		DraftID:     s.DraftID,

		CustomerName:    s.Customer.Name,
		CustomerAddress: s.Customer.Address,
		CustomerPhone:   s.Customer.Phone,
		CustomerEmail:   s.Customer.Email,

		ItemsJSON:       string(itemsJSON),
		LaborHours:      s.LaborHours.String(),
		LaborRate:       s.LaborRate.String(),
		AdjustmentsJSON: string(adjustmentsJSON),
		TaxPercent:      s.TaxPercent.String(),

		MaterialsSubtotal:      s.MaterialsSubtotal.String(),
		LaborCost:              s.LaborCost.String(),
		AppliedAdjustmentsJSON: string(appliedJSON),
		TaxAmount:              s.TaxAmount.String(),
		Total:                  s.Total.String(),
		DepositAmount:          deposit,

		Status:    string(s.Status),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteSnapshotItem(it quoteSnapshotItem) (entities.QuoteSnapshot, error) {
	var items []entities.LineItem
	if it.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(it.ItemsJSON), &items); err != nil {
			return entities.QuoteSnapshot{}, err
		}
	}
	var adjustments []entities.Adjustment
	if it.AdjustmentsJSON != "" {
		if err := json.Unmarshal([]byte(it.AdjustmentsJSON), &adjustments); err != nil {
			return entities.QuoteSnapshot{}, err
		}
	}
	var applied []entities.AppliedAdjustment
	if it.AppliedAdjustmentsJSON != "" {
		if err := json.Unmarshal([]byte(it.AppliedAdjustmentsJSON), &applied); err != nil {
			return entities.QuoteSnapshot{}, err
		}
	}

	s := entities.QuoteSnapshot{
		ID:          it.ID,
		QuoteNumber: it.QuoteNumber,
		DraftID:     it.DraftID,
		Customer: entities.CustomerInfo{
			Name:    it.CustomerName,
			Address: it.CustomerAddress,
			Phone:   it.CustomerPhone,
			Email:   it.CustomerEmail,
		},
		Items:              items,
		Adjustments:        adjustments,
		AppliedAdjustments: applied,
		Status:             entities.SnapshotStatus(it.Status),
	}

	var err error
	for _, field := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{it.LaborHours, &s.LaborHours},
		{it.LaborRate, &s.LaborRate},
		{it.TaxPercent, &s.TaxPercent},
		{it.MaterialsSubtotal, &s.MaterialsSubtotal},
		{it.LaborCost, &s.LaborCost},
		{it.TaxAmount, &s.TaxAmount},
		{it.Total, &s.Total},
	} {
		if *field.dst, err = parseDecimal(field.raw); err != nil {
			return entities.QuoteSnapshot{}, err
		}
	}

	if it.DepositAmount != "" {
		d, err := decimal.NewFromString(it.DepositAmount)
		if err != nil {
			return entities.QuoteSnapshot{}, err
		}
		s.DepositAmount = &d
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return s, nil
}
