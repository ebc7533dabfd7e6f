package repository

import (
	"context"
	"encoding/json"
	"time"

	"hvacworks/internal/domain/entities"
	"hvacworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuoteDraftsTableName = "quote_drafts"

type quoteDraftItem struct {
	ID              string `dynamodbav:"id"`
	ItemsJSON       string `dynamodbav:"items_json"`
	LaborHours      string `dynamodbav:"labor_hours"`
	LaborRate       string `dynamodbav:"labor_rate"`
	LaborMode       string `dynamodbav:"labor_mode"`
	AdjustmentsJSON string `dynamodbav:"adjustments_json"`
	TaxPercent      string `dynamodbav:"tax_percent"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// QuoteDraftDynamoRepository persists working quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items and adjustments are stored as JSON documents inside the item;
// decimal fields are stored as exact strings so no precision is lost on the
// round trip.

type QuoteDraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteDraftRepository = (*QuoteDraftDynamoRepository)(nil)

func NewQuoteDraftDynamoRepository(ddb *dynamodb.Client) *QuoteDraftDynamoRepository {
	return &QuoteDraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_DRAFTS_TABLE", defaultQuoteDraftsTableName),
	}
}

func (r *QuoteDraftDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteDraftItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteDraftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteDraftItem(it)
}

// Save writes the whole draft document. Drafts are session-owned, so a plain
// overwrite is safe.
func (r *QuoteDraftDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteDraftItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDraftDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuoteDraftItem(q entities.Quote) (quoteDraftItem, error) {
	itemsJSON, err := json.Marshal(q.Items)
	if err != nil {
		return quoteDraftItem{}, err
	}
	adjustmentsJSON, err := json.Marshal(q.Adjustments)
	if err != nil {
		return quoteDraftItem{}, err
	}
	return quoteDraftItem{
		ID:              q.ID,
		ItemsJSON:       string(itemsJSON),
		LaborHours:      q.LaborHours.String(),
		LaborRate:       q.LaborRate.String(),
		LaborMode:       string(q.LaborMode),
		AdjustmentsJSON: string(adjustmentsJSON),
		TaxPercent:      q.TaxPercent.String(),
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteDraftItem(it quoteDraftItem) (entities.Quote, error) {
	var items []entities.LineItem
	if it.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(it.ItemsJSON), &items); err != nil {
			return entities.Quote{}, err
		}
	}
	var adjustments []entities.Adjustment
	if it.AdjustmentsJSON != "" {
		if err := json.Unmarshal([]byte(it.AdjustmentsJSON), &adjustments); err != nil {
			return entities.Quote{}, err
		}
	}

	laborHours, err := parseDecimal(it.LaborHours)
	if err != nil {
		return entities.Quote{}, err
	}
	laborRate, err := parseDecimal(it.LaborRate)
	if err != nil {
		return entities.Quote{}, err
	}
	taxPercent, err := parseDecimal(it.TaxPercent)
	if err != nil {
		return entities.Quote{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:          it.ID,
		Items:       items,
		LaborHours:  laborHours,
		LaborRate:   laborRate,
		LaborMode:   entities.LaborMode(it.LaborMode),
		Adjustments: adjustments,
		TaxPercent:  taxPercent,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
