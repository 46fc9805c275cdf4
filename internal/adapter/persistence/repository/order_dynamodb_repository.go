package repository

import (
	"context"
	"errors"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersBuyerIDIndex     = "buyer_id-index"
)

type orderLineRecord struct {
	ItemID   string `dynamodbav:"item_id"`
	Quantity int    `dynamodbav:"quantity"`
}

type orderRecord struct {
	ID           string            `dynamodbav:"id"`
	BuyerID      string            `dynamodbav:"buyer_id"`
	EventName    string            `dynamodbav:"event_name"`
	EventType    string            `dynamodbav:"event_type"`
	GuestCount   int               `dynamodbav:"guest_count"`
	StartTime    string            `dynamodbav:"start_time"`
	EndTime      string            `dynamodbav:"end_time"`
	EventDate    string            `dynamodbav:"event_date"`
	PurchaseDate string            `dynamodbav:"purchase_date"`
	Address      string            `dynamodbav:"address"`
	Status       string            `dynamodbav:"status"`
	Total        string            `dynamodbav:"total"`
	Items        []orderLineRecord `dynamodbav:"items"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists event orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buyer_id-index (PK: buyer_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, order entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderRecord(order))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return order, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, 64)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var rec orderRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderRecord(rec))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersBuyerIDIndex),
		KeyConditionExpression: aws.String("buyer_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: buyerID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec orderRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderRecord(rec))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func toOrderRecord(o entities.Order) orderRecord {
	lines := make([]orderLineRecord, 0, len(o.Items))
	for _, line := range o.Items {
		lines = append(lines, orderLineRecord{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	return orderRecord{
		ID:           o.ID,
		BuyerID:      o.BuyerID,
		EventName:    o.EventName,
		EventType:    o.EventType,
		GuestCount:   o.GuestCount,
		StartTime:    o.StartTime,
		EndTime:      o.EndTime,
		EventDate:    o.EventDate,
		PurchaseDate: o.PurchaseDate,
		Address:      o.Address,
		Status:       string(o.Status),
		Total:        floatToString(o.Total),
		Items:        lines,
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)

	lines := make([]entities.OrderItem, 0, len(rec.Items))
	for _, line := range rec.Items {
		lines = append(lines, entities.OrderItem{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	return entities.Order{
		ID:           rec.ID,
		BuyerID:      rec.BuyerID,
		EventName:    rec.EventName,
		EventType:    rec.EventType,
		GuestCount:   rec.GuestCount,
		StartTime:    rec.StartTime,
		EndTime:      rec.EndTime,
		EventDate:    rec.EventDate,
		PurchaseDate: rec.PurchaseDate,
		Address:      rec.Address,
		Status:       entities.OrderStatus(rec.Status),
		Total:        stringToFloat(rec.Total),
		Items:        lines,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
