package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultItemsTableName = "items"

type itemRecord struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Price       int64  `dynamodbav:"price"`
	Category    string `dynamodbav:"category"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	Available   bool   `dynamodbav:"available"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ItemDynamoRepository persists catalog items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small (tens of items) and read through a cached use case, so
// List is a plain Scan.

type ItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IItemRepository = (*ItemDynamoRepository)(nil)

func NewItemDynamoRepository(ddb *dynamodb.Client) *ItemDynamoRepository {
	return &ItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ItemDynamoRepository) Create(ctx context.Context, item entities.Item) (entities.Item, error) {
	av, err := attributevalue.MarshalMap(toItemRecord(item))
	if err != nil {
		return entities.Item{}, err
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
		return entities.Item{}, err
	}
	return item, nil
}

func (r *ItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Item, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Item{}, err
	}
	if len(out.Item) == 0 {
		return entities.Item{}, nil
	}

	var rec itemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Item{}, err
	}
	return fromItemRecord(rec), nil
}

func (r *ItemDynamoRepository) List(ctx context.Context) ([]entities.Item, error) {
	items := make([]entities.Item, 0, 64)
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
			var rec itemRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			items = append(items, fromItemRecord(rec))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *ItemDynamoRepository) Update(ctx context.Context, item entities.Item) (entities.Item, error) {
	return r.update(ctx, item.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #description = :description, #price = :price, #category = :category, #image_url = :image_url, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":description": &types.AttributeValueMemberS{Value: item.Description},
			":price":       &types.AttributeValueMemberN{Value: strconv.FormatInt(item.Price, 10)},
			":category":    &types.AttributeValueMemberS{Value: string(item.Category)},
			":image_url":   &types.AttributeValueMemberS{Value: item.ImageURL},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#description": "description",
			"#price":       "price",
			"#category":    "category",
			"#image_url":   "image_url",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ItemDynamoRepository) SetAvailability(ctx context.Context, id string, available bool) (entities.Item, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #available = :available, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":available":  &types.AttributeValueMemberBOOL{Value: available},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#available":  "available",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ItemDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Item, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Item{}, nil
		}
		return entities.Item{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Item{}, nil
	}
	var rec itemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Item{}, err
	}
	return fromItemRecord(rec), nil
}

func toItemRecord(item entities.Item) itemRecord {
	return itemRecord{
		ID:          item.ID,
		Description: item.Description,
		Price:       item.Price,
		Category:    string(item.Category),
		ImageURL:    item.ImageURL,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   item.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromItemRecord(rec itemRecord) entities.Item {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	return entities.Item{
		ID:          rec.ID,
		Description: rec.Description,
		Price:       rec.Price,
		Category:    entities.ItemCategory(rec.Category),
		ImageURL:    rec.ImageURL,
		Available:   rec.Available,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
