package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "order_items"

// metaItemID is the sentinel row holding the session labels. It never appears
// in GetAll results.
const metaItemID = "__order_meta__"

type orderItemRecord struct {
	ID      string `dynamodbav:"id"`
	Payload []byte `dynamodbav:"payload"`
	TS      int64  `dynamodbav:"ts"`
}

type orderMetaRecord struct {
	ID          string `dynamodbav:"id"`
	ProjectName string `dynamodbav:"project_name"`
	ZoneName    string `dynamodbav:"zone_name"`
}

// DynamoItemStore is the hosted variant of the large-capacity backend.
//
// Table requirements:
//   - PK: id (string)
//
// Items are stored as their JSON payload plus a ts attribute used to restore
// insertion order on read.
type DynamoItemStore struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IItemStore = (*DynamoItemStore)(nil)

func NewDynamoItemStore(ddb *dynamodb.Client) *DynamoItemStore {
	return &DynamoItemStore{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		now:       time.Now,
	}
}

func (r *DynamoItemStore) Add(ctx context.Context, item entities.OrderItem) error {
	item.Quantity = entities.ClampQuantity(item.Quantity)
	payload, err := marshalItemPayload(item)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(orderItemRecord{
		ID:      item.ID,
		Payload: payload,
		TS:      r.now().UnixNano(),
	})
	if err != nil {
		return err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrDuplicateItemID
		}
		return err
	}
	return nil
}

func (r *DynamoItemStore) Update(ctx context.Context, item entities.OrderItem) error {
	item.Quantity = entities.ClampQuantity(item.Quantity)
	payload, err := marshalItemPayload(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: item.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #payload = :payload"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#payload": "payload",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payload": &types.AttributeValueMemberB{Value: payload},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func (r *DynamoItemStore) Remove(ctx context.Context, id string) error {
	// DeleteItem on an absent key succeeds, matching the no-op contract.
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *DynamoItemStore) Get(ctx context.Context, id string) (entities.OrderItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderItem{}, nil
	}
	var rec orderItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.OrderItem{}, err
	}
	return unmarshalItemPayload(rec.Payload)
}

func (r *DynamoItemStore) GetAll(ctx context.Context) ([]entities.OrderItem, error) {
	var recs []orderItemRecord
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []orderItemRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		recs = append(recs, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(recs, func(i, j int) bool { return recs[i].TS < recs[j].TS })

	items := make([]entities.OrderItem, 0, len(recs))
	for _, rec := range recs {
		if rec.ID == metaItemID {
			continue
		}
		item, err := unmarshalItemPayload(rec.Payload)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *DynamoItemStore) Clear(ctx context.Context) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := r.Remove(ctx, item.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *DynamoItemStore) EstimateUsage(ctx context.Context) (entities.UsageEstimate, error) {
	out, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil || out.Table == nil {
		// Advisory only.
		return entities.UsageEstimate{}, nil
	}
	est := entities.UsageEstimate{}
	if out.Table.TableSizeBytes != nil {
		est.UsedBytes = *out.Table.TableSizeBytes
	}
	if out.Table.ItemCount != nil {
		est.ItemCount = int(*out.Table.ItemCount)
	}
	return est, nil
}

func (r *DynamoItemStore) SaveNames(ctx context.Context, projectName, zoneName string) error {
	av, err := attributevalue.MarshalMap(orderMetaRecord{
		ID:          metaItemID,
		ProjectName: projectName,
		ZoneName:    zoneName,
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DynamoItemStore) LoadNames(ctx context.Context) (string, string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: metaItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", "", err
	}
	if len(out.Item) == 0 {
		return "", "", nil
	}
	var rec orderMetaRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return "", "", err
	}
	return rec.ProjectName, rec.ZoneName, nil
}
