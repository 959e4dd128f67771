package repository

import (
	"context"
	"time"

	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesShareIDIndex     = "share_id-index"
)

type quoteItem struct {
	ID             string `dynamodbav:"id"`
	EstimateID     string `dynamodbav:"estimate_id"`
	RecipientEmail string `dynamodbav:"recipient_email"`
	ShareID        string `dynamodbav:"share_id"`

	Snapshot estimateItem `dynamodbav:"snapshot"`

	Status               string `dynamodbav:"status"`
	AssumptionsConfirmed bool   `dynamodbav:"assumptions_confirmed"`
	PDFURL               string `dynamodbav:"pdf_url,omitempty"`

	CreatedAt  string `dynamodbav:"created_at"`
	ViewedAt   string `dynamodbav:"viewed_at,omitempty"`
	AcceptedAt string `dynamodbav:"accepted_at,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: share_id-index (PK: share_id)
//
// The estimate snapshot is embedded on the quote item, never joined back to
// the estimates table on read.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
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

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
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

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByShareID(ctx context.Context, shareID string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesShareIDIndex),
		KeyConditionExpression: aws.String("share_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: shareID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	items := make([]entities.Quote, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuoteItem(it))
		}
	}
	return items, nil
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                   q.ID,
		EstimateID:           q.EstimateID,
		RecipientEmail:       q.RecipientEmail,
		ShareID:              q.ShareID,
		Snapshot:             toEstimateItem(q.Snapshot),
		Status:               string(q.Status),
		AssumptionsConfirmed: q.AssumptionsConfirmed,
		PDFURL:               q.PDFURL,
		CreatedAt:            q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !q.ViewedAt.IsZero() {
		it.ViewedAt = q.ViewedAt.UTC().Format(time.RFC3339Nano)
	}
	if !q.AcceptedAt.IsZero() {
		it.AcceptedAt = q.AcceptedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var viewedAt, acceptedAt time.Time
	if it.ViewedAt != "" {
		viewedAt, _ = time.Parse(time.RFC3339Nano, it.ViewedAt)
	}
	if it.AcceptedAt != "" {
		acceptedAt, _ = time.Parse(time.RFC3339Nano, it.AcceptedAt)
	}
	return entities.Quote{
		ID:                   it.ID,
		EstimateID:           it.EstimateID,
		RecipientEmail:       it.RecipientEmail,
		ShareID:              it.ShareID,
		Snapshot:             fromEstimateItem(it.Snapshot),
		Status:               entities.QuoteStatus(it.Status),
		AssumptionsConfirmed: it.AssumptionsConfirmed,
		PDFURL:               it.PDFURL,
		CreatedAt:            createdAt,
		ViewedAt:             viewedAt,
		AcceptedAt:           acceptedAt,
	}
}
