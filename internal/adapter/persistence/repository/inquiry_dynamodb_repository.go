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

const defaultInquiriesTableName = "inquiries"

type inquiryItem struct {
	ID          string   `dynamodbav:"id"`
	Description string   `dynamodbav:"description"`
	UserType    string   `dynamodbav:"user_type"`
	Timeline    string   `dynamodbav:"timeline"`
	Email       string   `dynamodbav:"email"`
	Name        string   `dynamodbav:"name,omitempty"`
	RoughMin    int      `dynamodbav:"rough_min"`
	RoughMax    int      `dynamodbav:"rough_max"`
	Keywords    []string `dynamodbav:"keywords,omitempty"`
	Status      string   `dynamodbav:"status"`
	ReviewNotes string   `dynamodbav:"review_notes,omitempty"`
	ActualQuote float64  `dynamodbav:"actual_quote,omitempty"`
	EstimateID  string   `dynamodbav:"estimate_id,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
	ReviewedAt  string   `dynamodbav:"reviewed_at,omitempty"`
}

// InquiryDynamoRepository persists Inquiry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table stays small (a handful of inquiries a week), so List is a Scan
// with an optional status filter rather than a status GSI.

type InquiryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb *dynamodb.Client) *InquiryDynamoRepository {
	return &InquiryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INQUIRIES_TABLE", defaultInquiriesTableName),
	}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	it := toInquiryItem(i)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Inquiry{}, err
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
		return entities.Inquiry{}, err
	}
	return i, nil
}

func (r *InquiryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inquiry{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inquiry{}, nil
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inquiry{}, err
	}
	return fromInquiryItem(it), nil
}

func (r *InquiryDynamoRepository) List(ctx context.Context, status entities.InquiryStatus) ([]entities.Inquiry, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	items := make([]entities.Inquiry, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it inquiryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInquiryItem(it))
		}
	}
	return items, nil
}

func (r *InquiryDynamoRepository) Save(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	it := toInquiryItem(i)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Inquiry{}, err
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
		return entities.Inquiry{}, err
	}
	return i, nil
}

func toInquiryItem(i entities.Inquiry) inquiryItem {
	it := inquiryItem{
		ID:          i.ID,
		Description: i.Description,
		UserType:    string(i.UserType),
		Timeline:    string(i.Timeline),
		Email:       i.Email,
		Name:        i.Name,
		RoughMin:    i.RoughMin,
		RoughMax:    i.RoughMax,
		Keywords:    i.Keywords,
		Status:      string(i.Status),
		ReviewNotes: i.ReviewNotes,
		ActualQuote: i.ActualQuote,
		EstimateID:  i.EstimateID,
		CreatedAt:   i.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !i.ReviewedAt.IsZero() {
		it.ReviewedAt = i.ReviewedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInquiryItem(it inquiryItem) entities.Inquiry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var reviewedAt time.Time
	if it.ReviewedAt != "" {
		reviewedAt, _ = time.Parse(time.RFC3339Nano, it.ReviewedAt)
	}
	return entities.Inquiry{
		ID:          it.ID,
		Description: it.Description,
		UserType:    entities.UserType(it.UserType),
		Timeline:    entities.Timeline(it.Timeline),
		Email:       it.Email,
		Name:        it.Name,
		RoughMin:    it.RoughMin,
		RoughMax:    it.RoughMax,
		Keywords:    it.Keywords,
		Status:      entities.InquiryStatus(it.Status),
		ReviewNotes: it.ReviewNotes,
		ActualQuote: it.ActualQuote,
		EstimateID:  it.EstimateID,
		CreatedAt:   createdAt,
		ReviewedAt:  reviewedAt,
	}
}
