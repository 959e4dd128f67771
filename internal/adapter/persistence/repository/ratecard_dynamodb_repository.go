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

const defaultRateCardsTableName = "rate_cards"

type rateCardItem struct {
	ID           string  `dynamodbav:"id"`
	Name         string  `dynamodbav:"name"`
	HourlyRate   float64 `dynamodbav:"hourly_rate"`
	TokenRateIn  float64 `dynamodbav:"token_rate_in"`
	TokenRateOut float64 `dynamodbav:"token_rate_out"`
	MarkupFactor float64 `dynamodbav:"markup_factor"`
	IsActive     bool    `dynamodbav:"is_active"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// RateCardDynamoRepository persists RateCard entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Activate flips every other card off and the target on inside a single
// TransactWriteItems call, so concurrent activations cannot leave two active
// cards behind. The table holds a handful of cards at most, so deactivating
// all of them and scanning for the active one both stay cheap.

type RateCardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateCardRepository = (*RateCardDynamoRepository)(nil)

func NewRateCardDynamoRepository(ddb *dynamodb.Client) *RateCardDynamoRepository {
	return &RateCardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_CARDS_TABLE", defaultRateCardsTableName),
	}
}

func (r *RateCardDynamoRepository) Create(ctx context.Context, rc entities.RateCard) (entities.RateCard, error) {
	it := toRateCardItem(rc)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RateCard{}, err
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
		return entities.RateCard{}, err
	}
	return rc, nil
}

func (r *RateCardDynamoRepository) List(ctx context.Context) ([]entities.RateCard, error) {
	items := make([]entities.RateCard, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it rateCardItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRateCardItem(it))
		}
	}
	return items, nil
}

func (r *RateCardDynamoRepository) GetActive(ctx context.Context) (entities.RateCard, error) {
	cards, err := r.List(ctx)
	if err != nil {
		return entities.RateCard{}, err
	}
	for _, rc := range cards {
		if rc.IsActive {
			return rc, nil
		}
	}
	return entities.RateCard{}, nil
}

func (r *RateCardDynamoRepository) Activate(ctx context.Context, id string) (entities.RateCard, error) {
	cards, err := r.List(ctx)
	if err != nil {
		return entities.RateCard{}, err
	}

	var target *entities.RateCard
	for i := range cards {
		if cards[i].ID == id {
			target = &cards[i]
		}
	}
	if target == nil {
		return entities.RateCard{}, nil
	}

	now := time.Now().UTC()

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: activationWrites(r.tableName, cards, id, now.Format(time.RFC3339Nano)),
	}); err != nil {
		return entities.RateCard{}, err
	}

	activated := *target
	activated.IsActive = true
	activated.UpdatedAt = now
	return activated, nil
}

// activationWrites builds one transaction that turns the target card on and
// every other card off. Deactivation covers all other cards, not just the
// ones that read as active: two racing activations of different targets then
// always touch each other's target item, so one transaction loses and the
// table never ends up with two active cards.
func activationWrites(tableName string, cards []entities.RateCard, id, nowStr string) []types.TransactWriteItem {
	writes := make([]types.TransactWriteItem, 0, len(cards))
	for _, rc := range cards {
		if rc.ID == id {
			continue
		}
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: rc.ID},
				},
				UpdateExpression: aws.String("SET #is_active = :off, #updated_at = :updated_at"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":off":        &types.AttributeValueMemberBOOL{Value: false},
					":updated_at": &types.AttributeValueMemberS{Value: nowStr},
				},
				ExpressionAttributeNames: map[string]string{
					"#is_active":  "is_active",
					"#updated_at": "updated_at",
				},
			},
		})
	}
	writes = append(writes, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #is_active = :on, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":on":         &types.AttributeValueMemberBOOL{Value: true},
				":updated_at": &types.AttributeValueMemberS{Value: nowStr},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#is_active":  "is_active",
				"#updated_at": "updated_at",
			},
		},
	})
	return writes
}

func toRateCardItem(rc entities.RateCard) rateCardItem {
	return rateCardItem{
		ID:           rc.ID,
		Name:         rc.Name,
		HourlyRate:   rc.HourlyRate,
		TokenRateIn:  rc.TokenRateIn,
		TokenRateOut: rc.TokenRateOut,
		MarkupFactor: rc.MarkupFactor,
		IsActive:     rc.IsActive,
		CreatedAt:    rc.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    rc.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRateCardItem(it rateCardItem) entities.RateCard {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.RateCard{
		ID:           it.ID,
		Name:         it.Name,
		HourlyRate:   it.HourlyRate,
		TokenRateIn:  it.TokenRateIn,
		TokenRateOut: it.TokenRateOut,
		MarkupFactor: it.MarkupFactor,
		IsActive:     it.IsActive,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
