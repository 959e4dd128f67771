package repository

import (
	"context"
	"errors"
	"time"

	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type buildSpecItem struct {
	Platform     string   `dynamodbav:"platform"`
	AuthLevel    string   `dynamodbav:"auth_level"`
	Modules      []string `dynamodbav:"modules,omitempty"`
	Quality      string   `dynamodbav:"quality"`
	Integrations string   `dynamodbav:"integrations"`
	Urgency      string   `dynamodbav:"urgency"`
	Iteration    string   `dynamodbav:"iteration"`
}

type costDriverItem struct {
	Name   string  `dynamodbav:"name"`
	Impact string  `dynamodbav:"impact"`
	Amount float64 `dynamodbav:"amount"`
}

type estimateItem struct {
	ID   string        `dynamodbav:"id"`
	Spec buildSpecItem `dynamodbav:"spec"`

	PriceMin float64 `dynamodbav:"price_min"`
	PriceMid float64 `dynamodbav:"price_mid"`
	PriceMax float64 `dynamodbav:"price_max"`

	HoursMin float64 `dynamodbav:"hours_min"`
	HoursMax float64 `dynamodbav:"hours_max"`
	DaysMin  int     `dynamodbav:"days_min"`
	DaysMax  int     `dynamodbav:"days_max"`

	Confidence float64 `dynamodbav:"confidence"`

	TokensIn      int64   `dynamodbav:"tokens_in"`
	TokensOut     int64   `dynamodbav:"tokens_out"`
	MaterialsCost float64 `dynamodbav:"materials_cost"`
	LaborCost     float64 `dynamodbav:"labor_cost"`
	RiskBuffer    float64 `dynamodbav:"risk_buffer"`

	DegradedMode   bool   `dynamodbav:"degraded_mode"`
	DegradedReason string `dynamodbav:"degraded_reason,omitempty"`

	NeedsReview          bool     `dynamodbav:"needs_review"`
	ReviewTriggerModules []string `dynamodbav:"review_trigger_modules,omitempty"`

	CostDrivers []costDriverItem `dynamodbav:"cost_drivers,omitempty"`
	Assumptions []string         `dynamodbav:"assumptions,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The full computed breakdown (spec, drivers, assumptions) is stored on the
// item so a later GET needs no recomputation against catalog state that may
// have changed since.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
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
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	drivers := make([]costDriverItem, 0, len(e.CostDrivers))
	for _, d := range e.CostDrivers {
		drivers = append(drivers, costDriverItem{Name: d.Name, Impact: string(d.Impact), Amount: d.Amount})
	}
	return estimateItem{
		ID: e.ID,
		Spec: buildSpecItem{
			Platform:     e.Spec.Platform,
			AuthLevel:    e.Spec.AuthLevel,
			Modules:      e.Spec.Modules,
			Quality:      e.Spec.Quality,
			Integrations: e.Spec.Integrations,
			Urgency:      e.Spec.Urgency,
			Iteration:    e.Spec.Iteration,
		},
		PriceMin:             e.PriceMin,
		PriceMid:             e.PriceMid,
		PriceMax:             e.PriceMax,
		HoursMin:             e.HoursMin,
		HoursMax:             e.HoursMax,
		DaysMin:              e.DaysMin,
		DaysMax:              e.DaysMax,
		Confidence:           e.Confidence,
		TokensIn:             e.TokensIn,
		TokensOut:            e.TokensOut,
		MaterialsCost:        e.MaterialsCost,
		LaborCost:            e.LaborCost,
		RiskBuffer:           e.RiskBuffer,
		DegradedMode:         e.DegradedMode,
		DegradedReason:       e.DegradedReason,
		NeedsReview:          e.NeedsReview,
		ReviewTriggerModules: e.ReviewTriggerModules,
		CostDrivers:          drivers,
		Assumptions:          e.Assumptions,
		Status:               string(e.Status),
		CreatedAt:            e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	drivers := make([]entities.CostDriver, 0, len(it.CostDrivers))
	for _, d := range it.CostDrivers {
		drivers = append(drivers, entities.CostDriver{Name: d.Name, Impact: entities.DriverImpact(d.Impact), Amount: d.Amount})
	}
	return entities.Estimate{
		ID: it.ID,
		Spec: entities.BuildSpec{
			Platform:     it.Spec.Platform,
			AuthLevel:    it.Spec.AuthLevel,
			Modules:      it.Spec.Modules,
			Quality:      it.Spec.Quality,
			Integrations: it.Spec.Integrations,
			Urgency:      it.Spec.Urgency,
			Iteration:    it.Spec.Iteration,
		},
		PriceMin:             it.PriceMin,
		PriceMid:             it.PriceMid,
		PriceMax:             it.PriceMax,
		HoursMin:             it.HoursMin,
		HoursMax:             it.HoursMax,
		DaysMin:              it.DaysMin,
		DaysMax:              it.DaysMax,
		Confidence:           it.Confidence,
		TokensIn:             it.TokensIn,
		TokensOut:            it.TokensOut,
		MaterialsCost:        it.MaterialsCost,
		LaborCost:            it.LaborCost,
		RiskBuffer:           it.RiskBuffer,
		DegradedMode:         it.DegradedMode,
		DegradedReason:       it.DegradedReason,
		NeedsReview:          it.NeedsReview,
		ReviewTriggerModules: it.ReviewTriggerModules,
		CostDrivers:          drivers,
		Assumptions:          it.Assumptions,
		Status:               entities.EstimateStatus(it.Status),
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
}
