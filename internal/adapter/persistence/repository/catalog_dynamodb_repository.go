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

const defaultModulesTableName = "catalog_modules"

type catalogModuleItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Description string   `dynamodbav:"description,omitempty"`
	Category    string   `dynamodbav:"category"`
	BaseHours   float64  `dynamodbav:"base_hours"`
	BaseTokens  int64    `dynamodbav:"base_tokens"`
	RiskWeight  float64  `dynamodbav:"risk_weight"`
	Deps        []string `dynamodbav:"dependencies,omitempty"`

	ArchitectReviewTrigger bool `dynamodbav:"architect_review_trigger"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists CatalogModule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MODULES_TABLE", defaultModulesTableName),
	}
}

func (r *CatalogDynamoRepository) ListModules(ctx context.Context) ([]entities.CatalogModule, error) {
	items := make([]entities.CatalogModule, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it catalogModuleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCatalogModuleItem(it))
		}
	}
	return items, nil
}

func (r *CatalogDynamoRepository) GetModule(ctx context.Context, id string) (entities.CatalogModule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogModule{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogModule{}, nil
	}

	var it catalogModuleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogModule{}, err
	}
	return fromCatalogModuleItem(it), nil
}

func (r *CatalogDynamoRepository) PutModule(ctx context.Context, m entities.CatalogModule) (entities.CatalogModule, error) {
	it := toCatalogModuleItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CatalogModule{}, err
	}

	// Upsert: module definitions are config data edited in place.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CatalogModule{}, err
	}
	return m, nil
}

// Seed writes the default catalog when the table is empty. Existing modules
// are never overwritten.
func (r *CatalogDynamoRepository) Seed(ctx context.Context) error {
	existing, err := r.ListModules(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, m := range entities.SeedCatalogModules() {
		m.CreatedAt = now
		m.UpdatedAt = now
		if _, err := r.PutModule(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func toCatalogModuleItem(m entities.CatalogModule) catalogModuleItem {
	return catalogModuleItem{
		ID:                     m.ID,
		Name:                   m.Name,
		Description:            m.Description,
		Category:               m.Category,
		BaseHours:              m.BaseHours,
		BaseTokens:             m.BaseTokens,
		RiskWeight:             m.RiskWeight,
		Deps:                   m.Deps,
		ArchitectReviewTrigger: m.ArchitectReviewTrigger,
		CreatedAt:              m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCatalogModuleItem(it catalogModuleItem) entities.CatalogModule {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CatalogModule{
		ID:                     it.ID,
		Name:                   it.Name,
		Description:            it.Description,
		Category:               it.Category,
		BaseHours:              it.BaseHours,
		BaseTokens:             it.BaseTokens,
		RiskWeight:             it.RiskWeight,
		Deps:                   it.Deps,
		ArchitectReviewTrigger: it.ArchitectReviewTrigger,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
}
