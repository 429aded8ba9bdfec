package repository

import (
	"context"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TechnicianStatsDynamoRepository reads technician stats.
//
// Table requirements:
//   - PK: technician_id (string)
type TechnicianStatsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITechnicianStatsRepository = (*TechnicianStatsDynamoRepository)(nil)

func NewTechnicianStatsDynamoRepository(ddb DynamoAPI, tables Tables) *TechnicianStatsDynamoRepository {
	return &TechnicianStatsDynamoRepository{
		ddb:       ddb,
		tableName: tables.withDefaults().TechnicianStats,
	}
}

func (r *TechnicianStatsDynamoRepository) GetByTechnicianID(ctx context.Context, technicianID string) (entities.TechnicianStats, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"technician_id": &types.AttributeValueMemberS{Value: technicianID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TechnicianStats{}, err
	}
	if len(out.Item) == 0 {
		return entities.TechnicianStats{}, nil
	}

	var it technicianStatsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TechnicianStats{}, err
	}
	return fromTechnicianStatsItem(it)
}
