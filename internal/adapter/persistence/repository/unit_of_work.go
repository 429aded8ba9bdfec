package repository

import (
	"context"
	"fmt"
	"repairhub/internal/usecase/interfaces"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoUnitOfWork commits a ChangeSet with a single TransactWriteItems
// call. Aggregates are guarded by their version, ledger lines and events
// by attribute_not_exists; events land in the lifecycle_events outbox
// table.
type DynamoUnitOfWork struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoAPI, tables Tables) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, tables: tables.withDefaults()}
}

func (u *DynamoUnitOfWork) Commit(ctx context.Context, cs interfaces.ChangeSet) error {
	items, err := buildTransactItems(u.tables, cs)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	_, err = u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return mapTransactError(err)
	}
	return nil
}

func buildTransactItems(tables Tables, cs interfaces.ChangeSet) ([]types.TransactWriteItem, error) {
	items := make([]types.TransactWriteItem, 0, 2+len(cs.Wallets)*2+len(cs.Transactions)+len(cs.Events))

	if r := cs.Request; r != nil {
		next := *r
		next.Version = r.Version + 1
		put, err := versionedPut(tables.ServiceRequests, "id", toServiceRequestItem(next), r.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}

	for _, w := range cs.Wallets {
		puts, err := walletPutItems(tables.Wallets, w, w.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, puts...)
	}

	if s := cs.Stats; s != nil {
		next := *s
		next.Version = s.Version + 1
		put, err := versionedPut(tables.TechnicianStats, "technician_id", toTechnicianStatsItem(next), s.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}

	for _, t := range cs.Transactions {
		put, err := appendOnlyPut(tables.Transactions, toTransactionItem(t))
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}

	for _, ev := range cs.Events {
		put, err := appendOnlyPut(tables.Events, toLifecycleEventItem(ev))
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}

	if len(items) > maxTransactItems {
		return nil, fmt.Errorf("change set has %d writes, limit is %d", len(items), maxTransactItems)
	}
	return items, nil
}

// versionedPut writes item only if the stored version equals
// expectedVersion, or if no item exists when expectedVersion is 0.
func versionedPut(table, keyAttr string, item any, expectedVersion int64) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("marshal %s item: %w", table, err)
	}

	put := &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ExpressionAttributeNames: map[string]string{"#pk": keyAttr},
	}
	if expectedVersion == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(#pk)")
	} else {
		put.ConditionExpression = aws.String("attribute_exists(#pk) AND #version = :expected")
		put.ExpressionAttributeNames = mergeNames(put.ExpressionAttributeNames, map[string]string{"#version": "version"})
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		}
	}
	return types.TransactWriteItem{Put: put}, nil
}

func appendOnlyPut(table string, item any) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("marshal %s item: %w", table, err)
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, nil
}
