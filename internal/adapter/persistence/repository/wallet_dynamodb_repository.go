package repository

import (
	"context"
	"errors"
	"fmt"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// WalletDynamoRepository persists wallets and reads their ledger.
//
// Table requirements:
//   - wallets: PK id (string). Holds the wallet items and the owner guard
//     items (id = owner#<owner_id>) that keep one wallet per user.
//   - wallet_transactions: PK id (string), GSI wallet_id-index
//     (PK: wallet_id, SK: timestamp)
type WalletDynamoRepository struct {
	ddb               DynamoAPI
	tableName         string
	transactionsTable string
}

var _ interfaces.IWalletRepository = (*WalletDynamoRepository)(nil)

func NewWalletDynamoRepository(ddb DynamoAPI, tables Tables) *WalletDynamoRepository {
	tables = tables.withDefaults()
	return &WalletDynamoRepository{
		ddb:               ddb,
		tableName:         tables.Wallets,
		transactionsTable: tables.Transactions,
	}
}

// Create writes the wallet and its owner guard in one transaction.
func (r *WalletDynamoRepository) Create(ctx context.Context, w entities.Wallet) (entities.Wallet, error) {
	w.Version = 1
	items, err := walletPutItems(r.tableName, w, 0)
	if err != nil {
		return entities.Wallet{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.Wallet{}, mapTransactError(err)
	}
	return w, nil
}

func (r *WalletDynamoRepository) GetByID(ctx context.Context, id string) (entities.Wallet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Wallet{}, err
	}
	if len(out.Item) == 0 {
		return entities.Wallet{}, nil
	}

	var it walletItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Wallet{}, err
	}
	if it.OwnerID == "" {
		// owner guard item, not a wallet
		return entities.Wallet{}, nil
	}
	return fromWalletItem(it)
}

func (r *WalletDynamoRepository) GetByOwnerID(ctx context.Context, ownerID string) (entities.Wallet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ownerGuardKey(ownerID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Wallet{}, err
	}
	if len(out.Item) == 0 {
		return entities.Wallet{}, nil
	}

	var guard ownerGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Wallet{}, err
	}
	if guard.WalletID == "" {
		return entities.Wallet{}, errors.New("owner guard without wallet id")
	}
	return r.GetByID(ctx, guard.WalletID)
}

// ListTransactions returns the wallet's ledger in timestamp order.
func (r *WalletDynamoRepository) ListTransactions(ctx context.Context, walletID string) ([]entities.Transaction, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.transactionsTable),
		IndexName:              aws.String(transactionsWalletIndex),
		KeyConditionExpression: aws.String("wallet_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: walletID},
		},
		ScanIndexForward: aws.Bool(true),
	}

	txs := make([]entities.Transaction, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it transactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			tx, err := fromTransactionItem(it)
			if err != nil {
				return nil, err
			}
			txs = append(txs, tx)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Timestamp.Before(txs[j].Timestamp) })
	return txs, nil
}

// walletPutItems writes w with the stored version expectedVersion+1. A new
// wallet (expectedVersion 0) also claims its owner guard.
func walletPutItems(table string, w entities.Wallet, expectedVersion int64) ([]types.TransactWriteItem, error) {
	w.Version = expectedVersion + 1
	put, err := versionedPut(table, "id", toWalletItem(w), expectedVersion)
	if err != nil {
		return nil, err
	}
	items := []types.TransactWriteItem{put}
	if expectedVersion > 0 {
		return items, nil
	}

	guard, err := attributevalue.MarshalMap(ownerGuardItem{ID: ownerGuardKey(w.OwnerID), WalletID: w.ID})
	if err != nil {
		return nil, fmt.Errorf("marshal owner guard: %w", err)
	}
	items = append(items, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(table),
		Item:                     guard,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}})
	return items, nil
}
