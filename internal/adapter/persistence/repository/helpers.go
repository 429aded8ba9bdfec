package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"repairhub/internal/domain/entities"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

const (
	defaultServiceRequestsTable = "service_requests"
	defaultWalletsTable         = "wallets"
	defaultTransactionsTable    = "wallet_transactions"
	defaultTechnicianStatsTable = "technician_stats"
	defaultEventsTable          = "lifecycle_events"

	serviceRequestsCustomerIndex = "customer_id-index"
	transactionsWalletIndex      = "wallet_id-index"

	// TransactWriteItems accepts at most 100 actions.
	maxTransactItems = 100
)

// Tables names the DynamoDB tables. Empty fields fall back to the
// *_TABLE environment variables and then to the defaults.
type Tables struct {
	ServiceRequests string
	Wallets         string
	Transactions    string
	TechnicianStats string
	Events          string
}

func (t Tables) withDefaults() Tables {
	if t.ServiceRequests == "" {
		t.ServiceRequests = getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTable)
	}
	if t.Wallets == "" {
		t.Wallets = getenvDefault("WALLETS_TABLE", defaultWalletsTable)
	}
	if t.Transactions == "" {
		t.Transactions = getenvDefault("WALLET_TRANSACTIONS_TABLE", defaultTransactionsTable)
	}
	if t.TechnicianStats == "" {
		t.TechnicianStats = getenvDefault("TECHNICIAN_STATS_TABLE", defaultTechnicianStatsTable)
	}
	if t.Events == "" {
		t.Events = getenvDefault("LIFECYCLE_EVENTS_TABLE", defaultEventsTable)
	}
	return t
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime accepts an empty value as the zero time.
func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, v)
}

// mapTransactError turns a cancelled transaction whose cancellation was
// caused by a failed condition into entities.ErrConflict.
func mapTransactError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code == nil {
			continue
		}
		switch *reason.Code {
		case "ConditionalCheckFailed", "TransactionConflict":
			return fmt.Errorf("%w: %s", entities.ErrConflict, *reason.Code)
		}
	}
	return err
}
