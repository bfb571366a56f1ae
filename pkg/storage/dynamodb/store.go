package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/pooled-savings/pkg/storage"
)

//go:generate mockery --name DynamoDBAPI --output ./mocks --outpkg mocks

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables holds the name of every table the store touches.
type Tables struct {
	Ledger            string
	Aggregates        string
	Goals             string
	Pools             string
	Memberships       string
	Requests          string
	Contributions     string
	Progression       string
	Rewards           string
	UserRewards       string
	Challenges        string
	ChallengeProgress string
}

// DefaultTables returns table names derived from a common prefix.
func DefaultTables(prefix string) Tables {
	return Tables{
		Ledger:            prefix + "ledger",
		Aggregates:        prefix + "monthly-aggregates",
		Goals:             prefix + "goals",
		Pools:             prefix + "pools",
		Memberships:       prefix + "pool-memberships",
		Requests:          prefix + "pool-requests",
		Contributions:     prefix + "pool-contributions",
		Progression:       prefix + "progression",
		Rewards:           prefix + "rewards",
		UserRewards:       prefix + "user-rewards",
		Challenges:        prefix + "challenges",
		ChallengeProgress: prefix + "challenge-progress",
	}
}

// Secondary indexes.
const (
	ledgerUserIndex        = "user_id-created_at-index"
	ledgerGoalIndex        = "goal_id-created_at-index"
	ledgerRequestIndex     = "pool_request_id-created_at-index"
	aggregatePeriodIndex   = "period-user_id-index"
	goalUserIndex          = "user_id-created_at-index"
	requestPoolIndex       = "pool_id-created_at-index"
	requestStatusIndex     = "status-created_at-index"
	contributionReqIndex   = "request_id-contributed_at-index"
	redemptionKeyAttribute = "redemption_key"
)

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client DynamoDBAPI
	Tables Tables
	Now    func() time.Time
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{
		Client: client,
		Tables: tables,
		Now:    time.Now,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func (s *Store) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func num(v int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", v)}
}

// getItem reads one item with a consistent read. A missing item is storage.ErrNotFound.
func getItem[T any](ctx context.Context, client DynamoDBAPI, table string, key map[string]types.AttributeValue) (*T, error) {
	result, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from %s: %w", table, err)
	}
	if result.Item == nil {
		return nil, storage.ErrNotFound
	}
	var out T
	if err := attributevalue.UnmarshalMap(result.Item, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item from %s: %w", table, err)
	}
	return &out, nil
}

// queryAll follows every page of a query. When keep is non-nil only matching
// items are collected, and limit stops the walk once enough were found.
func queryAll[T any](ctx context.Context, client DynamoDBAPI, input *dynamodb.QueryInput, keep func(T) bool, limit int) ([]T, error) {
	var out []T
	paginator := dynamodb.NewQueryPaginator(client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", aws.ToString(input.TableName), err)
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items from %s: %w", aws.ToString(input.TableName), err)
		}
		for _, item := range items {
			if keep != nil && !keep(item) {
				continue
			}
			out = append(out, item)
			if limit > 0 && len(out) >= limit {
				return out, nil
			}
		}
	}
	return out, nil
}

func scanAll[T any](ctx context.Context, client DynamoDBAPI, table string) ([]T, error) {
	var out []T
	paginator := dynamodb.NewScanPaginator(client, &dynamodb.ScanInput{TableName: aws.String(table)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items from %s: %w", table, err)
		}
		out = append(out, items...)
	}
	return out, nil
}

// isConditionFailure reports whether a write was rejected by a condition
// expression or a concurrent transaction.
func isConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			switch aws.ToString(reason.Code) {
			case "ConditionalCheckFailed", "TransactionConflict":
				return true
			}
		}
		return false
	}
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return true
	}
	var tcf *types.TransactionConflictException
	return errors.As(err, &tcf)
}
