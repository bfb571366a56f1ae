package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/storage"
)

// maxTransactItems is the DynamoDB limit on items per TransactWriteItems call.
const maxTransactItems = 100

// Commit translates a change set into a single TransactWriteItems call.
// Any failed condition is reported as storage.ErrConflict.
func (s *Store) Commit(ctx context.Context, cs *storage.ChangeSet) error {
	if cs.Empty() {
		return nil
	}
	if cs.Len() > maxTransactItems {
		return fmt.Errorf("%w: %d items", storage.ErrTooManyChanges, cs.Len())
	}

	items, err := s.transactItems(cs)
	if err != nil {
		return err
	}

	slog.Log(ctx, slog.LevelDebug, "committing change set", "items", len(items))

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionFailure(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("failed to execute transaction: %w", err)
	}
	return nil
}

func (s *Store) transactItems(cs *storage.ChangeSet) ([]types.TransactWriteItem, error) {
	now := s.now()
	var items []types.TransactWriteItem

	for _, e := range cs.Entries {
		put, err := s.putNew(s.Tables.Ledger, e, "id")
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, id := range cs.EntryDeletes {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:           aws.String(s.Tables.Ledger),
				Key:                 map[string]types.AttributeValue{"id": str(id)},
				ConditionExpression: aws.String("attribute_exists(id)"),
			},
		})
	}
	for _, id := range cs.EntryDetaches {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(s.Tables.Ledger),
				Key:                 map[string]types.AttributeValue{"id": str(id)},
				UpdateExpression:    aws.String("REMOVE goal_id"),
				ConditionExpression: aws.String("attribute_exists(id)"),
			},
		})
	}

	for _, a := range cs.Aggregates {
		item, ok, err := s.aggregateItem(a, now)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, item)
		}
	}

	for _, g := range cs.Goals {
		put, err := s.putVersioned(s.Tables.Goals, g, g.Version, "id", nil)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, d := range cs.GoalDeletes {
		items = append(items, s.deleteVersioned(s.Tables.Goals, map[string]types.AttributeValue{"id": str(d.ID)}, d.Version))
	}
	for _, p := range cs.Pools {
		put, err := s.putVersioned(s.Tables.Pools, p, p.Version, "id", nil)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, m := range cs.Memberships {
		put, err := s.putVersioned(s.Tables.Memberships, m, m.Version, "pool_id", nil)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, r := range cs.Requests {
		put, err := s.putVersioned(s.Tables.Requests, r, r.Version, "id", nil)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, d := range cs.RequestDeletes {
		items = append(items, s.deleteVersioned(s.Tables.Requests, map[string]types.AttributeValue{"id": str(d.ID)}, d.Version))
	}
	for _, c := range cs.Contributions {
		put, err := s.putNew(s.Tables.Contributions, c, "id")
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, id := range cs.ContributionDeletes {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:           aws.String(s.Tables.Contributions),
				Key:                 map[string]types.AttributeValue{"id": str(id)},
				ConditionExpression: aws.String("attribute_exists(id)"),
			},
		})
	}
	for _, p := range cs.Progressions {
		put, err := s.putVersioned(s.Tables.Progression, p, p.Version, "user_id", nil)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, r := range cs.Redemptions {
		extra := map[string]types.AttributeValue{redemptionKeyAttribute: str(r.RedemptionKey())}
		put, err := s.putVersioned(s.Tables.UserRewards, r, r.Version, "user_id", extra)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, p := range cs.ChallengeProgress {
		put, err := s.putVersioned(s.Tables.ChallengeProgress, p, p.Version, "user_id", nil)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}

	return items, nil
}

func (s *Store) putNew(table string, v any, hashKey string) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal item for %s: %w", table, err)
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                av,
			ConditionExpression: aws.String(fmt.Sprintf("attribute_not_exists(%s)", hashKey)),
		},
	}, nil
}

// putVersioned writes an item carrying its new version. Version 1 must not
// exist yet; later versions require the stored item to be one behind.
func (s *Store) putVersioned(table string, v any, version int64, hashKey string, extra map[string]types.AttributeValue) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		return types.TransactWriteItem{}, fmt.Errorf("failed to marshal item for %s: %w", table, err)
	}
	for k, val := range extra {
		av[k] = val
	}
	put := &types.Put{
		TableName: aws.String(table),
		Item:      av,
	}
	if version <= 1 {
		put.ConditionExpression = aws.String(fmt.Sprintf("attribute_not_exists(%s)", hashKey))
	} else {
		put.ConditionExpression = aws.String("version = :expected")
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": num(version - 1),
		}
	}
	return types.TransactWriteItem{Put: put}, nil
}

func (s *Store) deleteVersioned(table string, key map[string]types.AttributeValue, version int64) types.TransactWriteItem {
	return types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:           aws.String(table),
			Key:                 key,
			ConditionExpression: aws.String("version = :expected"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": num(version),
			},
		},
	}
}

// aggregateItem builds the upsert-then-add for one aggregate row. A change
// with no delta only guards the row's version.
func (s *Store) aggregateItem(a storage.AggregateChange, now time.Time) (types.TransactWriteItem, bool, error) {
	key := map[string]types.AttributeValue{
		"user_id": str(a.UserID),
		"period":  str(a.Period.Key()),
	}

	var conditions []string
	values := map[string]types.AttributeValue{}
	if a.ExpectedVersion != nil {
		if *a.ExpectedVersion == 0 {
			conditions = append(conditions, "attribute_not_exists(user_id)")
		} else {
			conditions = append(conditions, "version = :expected")
			values[":expected"] = num(*a.ExpectedVersion)
		}
	}

	if a.Delta.IsZero() {
		if len(conditions) == 0 {
			return types.TransactWriteItem{}, false, nil
		}
		return types.TransactWriteItem{
			ConditionCheck: &types.ConditionCheck{
				TableName:                 aws.String(s.Tables.Aggregates),
				Key:                       key,
				ConditionExpression:       aws.String(strings.Join(conditions, " AND ")),
				ExpressionAttributeValues: nilIfEmpty(values),
			},
		}, true, nil
	}

	if a.RequiresCover() {
		conditions = append(conditions, "attribute_exists(total_saved) AND total_saved >= :cover")
		coverAV, err := attributevalue.Marshal(a.Delta.Neg())
		if err != nil {
			return types.TransactWriteItem{}, false, fmt.Errorf("failed to marshal cover amount: %w", err)
		}
		values[":cover"] = coverAV
	}

	deltaAV, err := attributevalue.Marshal(a.Delta)
	if err != nil {
		return types.TransactWriteItem{}, false, fmt.Errorf("failed to marshal delta: %w", err)
	}
	zeroAV, _ := attributevalue.Marshal(money.Zero)
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return types.TransactWriteItem{}, false, fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	values[":delta"] = deltaAV
	values[":zero"] = zeroAV
	values[":one"] = num(1)
	values[":month"] = num(int64(a.Period.Month))
	values[":year"] = num(int64(a.Period.Year))
	values[":now"] = nowAV

	update := &types.Update{
		TableName: aws.String(s.Tables.Aggregates),
		Key:       key,
		UpdateExpression: aws.String("SET total_saved = if_not_exists(total_saved, :zero) + :delta, " +
			"version = if_not_exists(version, :zero) + :one, #month = :month, #year = :year, updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#month": "month",
			"#year":  "year",
		},
		ExpressionAttributeValues: values,
	}
	if len(conditions) > 0 {
		update.ConditionExpression = aws.String(strings.Join(conditions, " AND "))
	}
	return types.TransactWriteItem{Update: update}, true, nil
}

func nilIfEmpty(m map[string]types.AttributeValue) map[string]types.AttributeValue {
	if len(m) == 0 {
		return nil
	}
	return m
}

// aggregateKey is shared by the reader.
func aggregateKey(userID string, period models.Period) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": str(userID),
		"period":  str(period.Key()),
	}
}
