package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/storage"
)

// GetLedgerEntry retrieves a single ledger entry by its ID.
func (s *Store) GetLedgerEntry(ctx context.Context, entryID string) (*models.LedgerEntry, error) {
	return getItem[models.LedgerEntry](ctx, s.Client, s.Tables.Ledger, map[string]types.AttributeValue{"id": str(entryID)})
}

// ListLedgerEntriesByUser returns a user's entries, newest first.
func (s *Store) ListLedgerEntriesByUser(ctx context.Context, userID string, filter storage.LedgerFilter) ([]models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Ledger),
		IndexName:              aws.String(ledgerUserIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": str(userID),
		},
		ScanIndexForward: aws.Bool(false), // Sort by created_at in descending order
	}
	return queryAll(ctx, s.Client, input, filter.Matches, int(filter.Limit))
}

// ListLedgerEntriesByGoal returns every entry tagged with a goal.
func (s *Store) ListLedgerEntriesByGoal(ctx context.Context, goalID string) ([]models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Ledger),
		IndexName:              aws.String(ledgerGoalIndex),
		KeyConditionExpression: aws.String("goal_id = :goalID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":goalID": str(goalID),
		},
	}
	return queryAll[models.LedgerEntry](ctx, s.Client, input, nil, 0)
}

// ListLedgerEntriesByRequest returns every entry tagged with a pool request.
func (s *Store) ListLedgerEntriesByRequest(ctx context.Context, requestID string) ([]models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Ledger),
		IndexName:              aws.String(ledgerRequestIndex),
		KeyConditionExpression: aws.String("pool_request_id = :requestID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":requestID": str(requestID),
		},
	}
	return queryAll[models.LedgerEntry](ctx, s.Client, input, nil, 0)
}

// GetAggregate returns storage.ErrNotFound when the user has no row for the period.
func (s *Store) GetAggregate(ctx context.Context, userID string, period models.Period) (*models.MonthlyAggregate, error) {
	return getItem[models.MonthlyAggregate](ctx, s.Client, s.Tables.Aggregates, aggregateKey(userID, period))
}

// ListAggregates returns every aggregate row of a period.
func (s *Store) ListAggregates(ctx context.Context, period models.Period) ([]models.MonthlyAggregate, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Aggregates),
		IndexName:              aws.String(aggregatePeriodIndex),
		KeyConditionExpression: aws.String("period = :period"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":period": str(period.Key()),
		},
	}
	return queryAll[models.MonthlyAggregate](ctx, s.Client, input, nil, 0)
}

// GetGoal retrieves a goal by ID.
func (s *Store) GetGoal(ctx context.Context, goalID string) (*models.Goal, error) {
	return getItem[models.Goal](ctx, s.Client, s.Tables.Goals, map[string]types.AttributeValue{"id": str(goalID)})
}

// ListGoalsByUser returns a user's goals, oldest first.
func (s *Store) ListGoalsByUser(ctx context.Context, userID string) ([]models.Goal, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Goals),
		IndexName:              aws.String(goalUserIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": str(userID),
		},
	}
	return queryAll[models.Goal](ctx, s.Client, input, nil, 0)
}

// GetPool retrieves a pool by ID.
func (s *Store) GetPool(ctx context.Context, poolID string) (*models.Pool, error) {
	return getItem[models.Pool](ctx, s.Client, s.Tables.Pools, map[string]types.AttributeValue{"id": str(poolID)})
}

// GetMembership retrieves a user's membership in a pool.
func (s *Store) GetMembership(ctx context.Context, poolID, userID string) (*models.PoolMembership, error) {
	return getItem[models.PoolMembership](ctx, s.Client, s.Tables.Memberships, map[string]types.AttributeValue{
		"pool_id": str(poolID),
		"user_id": str(userID),
	})
}

// ListMemberships returns every membership of a pool.
func (s *Store) ListMemberships(ctx context.Context, poolID string) ([]models.PoolMembership, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Memberships),
		KeyConditionExpression: aws.String("pool_id = :poolID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":poolID": str(poolID),
		},
		ConsistentRead: aws.Bool(true),
	}
	return queryAll[models.PoolMembership](ctx, s.Client, input, nil, 0)
}

// GetRequest retrieves a pool request by ID.
func (s *Store) GetRequest(ctx context.Context, requestID string) (*models.PoolRequest, error) {
	return getItem[models.PoolRequest](ctx, s.Client, s.Tables.Requests, map[string]types.AttributeValue{"id": str(requestID)})
}

// ListRequestsByPool returns a pool's requests, oldest first.
func (s *Store) ListRequestsByPool(ctx context.Context, poolID string) ([]models.PoolRequest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Requests),
		IndexName:              aws.String(requestPoolIndex),
		KeyConditionExpression: aws.String("pool_id = :poolID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":poolID": str(poolID),
		},
	}
	return queryAll[models.PoolRequest](ctx, s.Client, input, nil, 0)
}

// ListRequestsByStatus returns every request in the given status.
func (s *Store) ListRequestsByStatus(ctx context.Context, status models.RequestStatus) ([]models.PoolRequest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Requests),
		IndexName:              aws.String(requestStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": str(string(status)),
		},
	}
	return queryAll[models.PoolRequest](ctx, s.Client, input, nil, 0)
}

// ListContributions returns a request's contributions in order.
func (s *Store) ListContributions(ctx context.Context, requestID string) ([]models.PoolContribution, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Contributions),
		IndexName:              aws.String(contributionReqIndex),
		KeyConditionExpression: aws.String("request_id = :requestID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":requestID": str(requestID),
		},
	}
	return queryAll[models.PoolContribution](ctx, s.Client, input, nil, 0)
}

// GetProgression returns storage.ErrNotFound when there is no record for the month.
func (s *Store) GetProgression(ctx context.Context, userID, month string) (*models.ProgressionPeriod, error) {
	return getItem[models.ProgressionPeriod](ctx, s.Client, s.Tables.Progression, map[string]types.AttributeValue{
		"user_id": str(userID),
		"month":   str(month),
	})
}

// GetReward retrieves a reward definition.
func (s *Store) GetReward(ctx context.Context, rewardID string) (*models.RewardDefinition, error) {
	return getItem[models.RewardDefinition](ctx, s.Client, s.Tables.Rewards, map[string]types.AttributeValue{"id": str(rewardID)})
}

// ListRewards returns the reward catalog ordered by level.
func (s *Store) ListRewards(ctx context.Context) ([]models.RewardDefinition, error) {
	rewards, err := scanAll[models.RewardDefinition](ctx, s.Client, s.Tables.Rewards)
	if err != nil {
		return nil, err
	}
	sort.Slice(rewards, func(i, j int) bool {
		if rewards[i].Level == rewards[j].Level {
			return rewards[i].ID < rewards[j].ID
		}
		return rewards[i].Level < rewards[j].Level
	})
	return rewards, nil
}

// PutReward creates or replaces a reward definition.
func (s *Store) PutReward(ctx context.Context, reward *models.RewardDefinition) error {
	return s.putCatalogItem(ctx, s.Tables.Rewards, reward)
}

// GetUserReward retrieves a redemption by (user, reward, period).
func (s *Store) GetUserReward(ctx context.Context, userID, rewardID, periodID string) (*models.UserReward, error) {
	return getItem[models.UserReward](ctx, s.Client, s.Tables.UserRewards, map[string]types.AttributeValue{
		"user_id":              str(userID),
		redemptionKeyAttribute: str(models.RedemptionKey(rewardID, periodID)),
	})
}

// ListUserRewards returns a user's redemptions, newest first.
func (s *Store) ListUserRewards(ctx context.Context, userID string) ([]models.UserReward, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.UserRewards),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": str(userID),
		},
	}
	rewards, err := queryAll[models.UserReward](ctx, s.Client, input, nil, 0)
	if err != nil {
		return nil, err
	}
	sort.Slice(rewards, func(i, j int) bool { return rewards[i].EarnedAt.After(rewards[j].EarnedAt) })
	return rewards, nil
}

// ListChallenges returns the challenge catalog.
func (s *Store) ListChallenges(ctx context.Context) ([]models.ChallengeDefinition, error) {
	challenges, err := scanAll[models.ChallengeDefinition](ctx, s.Client, s.Tables.Challenges)
	if err != nil {
		return nil, err
	}
	sort.Slice(challenges, func(i, j int) bool { return challenges[i].ID < challenges[j].ID })
	return challenges, nil
}

// PutChallenge creates or replaces a challenge definition.
func (s *Store) PutChallenge(ctx context.Context, challenge *models.ChallengeDefinition) error {
	return s.putCatalogItem(ctx, s.Tables.Challenges, challenge)
}

// ListChallengeProgress returns a user's challenge progress records.
func (s *Store) ListChallengeProgress(ctx context.Context, userID string) ([]models.UserChallengeProgress, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.ChallengeProgress),
		KeyConditionExpression: aws.String("user_id = :userID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": str(userID),
		},
		ConsistentRead: aws.Bool(true),
	}
	return queryAll[models.UserChallengeProgress](ctx, s.Client, input, nil, 0)
}

func (s *Store) putCatalogItem(ctx context.Context, table string, v any) error {
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog item: %w", err)
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put catalog item into %s: %w", table, err)
	}
	return nil
}
