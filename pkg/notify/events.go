package notify

import (
	"time"

	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/savings"
)

// EventType identifies what happened.
type EventType string

const (
	EventLevelUp            EventType = "level_up"
	EventChallengeCompleted EventType = "challenge_completed"
	EventRequestCompleted   EventType = "request_completed"
	// EventFundsStranded is sent when a request completed while its
	// requester had no active goal to receive the money.
	EventFundsStranded    EventType = "funds_stranded"
	EventRequestCancelled EventType = "request_cancelled"
)

// Event is the message published for a user.
type Event struct {
	Type       EventType `json:"type"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// LevelUpPayload is the payload of EventLevelUp.
type LevelUpPayload struct {
	PreviousLevel     int      `json:"previous_level"`
	Level             int      `json:"level"`
	UnlockedRewardIDs []string `json:"unlocked_reward_ids"`
}

// ChallengePayload is the payload of EventChallengeCompleted.
type ChallengePayload struct {
	ChallengeID string `json:"challenge_id"`
	Points      int64  `json:"points"`
}

// RequestPayload is the payload of the request events.
type RequestPayload struct {
	RequestID string       `json:"request_id"`
	PoolID    string       `json:"pool_id"`
	Amount    money.Amount `json:"amount"`
	// Receipts is how much each goal received, by goal id.
	Receipts map[string]money.Amount `json:"receipts,omitempty"`
}

// ProgressEvents announces the level up and completed challenges of a save.
// Withdrawals carry no progress and produce no events.
func ProgressEvents(userID string, res *savings.SaveResult) []Event {
	if res.Progress == nil {
		return nil
	}
	var events []Event
	at := res.Entry.CreatedAt
	if res.Progress.LeveledUp {
		unlocked := make([]string, len(res.Progress.UnlockedRewards))
		for i, reward := range res.Progress.UnlockedRewards {
			unlocked[i] = reward.ID
		}
		events = append(events, Event{
			Type:       EventLevelUp,
			UserID:     userID,
			OccurredAt: at,
			Payload: LevelUpPayload{
				PreviousLevel:     res.Progress.PreviousLevel,
				Level:             res.Progress.Period.CurrentLevel,
				UnlockedRewardIDs: unlocked,
			},
		})
	}
	for _, c := range res.Progress.CompletedChallenges {
		events = append(events, Event{
			Type:       EventChallengeCompleted,
			UserID:     userID,
			OccurredAt: at,
			Payload:    ChallengePayload{ChallengeID: c.ID, Points: c.Points},
		})
	}
	return events
}
