package domain

// EventType identifies what an engine call changed.
type EventType string

// Engine and service event types. The string values double as bus and
// broker routing keys.
const (
	EventTypeTierAdvanced     EventType = "tier.advanced"
	EventTypeRewardIssued     EventType = "reward.issued"
	EventTypeUpgradePurchased EventType = "upgrade.purchased"
	EventTypeProgressSaved    EventType = "progress.saved"
	EventTypeProgressReset    EventType = "progress.reset"
)

// ProgressEvent is emitted by the engine in the order changes happened.
// Exactly one of the id fields is set, matching Type.
type ProgressEvent struct {
	Type      EventType `json:"type"`
	TierID    string    `json:"tier_id,omitempty"`
	RewardID  string    `json:"reward_id,omitempty"`
	UpgradeID string    `json:"upgrade_id,omitempty"`
}

func TierAdvanced(tierID string) ProgressEvent {
	return ProgressEvent{Type: EventTypeTierAdvanced, TierID: tierID}
}

func RewardIssued(rewardID string) ProgressEvent {
	return ProgressEvent{Type: EventTypeRewardIssued, RewardID: rewardID}
}

func UpgradePurchased(upgradeID string) ProgressEvent {
	return ProgressEvent{Type: EventTypeUpgradePurchased, UpgradeID: upgradeID}
}
