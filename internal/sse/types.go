package sse

// ConnectedPayload is the first message sent on every stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
	PlayerID string   `json:"player_id,omitempty"`
}

// WisdomCookiePayload is the client-facing form of a reward event
type WisdomCookiePayload struct {
	RewardID         string  `json:"reward_id"`
	Proverb          string  `json:"proverb"`
	MeditationPrompt string  `json:"meditation_prompt"`
	EssenceYield     float64 `json:"essence_yield"`
}

// DoughFormPayload is the client-facing form of a tier advance event
type DoughFormPayload struct {
	TierID    string `json:"tier_id"`
	TierName  string `json:"tier_name"`
	TierIndex int    `json:"tier_index"`
}
