package domain

// Feature flag keys referenced by the service
const (
	FeatureSmartWarnings   = "smart_warnings"
	FeatureRealtimeUpdates = "realtime_updates"
)

// FeatureFlag is one rollout definition
type FeatureFlag struct {
	Key            string   `json:"key"`
	Description    string   `json:"description"`
	Enabled        bool     `json:"enabled"`
	RolloutPercent int      `json:"rollout_percent"`
	AllowList      []string `json:"allow_list,omitempty"`
}
