package poll

// Member is the roster-level view of a community member. Only what the poll
// engine needs: identity, the display name used for resolution and rendering,
// and whether the account is automated.
type Member struct {
	ID          string
	DisplayName string
	Bot         bool
}

// ServerConfig is the persisted per-server configuration consulted by the
// eligibility gate. The nesting mirrors the stored document layout.
type ServerConfig struct {
	Features FeatureFlags   `json:"features"`
	Security SecurityPolicy `json:"security"`
}

type FeatureFlags struct {
	Experiments ExperimentFlags `json:"experiments"`
}

type ExperimentFlags struct {
	Moderation bool `json:"moderation"`
}

type SecurityPolicy struct {
	BlockedUsers []string `json:"blocked_users"`
}

func (c ServerConfig) ModerationEnabled() bool {
	return c.Features.Experiments.Moderation
}

func (p SecurityPolicy) IsBlocked(memberID string) bool {
	for _, id := range p.BlockedUsers {
		if id == memberID {
			return true
		}
	}
	return false
}

// ServerInfo is the informational profile rendered by the summary command.
// Owner, icon and description are genuinely optional on the platform side;
// absence is a valid state handled with a fallback at render time, never at
// decision time.
type ServerInfo struct {
	Name        string  `json:"name"`
	OwnerName   *string `json:"owner_name,omitempty"`
	IconURL     *string `json:"icon_url,omitempty"`
	Description *string `json:"description,omitempty"`
}
