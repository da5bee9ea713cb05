package domain

// BlockedApp is one app the blocker policy may suppress during a session.
type BlockedApp struct {
	Category    string `json:"category"`
	ID          string `json:"id"`
	IsBlocked   bool   `json:"is_blocked"`
	Name        string `json:"name"`
	PackageName string `json:"package_name"`
}

// BlockerConfig is user preference data for the blocker policy.
type BlockerConfig struct {
	BlockedApps         []BlockedApp `json:"blocked_apps"`
	BlockOnSessionStart bool         `json:"block_on_session_start"`
	Enabled             bool         `json:"enabled"`
}

// DefaultSocialApp is the app the usage ledger guards out of the box.
const DefaultSocialApp = "instagram"

// DefaultBlockerConfig returns the built-in policy.
func DefaultBlockerConfig() BlockerConfig {
	return BlockerConfig{
		BlockedApps: []BlockedApp{
			{Category: "social", ID: DefaultSocialApp, IsBlocked: true, Name: "Instagram", PackageName: "com.instagram.android"},
			{Category: "entertainment", ID: "tiktok", IsBlocked: true, Name: "TikTok", PackageName: "com.zhiliaoapp.musically"},
			{Category: "entertainment", ID: "youtube", IsBlocked: false, Name: "YouTube", PackageName: "com.google.android.youtube"},
		},
		BlockOnSessionStart: true,
		Enabled:             true,
	}
}

// MergeBlockedApps overlays stored app entries on the defaults, keyed by id.
// Stored entries win; unknown stored apps are appended in order.
func MergeBlockedApps(defaults, stored []BlockedApp) []BlockedApp {
	merged := make([]BlockedApp, len(defaults))
	copy(merged, defaults)

	index := make(map[string]int, len(defaults))
	for i, app := range defaults {
		index[app.ID] = i
	}

	for _, app := range stored {
		if i, ok := index[app.ID]; ok {
			merged[i] = app
			continue
		}
		index[app.ID] = len(merged)
		merged = append(merged, app)
	}

	return merged
}

// ActiveBlockedApps derives the set of apps to suppress right now. It is a
// pure function of config plus the session-active flag: empty unless the
// blocker is enabled, configured to engage on session start, and a session
// is running.
func (c BlockerConfig) ActiveBlockedApps(sessionActive bool) []BlockedApp {
	if !c.Enabled || !c.BlockOnSessionStart || !sessionActive {
		return nil
	}

	var active []BlockedApp
	for _, app := range c.BlockedApps {
		if app.IsBlocked {
			active = append(active, app)
		}
	}
	return active
}
