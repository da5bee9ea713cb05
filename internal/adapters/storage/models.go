package storage

import "time"

// FocusSessionModel is the GORM model for completed focus sessions.
// Epoch-millisecond columns mirror the domain entity; the leave intervals
// are stored as a JSON blob.
type FocusSessionModel struct {
	Completed      bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
	EndTime        int64  `gorm:"not null;default:0"`
	ExitCount      int    `gorm:"not null;default:0"`
	ID             string `gorm:"primaryKey"`
	LeaveTimes     string `gorm:"not null;default:'[]'"`
	PointsEarned   int    `gorm:"not null;default:0"`
	PresetName     string `gorm:"default:''"`
	SessionID      string `gorm:"not null;default:'';index:idx_focus_sessions_session"`
	StartTime      int64  `gorm:"not null;index:idx_focus_sessions_start"`
	TotalDuration  int64  `gorm:"not null;default:0"`
	TotalFocusTime int64  `gorm:"not null;default:0"`
	UpdatedAt      time.Time
	UserID         string `gorm:"not null;default:'';index:idx_focus_sessions_user"`
}

// TableName specifies the table name for GORM
func (FocusSessionModel) TableName() string { return "focus_sessions" }

// UsageEntryModel is the GORM model for per-day per-app usage accounting.
// A new day produces a fresh row; old rows are never mutated on rollover.
type UsageEntryModel struct {
	AccumulatedMillis int64  `gorm:"not null;default:0"`
	AppID             string `gorm:"primaryKey"`
	CreatedAt         time.Time
	DayKey            string `gorm:"primaryKey"`
	NudgeShown        bool   `gorm:"not null;default:false"`
	PenaltyApplied    bool   `gorm:"not null;default:false"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (UsageEntryModel) TableName() string { return "usage_entries" }

// TeamModel is the GORM model for teams, streak fields inlined.
type TeamModel struct {
	AllMembersConsecutiveDays int     `gorm:"not null;default:0"`
	CreatedAt                 time.Time
	CurrentStreak             int     `gorm:"not null;default:0"`
	ID                        string  `gorm:"primaryKey"`
	LastSessionDate           int64   `gorm:"not null;default:0"`
	MaxMembers                int     `gorm:"not null;default:10"`
	Name                      string  `gorm:"not null"`
	StreakMultiplier          float64 `gorm:"not null;default:1.0"`
	TeamCreatedAt             int64   `gorm:"not null;default:0"`
	TeamLevel                 int     `gorm:"not null;default:1"`
	TeamPoints                int     `gorm:"not null;default:0"`
	TeamUpdatedAt             int64   `gorm:"not null;default:0"`
	UpdatedAt                 time.Time
}

// TableName specifies the table name for GORM
func (TeamModel) TableName() string { return "teams" }

// TeamMemberModel is the GORM model for team members.
type TeamMemberModel struct {
	CreatedAt                 time.Time
	JoinedAt                  int64  `gorm:"not null;default:0"`
	Name                      string `gorm:"default:''"`
	PomodoroSessionsCompleted int    `gorm:"not null;default:0"`
	Role                      string `gorm:"not null;default:'member'"`
	TeamID                    string `gorm:"primaryKey;index:idx_team_members_team"`
	UpdatedAt                 time.Time
	UserID                    string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (TeamMemberModel) TableName() string { return "team_members" }

// TeamRewardModel is the GORM model for rewards unlocked on level-up.
type TeamRewardModel struct {
	CreatedAt   time.Time
	Description string `gorm:"default:''"`
	ID          string `gorm:"primaryKey"`
	Milestone   int    `gorm:"not null;default:0"`
	Name        string `gorm:"not null"`
	Points      int    `gorm:"not null;default:0"`
	TeamID      string `gorm:"not null;index:idx_team_rewards_team"`
	UnlockedAt  int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TeamRewardModel) TableName() string { return "team_rewards" }
