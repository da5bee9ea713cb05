package theme

import "github.com/charmbracelet/lipgloss"

// Main output styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)
)

// Session outcome styles
var (
	AbortedStyle = lipgloss.NewStyle().
			Foreground(ColorAborted)

	CompletedStyle = lipgloss.NewStyle().
			Foreground(ColorCompleted)

	RunningStyle = lipgloss.NewStyle().
			Foreground(ColorRunning)
)

// Notification styles
var (
	PenaltyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPenalty)

	RewardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorReward)

	StreakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorStreak)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Error style
var (
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)
