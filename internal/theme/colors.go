package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session outcome colors
const (
	ColorAborted   Color = "1" // Red - aborted session
	ColorCompleted Color = "2" // Green - completed session
	ColorRunning   Color = "3" // Yellow - session in progress
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorPenalty Color = "196" // Red - points lost
	ColorReward  Color = "226" // Yellow - points earned
	ColorStreak  Color = "214" // Orange - streak flames
	ColorWarning Color = "178" // Gold - distraction warnings
)
