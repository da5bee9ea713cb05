package ports

// Notifier receives the numeric signals the engine emits. Rendering beyond
// plain values is the collaborator's concern.
type Notifier interface {
	// FocusWarning fires when the user returns mid-session from a
	// background excursion.
	FocusWarning(exitCount int, presetName, timeAway string)

	// LimitNudge fires at most once per app per day when a usage limit is
	// crossed.
	LimitNudge(appID string, usedMinutes, limitMinutes int)

	// PenaltyAlert fires when a daily penalty is applied.
	PenaltyAlert(pointsLost int)

	// SessionComplete fires when a focus session ends successfully.
	SessionComplete(presetName string, pointsEarned int)
}
