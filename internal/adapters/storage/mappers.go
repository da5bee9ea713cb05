package storage

import (
	"encoding/json"

	"climb/internal/domain"
	"climb/internal/logging"
)

// toFocusSessionModel converts a domain focus session to the GORM model.
func toFocusSessionModel(session *domain.FocusSession) *FocusSessionModel {
	leaveTimes, err := json.Marshal(session.AppLeaveTimes)
	if err != nil {
		logging.Logger.Error("Failed to marshal leave intervals", "error", err, "session", session.ID)
		leaveTimes = []byte("[]")
	}

	return &FocusSessionModel{
		Completed:      session.Completed,
		EndTime:        session.EndTime,
		ExitCount:      session.ExitCount,
		ID:             session.ID,
		LeaveTimes:     string(leaveTimes),
		PointsEarned:   session.PointsEarned,
		PresetName:     session.PresetName,
		SessionID:      session.SessionID,
		StartTime:      session.StartTime,
		TotalDuration:  session.TotalDuration,
		TotalFocusTime: session.TotalFocusTime,
		UserID:         session.UserID,
	}
}

// toDomainFocusSession converts a GORM model to a domain focus session.
func toDomainFocusSession(model *FocusSessionModel) *domain.FocusSession {
	var leaveTimes []domain.LeaveInterval
	if err := json.Unmarshal([]byte(model.LeaveTimes), &leaveTimes); err != nil {
		logging.Logger.Error("Failed to unmarshal leave intervals", "error", err, "session", model.ID)
		leaveTimes = []domain.LeaveInterval{}
	}

	return &domain.FocusSession{
		AppLeaveTimes:  leaveTimes,
		Completed:      model.Completed,
		EndTime:        model.EndTime,
		ExitCount:      model.ExitCount,
		ID:             model.ID,
		PointsEarned:   model.PointsEarned,
		PresetName:     model.PresetName,
		SessionID:      model.SessionID,
		StartTime:      model.StartTime,
		TotalDuration:  model.TotalDuration,
		TotalFocusTime: model.TotalFocusTime,
		UserID:         model.UserID,
	}
}

// toUsageEntryModel converts a domain usage entry to the GORM model.
func toUsageEntryModel(entry domain.UsageEntry) *UsageEntryModel {
	return &UsageEntryModel{
		AccumulatedMillis: entry.AccumulatedMillis,
		AppID:             entry.AppID,
		DayKey:            string(entry.Day),
		NudgeShown:        entry.NudgeShown,
		PenaltyApplied:    entry.PenaltyApplied,
	}
}

// toDomainUsageEntry converts a GORM model to a domain usage entry.
func toDomainUsageEntry(model *UsageEntryModel) *domain.UsageEntry {
	return &domain.UsageEntry{
		AccumulatedMillis: model.AccumulatedMillis,
		AppID:             model.AppID,
		Day:               domain.DayKey(model.DayKey),
		NudgeShown:        model.NudgeShown,
		PenaltyApplied:    model.PenaltyApplied,
	}
}

// toTeamModels splits a domain team into its team, member and reward models.
func toTeamModels(team *domain.Team) (*TeamModel, []TeamMemberModel, []TeamRewardModel) {
	teamModel := &TeamModel{
		AllMembersConsecutiveDays: team.Streak.AllMembersConsecutiveDays,
		CurrentStreak:             team.Streak.CurrentStreak,
		ID:                        team.ID,
		LastSessionDate:           team.Streak.LastSessionDate,
		MaxMembers:                team.MaxMembers,
		Name:                      team.Name,
		StreakMultiplier:          team.Streak.StreakMultiplier,
		TeamCreatedAt:             team.CreatedAt,
		TeamLevel:                 team.TeamLevel,
		TeamPoints:                team.TeamPoints,
		TeamUpdatedAt:             team.UpdatedAt,
	}

	members := make([]TeamMemberModel, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, TeamMemberModel{
			JoinedAt:                  member.JoinedAt,
			Name:                      member.Name,
			PomodoroSessionsCompleted: member.PomodoroSessionsCompleted,
			Role:                      member.Role,
			TeamID:                    team.ID,
			UserID:                    member.UserID,
		})
	}

	rewards := make([]TeamRewardModel, 0, len(team.Rewards))
	for _, reward := range team.Rewards {
		rewards = append(rewards, TeamRewardModel{
			Description: reward.Description,
			ID:          reward.ID,
			Milestone:   reward.Milestone,
			Name:        reward.Name,
			Points:      reward.Points,
			TeamID:      team.ID,
			UnlockedAt:  reward.UnlockedAt,
		})
	}

	return teamModel, members, rewards
}

// toDomainTeam reassembles a domain team from its models.
func toDomainTeam(model *TeamModel, memberModels []TeamMemberModel, rewardModels []TeamRewardModel) *domain.Team {
	members := make([]domain.TeamMember, 0, len(memberModels))
	for _, member := range memberModels {
		members = append(members, domain.TeamMember{
			JoinedAt:                  member.JoinedAt,
			Name:                      member.Name,
			PomodoroSessionsCompleted: member.PomodoroSessionsCompleted,
			Role:                      member.Role,
			UserID:                    member.UserID,
		})
	}

	rewards := make([]domain.TeamReward, 0, len(rewardModels))
	for _, reward := range rewardModels {
		rewards = append(rewards, domain.TeamReward{
			Description: reward.Description,
			ID:          reward.ID,
			Milestone:   reward.Milestone,
			Name:        reward.Name,
			Points:      reward.Points,
			UnlockedAt:  reward.UnlockedAt,
		})
	}

	return &domain.Team{
		CreatedAt:  model.TeamCreatedAt,
		ID:         model.ID,
		MaxMembers: model.MaxMembers,
		Members:    members,
		Name:       model.Name,
		Rewards:    rewards,
		Streak: domain.TeamStreak{
			AllMembersConsecutiveDays: model.AllMembersConsecutiveDays,
			CurrentStreak:             model.CurrentStreak,
			LastSessionDate:           model.LastSessionDate,
			StreakMultiplier:          model.StreakMultiplier,
		},
		TeamLevel:  model.TeamLevel,
		TeamPoints: model.TeamPoints,
		UpdatedAt:  model.TeamUpdatedAt,
	}
}
