package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"climb/internal/domain"
	"climb/internal/logging"
	"climb/internal/ports"
)

// Compile-time interface checks
var (
	_ ports.FocusSessionRepository = (*SQLiteRepository)(nil)
	_ ports.UsageRepository        = (*SQLiteRepository)(nil)
	_ ports.TeamRepository         = (*SQLiteRepository)(nil)
)

// SQLiteRepository implements the persistence ports using GORM over SQLite.
type SQLiteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository creates a new SQLite repository and runs migrations.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL mode allows concurrent reads while a write is in flight,
	// busy_timeout makes SQLite wait instead of failing fast on contention
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_foreign_keys=ON"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&FocusSessionModel{},
		&UsageEntryModel{},
		&TeamModel{},
		&TeamMemberModel{},
		&TeamRewardModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logging.Logger.Debug("SQLite repository initialized", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying database connection.
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// withRetry retries fn on SQLITE_BUSY/SQLITE_LOCKED with a linear backoff.
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) &&
			(sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Duration(50*(i+1)) * time.Millisecond)
			continue
		}
		return err
	}
	return err
}

// SaveSession upserts a completed focus session.
func (r *SQLiteRepository) SaveSession(ctx context.Context, session domain.FocusSession) error {
	model := toFocusSessionModel(&session)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save focus session: %w", err)
	}
	return nil
}

// ListSessions returns all persisted focus sessions, newest first.
func (r *SQLiteRepository) ListSessions(ctx context.Context) ([]domain.FocusSession, error) {
	var models []FocusSessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("start_time DESC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list focus sessions: %w", err)
	}

	sessions := make([]domain.FocusSession, 0, len(models))
	for i := range models {
		sessions = append(sessions, *toDomainFocusSession(&models[i]))
	}
	return sessions, nil
}

// ListSessionsRange returns sessions whose start time falls in the inclusive
// epoch-millisecond range.
func (r *SQLiteRepository) ListSessionsRange(ctx context.Context, fromMillis, toMillis int64) ([]domain.FocusSession, error) {
	var models []FocusSessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("start_time >= ? AND start_time <= ?", fromMillis, toMillis).
			Order("start_time DESC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list focus sessions in range: %w", err)
	}

	sessions := make([]domain.FocusSession, 0, len(models))
	for i := range models {
		sessions = append(sessions, *toDomainFocusSession(&models[i]))
	}
	return sessions, nil
}

// GetUsage returns the usage entry for (day, app), or nil when none exists.
func (r *SQLiteRepository) GetUsage(ctx context.Context, day domain.DayKey, appID string) (*domain.UsageEntry, error) {
	var model UsageEntryModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("app_id = ? AND day_key = ?", appID, string(day)).
			First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get usage entry: %w", err)
	}
	return toDomainUsageEntry(&model), nil
}

// PutUsage upserts a usage entry.
func (r *SQLiteRepository) PutUsage(ctx context.Context, entry domain.UsageEntry) error {
	model := toUsageEntryModel(entry)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save usage entry: %w", err)
	}
	return nil
}

// GetTeam loads a team with its members and rewards.
func (r *SQLiteRepository) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	var model TeamModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", teamID).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var members []TeamMemberModel
	err = withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("team_id = ?", teamID).
			Order("joined_at ASC").
			Find(&members).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	var rewards []TeamRewardModel
	err = withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("team_id = ?", teamID).
			Order("unlocked_at ASC").
			Find(&rewards).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to get team rewards: %w", err)
	}

	return toDomainTeam(&model, members, rewards), nil
}

// ListTeams returns all teams with members and rewards loaded.
func (r *SQLiteRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	var models []TeamModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]domain.Team, 0, len(models))
	for i := range models {
		team, err := r.GetTeam(ctx, models[i].ID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	return teams, nil
}

// SaveTeam upserts the team snapshot with its members and rewards in one
// transaction.
func (r *SQLiteRepository) SaveTeam(ctx context.Context, team *domain.Team) error {
	teamModel, memberModels, rewardModels := toTeamModels(team)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(teamModel).Error; err != nil {
				return err
			}

			// Members removed from the snapshot are removed from the table
			if err := tx.Where("team_id = ?", team.ID).Delete(&TeamMemberModel{}).Error; err != nil {
				return err
			}
			for i := range memberModels {
				if err := tx.Create(&memberModels[i]).Error; err != nil {
					return err
				}
			}

			for i := range rewardModels {
				if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rewardModels[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}
	return nil
}

// newGormLogger routes GORM's logs to slog, surfacing SQL only in debug.
func newGormLogger() gormlogger.Interface {
	level := gormlogger.Silent
	if os.Getenv("CLIMB_DEBUG") == "1" {
		level = gormlogger.Warn
	}
	return gormlogger.New(slogWriter{}, gormlogger.Config{
		IgnoreRecordNotFoundError: true,
		LogLevel:                  level,
		SlowThreshold:             200 * time.Millisecond,
	})
}

type slogWriter struct{}

func (slogWriter) Printf(format string, args ...interface{}) {
	logging.Logger.Debug(fmt.Sprintf(format, args...))
}
