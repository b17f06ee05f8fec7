package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"canopy/internal/domain"
	"canopy/internal/logging"
	"canopy/internal/ports"
)

// SQLiteRepository persists local store snapshots using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.StoreRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the canopy logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("CANOPY_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a repository at dbPath, creating the database
// and schema as needed
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&PlantModel{}, &TaskModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Load reads the saved snapshot. An empty database returns empty slices and
// no error.
func (r *SQLiteRepository) Load(ctx context.Context) ([]domain.LocalPlant, []domain.Task, error) {
	var plantModels []PlantModel
	if err := r.db.WithContext(ctx).Order("planted_at").Find(&plantModels).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load plants: %w", err)
	}

	var taskModels []TaskModel
	if err := r.db.WithContext(ctx).Order("id").Find(&taskModels).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	plants := make([]domain.LocalPlant, 0, len(plantModels))
	for _, m := range plantModels {
		plants = append(plants, modelToPlant(m))
	}
	tasks := make([]domain.Task, 0, len(taskModels))
	for _, m := range taskModels {
		tasks = append(tasks, modelToTask(m))
	}
	return plants, tasks, nil
}

// Save replaces the stored snapshot with the given state in one transaction
func (r *SQLiteRepository) Save(ctx context.Context, plants []domain.LocalPlant, tasks []domain.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&TaskModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear tasks: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&PlantModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear plants: %w", err)
		}

		for _, p := range plants {
			model := plantToModel(p)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to save plant %s: %w", p.ID, err)
			}
		}
		for _, t := range tasks {
			model := taskToModel(t)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to save task %s: %w", t.ID, err)
			}
		}
		return nil
	})

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrBusy {
		return fmt.Errorf("database busy, snapshot not saved: %w", err)
	}
	return err
}

// Close closes the underlying database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}
