package trackers

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/pathtracker/internal/domain/tracker"
	trackererr "github.com/KirkDiggler/pathtracker/internal/errors"
	"github.com/KirkDiggler/pathtracker/internal/repositories"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// TrackerSave is the row stored for each save key
type TrackerSave struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName matches the table used by the SQLite backend
func (TrackerSave) TableName() string {
	return "tracker_saves"
}

// PostgresRepository stores saves in Postgres through gorm
type PostgresRepository struct {
	db *gorm.DB
}

// OpenPostgres connects to dsn and migrates the tracker_saves table
func OpenPostgres(dsn string) (*PostgresRepository, error) {
	if dsn == "" {
		return nil, trackererr.InvalidArgument("postgres dsn is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, trackererr.Wrap(err, "open postgres")
	}
	return NewPostgresRepository(db)
}

// NewPostgresRepository wraps an open gorm handle and migrates the schema
func NewPostgresRepository(db *gorm.DB) (*PostgresRepository, error) {
	if db == nil {
		return nil, trackererr.InvalidArgument("gorm db is required")
	}
	if err := db.AutoMigrate(&TrackerSave{}); err != nil {
		return nil, trackererr.Wrap(err, "migrate tracker_saves")
	}
	return &PostgresRepository{db: db}, nil
}

// Close releases the underlying connection pool
func (r *PostgresRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save upserts the document for key
func (r *PostgresRepository) Save(ctx context.Context, key string, state *tracker.State) error {
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := encode(state)
	if err != nil {
		return err
	}

	row := TrackerSave{
		Key:       key,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return trackererr.Wrapf(err, "failed to save tracker %s", key)
	}
	return nil
}

// Load reads the document for key
func (r *PostgresRepository) Load(ctx context.Context, key string) (*tracker.State, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var row TrackerSave
	err := r.db.WithContext(ctx).Where(&TrackerSave{Key: key}).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NewRecordNotFoundError(key)
		}
		return nil, trackererr.Wrapf(err, "failed to load tracker %s", key)
	}
	return decode(key, row.Data)
}
