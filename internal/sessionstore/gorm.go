package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type SessionEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

type Gorm struct {
	db *gorm.DB
}

// NewGorm migrates the session table on db and returns a store over it.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&SessionEntry{}); err != nil {
		return nil, fmt.Errorf("migrate session entries: %w", err)
	}
	return &Gorm{db: db}, nil
}

func OpenPostgres(dsn string) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return NewGorm(db)
}

// Close releases the underlying connection pool.
func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (g *Gorm) Get(ctx context.Context, key string) (string, bool, error) {
	var e SessionEntry
	err := g.db.WithContext(ctx).Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (g *Gorm) Set(ctx context.Context, key, value string) error {
	return g.MultiSet(ctx, []KV{{Key: key, Value: value}})
}

func (g *Gorm) MultiSet(ctx context.Context, pairs []KV) error {
	if len(pairs) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]SessionEntry, len(pairs))
	for i, p := range pairs {
		rows[i] = SessionEntry{Key: p.Key, Value: p.Value, UpdatedAt: now}
	}

	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rows).Error
	})
}

func (g *Gorm) MultiRemove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).Where("key IN ?", keys).Delete(&SessionEntry{}).Error
}
