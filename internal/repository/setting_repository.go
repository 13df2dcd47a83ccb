package repository

import (
	"context"
	"errors"
	"fmt"

	"cardflow/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the stored value and whether the key exists.
func (r *SettingRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var setting model.Setting
	err := r.db.WithContext(ctx).Where(map[string]any{"key": key}).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

// Set inserts or replaces the value for key.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&model.Setting{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where(map[string]any{"key": key}).Delete(&model.Setting{}).Error
}
