package repository

import (
	"time"

	"kpi_tracker_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) FindByKeys(keys []string) ([]model.Setting, error) {
	var settings []model.Setting
	err := r.DB.Where("`key` IN ?", keys).Find(&settings).Error
	return settings, err
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	err := r.DB.Find(&settings).Error
	return settings, err
}

// Get returns a single setting value, or "" when the key is absent.
func (r *SettingRepository) Get(key string) (string, error) {
	var setting model.Setting
	err := r.DB.Where("`key` = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Upsert writes a setting by key, inserting the row if it does not exist.
func (r *SettingRepository) Upsert(key, value string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value, "updated_at": time.Now()}),
	}).Create(&model.Setting{Key: key, Value: value}).Error
}
