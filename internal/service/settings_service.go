package service

import (
	"context"
	"encoding/json"
	"time"

	"kpi_tracker_backend/internal/config"
	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/repository"
	"kpi_tracker_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const settingsCacheKey = "settings:snapshot"

// AppSettings is the typed view of the flat Settings table. It is loaded
// fresh (or from a short-TTL cache) per request and is never a source of
// truth for authorization.
type AppSettings struct {
	IsRegistrationOpen     bool   `json:"isRegistrationOpen"`
	RequireApproval        bool   `json:"requireApproval"`
	ShowHiddenCards        bool   `json:"showHiddenCards"`
	ShowWorkLogTitle       bool   `json:"showWorkLogTitle"`
	ShowWorkLogImages      bool   `json:"showWorkLogImages"`
	ShowWorkLogDescription bool   `json:"showWorkLogDescription"`
	GlobalTheme            string `json:"globalTheme"`
}

type SettingsService struct {
	SettingRepo *repository.SettingRepository
	Redis       *redis.Client
	CacheTTL    time.Duration
}

func NewSettingsService(settingRepo *repository.SettingRepository, rdb *redis.Client, cfg *config.Config) *SettingsService {
	return &SettingsService{
		SettingRepo: settingRepo,
		Redis:       rdb,
		CacheTTL:    time.Duration(cfg.Settings.CacheTTLSeconds) * time.Second,
	}
}

// Load returns the current typed settings, via the cache when it is warm.
// Cache failures fall back to the table: the cache is an optimization, not
// a source of truth.
func (s *SettingsService) Load(ctx context.Context) (*AppSettings, error) {
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, settingsCacheKey).Result(); err == nil {
			var cached AppSettings
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	rows, err := s.SettingRepo.FindAll()
	if err != nil {
		return nil, err
	}
	settings := fromRows(rows)

	if s.Redis != nil {
		if raw, err := json.Marshal(settings); err == nil {
			if err := s.Redis.Set(ctx, settingsCacheKey, raw, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("settings cache write failed", zap.Error(err))
			}
		}
	}

	return settings, nil
}

// VisibleRows returns the raw setting rows a caller may read: public keys
// for everyone, the admin keys only for admins.
func (s *SettingsService) VisibleRows(isAdmin bool) ([]model.Setting, error) {
	keys := model.PublicSettingKeys
	if isAdmin {
		keys = append(append([]string{}, model.PublicSettingKeys...), model.AdminSettingKeys...)
	}
	return s.SettingRepo.FindByKeys(keys)
}

// Update upserts one setting by key and invalidates the cache.
func (s *SettingsService) Update(ctx context.Context, key, value string) error {
	if err := s.SettingRepo.Upsert(key, value); err != nil {
		return err
	}
	if s.Redis != nil {
		if err := s.Redis.Del(ctx, settingsCacheKey).Err(); err != nil {
			logger.Log.Warn("settings cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

func fromRows(rows []model.Setting) *AppSettings {
	settings := &AppSettings{GlobalTheme: "light"}
	for _, row := range rows {
		on := row.Value == "true"
		switch row.Key {
		case model.SettingRegistrationOpen:
			settings.IsRegistrationOpen = on
		case model.SettingRequireApproval:
			settings.RequireApproval = on
		case model.SettingShowHiddenCards:
			settings.ShowHiddenCards = on
		case model.SettingShowWorkLogTitle:
			settings.ShowWorkLogTitle = on
		case model.SettingShowWorkLogImages:
			settings.ShowWorkLogImages = on
		case model.SettingShowWorkLogDescription:
			settings.ShowWorkLogDescription = on
		case model.SettingGlobalTheme:
			settings.GlobalTheme = row.Value
		}
	}
	return settings
}
