package database

import (
	"fmt"
	"log"

	"kpi_tracker_backend/internal/config"
	"kpi_tracker_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection and, when migrate is set, applies the
// schema migration and seeds the settings rows. Release deployments skip
// migration unless forced from the command line.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Goal{},
		&model.GoalAssignment{},
		&model.SubMetric{},
		&model.WorkLog{},
		&model.Image{},
		&model.Setting{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed the settings store with its known keys so the admin screen
	// always has a row to toggle.
	defaults := []model.Setting{
		{Key: model.SettingRegistrationOpen, Value: "true", Description: "Allow new user registration"},
		{Key: model.SettingRequireApproval, Value: "false", Description: "New accounts wait for admin approval"},
		{Key: model.SettingShowHiddenCards, Value: "false", Description: "Show hidden goals to authenticated users"},
		{Key: model.SettingShowWorkLogTitle, Value: "true", Description: "Display work log titles"},
		{Key: model.SettingShowWorkLogImages, Value: "true", Description: "Display work log images"},
		{Key: model.SettingShowWorkLogDescription, Value: "true", Description: "Display work log descriptions"},
		{Key: model.SettingGlobalTheme, Value: "light", Description: "Default UI theme"},
	}
	for _, s := range defaults {
		var count int64
		db.Model(&model.Setting{}).Where("`key` = ?", s.Key).Count(&count)
		if count == 0 {
			db.Create(&s)
		}
	}

	return db, nil
}
