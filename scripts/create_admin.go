// Bootstrap the first admin account.
//
// Registration always creates USER accounts, so a fresh deployment has no
// way to reach the admin screens. Run this once after migration:
//
//	go run scripts/create_admin.go <name> <email> <password>
//
// If the email already exists the account is promoted to ADMIN instead.
package main

import (
	"log"
	"os"

	"kpi_tracker_backend/internal/config"
	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/pkg/database"
	"kpi_tracker_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) != 4 {
		log.Fatal("usage: go run scripts/create_admin.go <name> <email> <password>")
	}
	name, email, password := os.Args[1], os.Args[2], os.Args[3]

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	var existing model.User
	err = db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if err := db.Model(&existing).Updates(map[string]interface{}{
			"role":   model.RoleAdmin,
			"status": model.StatusApproved,
		}).Error; err != nil {
			log.Fatalf("failed to promote user: %v", err)
		}
		log.Printf("promoted %s to admin", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleAdmin,
		Status:   model.StatusApproved,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	log.Printf("created admin %s (id=%d)", email, admin.ID)
}
