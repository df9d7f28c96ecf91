package repository

import (
	"time"

	"kpi_tracker_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

// FindByStatus lists accounts in one approval state, oldest first so the
// admin queue is FIFO.
func (r *UserRepository) FindByStatus(status model.UserStatus) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("status = ?", status).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateStatus(id uint, status model.UserStatus) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("status", status).Error
}

func (r *UserRepository) UpdateProfile(id uint, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.DB.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&model.User{}, id).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("last_seen", time.Now()).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("last_login", time.Now()).Error
}

func (r *UserRepository) SetResetToken(userID uint, token string, expires time.Time) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reset_token":         token,
		"reset_token_expires": expires,
	}).Error
}

func (r *UserRepository) FindByResetToken(token string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("reset_token = ?", token).First(&user).Error
	return &user, err
}

func (r *UserRepository) UpdatePassword(userID uint, hashedPassword string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password":            hashedPassword,
		"reset_token":         "",
		"reset_token_expires": nil,
	}).Error
}
