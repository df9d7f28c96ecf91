package service

import (
	"context"
	"time"

	"kpi_tracker_backend/internal/config"
	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/repository"
	"kpi_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo        *repository.UserRepository
	SettingsService *SettingsService
	Cfg             *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, settingsService *SettingsService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:        userRepo,
		SettingsService: settingsService,
		Cfg:             cfg,
	}
}

// Register creates an account, honoring the registration toggles: closed
// registration rejects outright, requireApproval parks the account as
// PENDING until an admin approves it.
func (s *AuthService) Register(ctx context.Context, user *model.User) error {
	settings, err := s.SettingsService.Load(ctx)
	if err != nil {
		return err
	}
	if !settings.IsRegistrationOpen {
		return util.ErrRegistrationClosed
	}

	_, err = s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.Role = model.RoleUser

	user.Status = model.StatusApproved
	if settings.RequireApproval {
		user.Status = model.StatusPending
	}

	return s.UserRepo.Create(user)
}

// Login verifies credentials and account status, then issues a JWT.
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrUserNotFound
	}

	switch user.Status {
	case model.StatusPending:
		return "", nil, util.ErrAccountPending
	case model.StatusRejected:
		return "", nil, util.ErrAccountRejected
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	s.UserRepo.UpdateLastLogin(user.ID)
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}

const resetTokenTTL = time.Hour

// ForgotPassword issues a one-hour reset token. The token is returned to
// the caller layer, which decides how to deliver it; no mailer here.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrUserNotFound
	}

	token := model.GenerateUUID()
	if err := s.UserRepo.SetResetToken(user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consumes a reset token and sets the new password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	user, err := s.UserRepo.FindByResetToken(token)
	if err != nil || user.ResetToken == "" {
		return util.ErrInvalidResetToken
	}
	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		return util.ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(user.ID, string(hashedPassword))
}
