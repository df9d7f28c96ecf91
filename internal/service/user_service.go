package service

import (
	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/repository"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

func (s *UserService) List() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) ListPending() ([]model.User, error) {
	return s.UserRepo.FindByStatus(model.StatusPending)
}

func (s *UserService) Approve(id uint) error {
	return s.UserRepo.UpdateStatus(id, model.StatusApproved)
}

func (s *UserService) Reject(id uint) error {
	return s.UserRepo.UpdateStatus(id, model.StatusRejected)
}

func (s *UserService) Delete(id uint) error {
	return s.UserRepo.Delete(id)
}

// UpdateProfile lets a user change their display name and profile picture.
func (s *UserService) UpdateProfile(id uint, name, profilePicture string) error {
	fields := map[string]interface{}{}
	if name != "" {
		fields["name"] = name
	}
	if profilePicture != "" {
		fields["profile_picture"] = profilePicture
	}
	if len(fields) == 0 {
		return nil
	}
	return s.UserRepo.UpdateProfile(id, fields)
}
