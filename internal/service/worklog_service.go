package service

import (
	"context"
	"errors"
	"time"

	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/repository"
	"kpi_tracker_backend/internal/util"
	"kpi_tracker_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultFeedLimit = 50

type WorkLogService struct {
	WorkLogRepo     *repository.WorkLogRepository
	GoalRepo        *repository.GoalRepository
	StorageService  *StorageService
	SettingsService *SettingsService
}

func NewWorkLogService(workLogRepo *repository.WorkLogRepository, goalRepo *repository.GoalRepository, storageService *StorageService, settingsService *SettingsService) *WorkLogService {
	return &WorkLogService{
		WorkLogRepo:     workLogRepo,
		GoalRepo:        goalRepo,
		StorageService:  storageService,
		SettingsService: settingsService,
	}
}

// WorkLogInput carries one work report. Exactly one value form must be
// present: CompletedWork (optionally tagged with SubMetricID) or a
// non-empty SubMetricValues mapping.
type WorkLogInput struct {
	GoalID          uint
	Date            time.Time
	Title           string
	Description     string
	CompletedWork   *float64
	SubMetricID     *uint
	SubMetricValues model.SubMetricValueMap
	ImageURLs       []string
}

func (s *WorkLogService) Create(claims *util.Claims, in WorkLogInput) (*model.WorkLog, error) {
	if in.CompletedWork == nil && len(in.SubMetricValues) == 0 {
		return nil, util.ErrMissingWorkValue
	}
	if _, err := s.GoalRepo.FindByID(in.GoalID); err != nil {
		return nil, mapGoalErr(err)
	}

	log := &model.WorkLog{
		GoalID:          in.GoalID,
		UserID:          claims.UserID,
		Date:            in.Date,
		Title:           in.Title,
		Description:     in.Description,
		SubMetricID:     in.SubMetricID,
		SubMetricValues: in.SubMetricValues,
	}
	if in.CompletedWork != nil {
		log.CompletedWork = *in.CompletedWork
	}

	if err := s.WorkLogRepo.Create(log); err != nil {
		return nil, err
	}

	if len(in.ImageURLs) > 0 {
		images := make([]model.Image, 0, len(in.ImageURLs))
		for _, u := range in.ImageURLs {
			images = append(images, model.Image{
				WorkLogID: log.ID,
				URL:       u,
				PublicID:  ExtractPublicID(u),
			})
		}
		if err := s.WorkLogRepo.AddImages(images); err != nil {
			return nil, err
		}
		log.Images = images
	}

	return log, nil
}

// Update rewrites a work log's fields and replaces its image set. Only the
// author or an admin may edit.
func (s *WorkLogService) Update(ctx context.Context, claims *util.Claims, id uint, in WorkLogInput) (*model.WorkLog, error) {
	log, err := s.WorkLogRepo.FindByID(id)
	if err != nil {
		return nil, mapWorkLogErr(err)
	}
	if log.UserID != claims.UserID && !claims.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}
	if in.CompletedWork == nil && len(in.SubMetricValues) == 0 {
		return nil, util.ErrMissingWorkValue
	}

	log.Date = in.Date
	log.Title = in.Title
	log.Description = in.Description
	log.SubMetricID = in.SubMetricID
	log.SubMetricValues = in.SubMetricValues
	if in.CompletedWork != nil {
		log.CompletedWork = *in.CompletedWork
	}

	if err := s.replaceImages(ctx, log, in.ImageURLs); err != nil {
		return nil, err
	}

	if err := s.WorkLogRepo.Save(log); err != nil {
		return nil, err
	}
	return log, nil
}

// Delete removes a work log and its images, including their remote copies.
// Only the author or an admin may delete.
func (s *WorkLogService) Delete(ctx context.Context, claims *util.Claims, id uint) error {
	log, err := s.WorkLogRepo.FindByID(id)
	if err != nil {
		return mapWorkLogErr(err)
	}
	if log.UserID != claims.UserID && !claims.IsAdmin() {
		return util.ErrPermissionDenied
	}

	for _, img := range log.Images {
		s.deleteRemote(ctx, img)
	}
	return s.WorkLogRepo.Delete(id)
}

func (s *WorkLogService) Get(id uint) (*model.WorkLog, error) {
	log, err := s.WorkLogRepo.FindByID(id)
	if err != nil {
		return nil, mapWorkLogErr(err)
	}
	return log, nil
}

// Latest returns the activity feed. For non-admin viewers the work-log
// display toggles apply: suppressed fields are blanked, not withheld rows.
func (s *WorkLogService) Latest(ctx context.Context, limit int, isAdmin bool) ([]model.WorkLog, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	logs, err := s.WorkLogRepo.FindLatest(limit)
	if err != nil {
		return nil, err
	}
	if isAdmin {
		return logs, nil
	}

	settings, err := s.SettingsService.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if !settings.ShowWorkLogTitle {
			logs[i].Title = ""
		}
		if !settings.ShowWorkLogDescription {
			logs[i].Description = ""
		}
		if !settings.ShowWorkLogImages {
			logs[i].Images = nil
		}
	}
	return logs, nil
}

// replaceImages diffs the stored image set against the requested URL list:
// rows whose URL disappeared are removed (remote copy included), new URLs
// are inserted.
func (s *WorkLogService) replaceImages(ctx context.Context, log *model.WorkLog, urls []string) error {
	keep := make(map[string]bool, len(urls))
	for _, u := range urls {
		keep[u] = true
	}

	var removedIDs []uint
	existing := make(map[string]bool, len(log.Images))
	for _, img := range log.Images {
		existing[img.URL] = true
		if !keep[img.URL] {
			removedIDs = append(removedIDs, img.ID)
			s.deleteRemote(ctx, img)
		}
	}
	if err := s.WorkLogRepo.DeleteImages(removedIDs); err != nil {
		return err
	}

	var added []model.Image
	for _, u := range urls {
		if existing[u] {
			continue
		}
		added = append(added, model.Image{
			WorkLogID: log.ID,
			URL:       u,
			PublicID:  ExtractPublicID(u),
		})
	}
	if err := s.WorkLogRepo.AddImages(added); err != nil {
		return err
	}

	images, err := s.WorkLogRepo.FindImages(log.ID)
	if err != nil {
		return err
	}
	log.Images = images
	return nil
}

// deleteRemote best-efforts removal of the stored copy. A failed remote
// delete must not block the database delete, so it only logs.
func (s *WorkLogService) deleteRemote(ctx context.Context, img model.Image) {
	if img.PublicID == "" || s.StorageService == nil {
		return
	}
	if err := s.StorageService.Delete(ctx, img.PublicID); err != nil {
		logger.Log.Warn("remote image delete failed",
			zap.Uint("imageId", img.ID),
			zap.String("publicId", img.PublicID),
			zap.Error(err))
	}
}

func mapWorkLogErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrWorkLogNotFound
	}
	return err
}
