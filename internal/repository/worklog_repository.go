package repository

import (
	"time"

	"kpi_tracker_backend/internal/model"

	"gorm.io/gorm"
)

type WorkLogRepository struct {
	DB *gorm.DB
}

func NewWorkLogRepository(db *gorm.DB) *WorkLogRepository {
	return &WorkLogRepository{DB: db}
}

func (r *WorkLogRepository) Create(log *model.WorkLog) error {
	return r.DB.Create(log).Error
}

func (r *WorkLogRepository) FindByID(id uint) (*model.WorkLog, error) {
	var log model.WorkLog
	err := r.DB.Preload("Images").First(&log, id).Error
	return &log, err
}

// Save persists a full work log so the BeforeSave hook re-derives
// CompletedWork from SubMetricValues.
func (r *WorkLogRepository) Save(log *model.WorkLog) error {
	return r.DB.Save(log).Error
}

func (r *WorkLogRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_log_id = ?", id).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.WorkLog{}, id).Error
	})
}

// FindByGoal returns a goal's work logs, optionally restricted to an
// inclusive date range, newest date first, with author and images joined.
func (r *WorkLogRepository) FindByGoal(goalID uint, start, end *time.Time) ([]model.WorkLog, error) {
	var logs []model.WorkLog
	q := r.DB.Where("goal_id = ?", goalID)
	if start != nil && end != nil {
		q = q.Where("date >= ? AND date <= ?", *start, *end)
	}
	err := q.Preload("User").Preload("Images").Order("date DESC").Find(&logs).Error
	return logs, err
}

// FindAll returns work logs across all goals, optionally date-filtered.
// Used by listings that aggregate many goals in one pass.
func (r *WorkLogRepository) FindAll(start, end *time.Time) ([]model.WorkLog, error) {
	var logs []model.WorkLog
	q := r.DB
	if start != nil && end != nil {
		q = q.Where("date >= ? AND date <= ?", *start, *end)
	}
	err := q.Find(&logs).Error
	return logs, err
}

// FindLatest returns the most recently created work logs with their goal
// (including assignees), author and images, for the activity feed.
func (r *WorkLogRepository) FindLatest(limit int) ([]model.WorkLog, error) {
	var logs []model.WorkLog
	err := r.DB.
		Preload("Goal").
		Preload("Goal.Assignments.User").
		Preload("User").
		Preload("Images").
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// SumByGoal sums completed_work per goal over an optional date range.
// CompletedWork is maintained as the authoritative total for both work-log
// forms, so a plain SUM is correct.
func (r *WorkLogRepository) SumByGoal(start, end *time.Time) (map[uint]float64, error) {
	type row struct {
		GoalID uint
		Total  float64
	}
	var rows []row
	q := r.DB.Model(&model.WorkLog{}).
		Select("goal_id", "SUM(completed_work) AS total").
		Group("goal_id")
	if start != nil && end != nil {
		q = q.Where("date >= ? AND date <= ?", *start, *end)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	totals := make(map[uint]float64, len(rows))
	for _, r := range rows {
		totals[r.GoalID] = r.Total
	}
	return totals, nil
}

func (r *WorkLogRepository) AddImages(images []model.Image) error {
	if len(images) == 0 {
		return nil
	}
	return r.DB.Create(&images).Error
}

func (r *WorkLogRepository) FindImages(workLogID uint) ([]model.Image, error) {
	var images []model.Image
	err := r.DB.Where("work_log_id = ?", workLogID).Find(&images).Error
	return images, err
}

func (r *WorkLogRepository) DeleteImages(imageIDs []uint) error {
	if len(imageIDs) == 0 {
		return nil
	}
	return r.DB.Where("id IN ?", imageIDs).Delete(&model.Image{}).Error
}
