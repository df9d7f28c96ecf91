package repository

import (
	"time"

	"kpi_tracker_backend/internal/model"

	"gorm.io/gorm"
)

// GoalRepository owns the Goal aggregate: the goal row plus its
// assignments and sub-metrics.
type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

// Create inserts the goal together with its initial assignment set and
// optional sub-metrics in one transaction.
func (r *GoalRepository) Create(goal *model.Goal, assignments []model.GoalAssignment, subMetrics []model.SubMetric) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(goal).Error; err != nil {
			return err
		}
		for i := range assignments {
			assignments[i].GoalID = goal.ID
		}
		if len(assignments) > 0 {
			if err := tx.Create(&assignments).Error; err != nil {
				return err
			}
		}
		for i := range subMetrics {
			subMetrics[i].GoalID = goal.ID
			subMetrics[i].DisplayOrder = i
		}
		if len(subMetrics) > 0 {
			if err := tx.Create(&subMetrics).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GoalRepository) FindByID(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.First(&goal, id).Error
	return &goal, err
}

// FindAllOrdered returns every goal sorted by manual display order, id as
// tiebreak.
func (r *GoalRepository) FindAllOrdered() ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Order("display_order ASC, id ASC").Find(&goals).Error
	return goals, err
}

// Update rewrites the goal's own fields and, when the caller supplies
// them, fully replaces the assignment set and/or the sub-metric set.
// Replacement is delete-all-then-reinsert, not a diff: this resets row ids
// and ordering on purpose, matching the edit contract.
func (r *GoalRepository) Update(goal *model.Goal, assignments []model.GoalAssignment, replaceSubMetrics bool, subMetrics []model.SubMetric) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Goal{}).Where("id = ?", goal.ID).Updates(map[string]interface{}{
			"title":       goal.Title,
			"description": goal.Description,
			"unit":        goal.Unit,
			"target":      goal.Target,
			"start_date":  goal.StartDate,
			"end_date":    goal.EndDate,
			"updated_at":  time.Now(),
		}).Error
		if err != nil {
			return err
		}

		if assignments != nil {
			if err := tx.Unscoped().Where("goal_id = ?", goal.ID).Delete(&model.GoalAssignment{}).Error; err != nil {
				return err
			}
			for i := range assignments {
				assignments[i].GoalID = goal.ID
			}
			if len(assignments) > 0 {
				if err := tx.Create(&assignments).Error; err != nil {
					return err
				}
			}
		}

		if replaceSubMetrics {
			if err := tx.Unscoped().Where("goal_id = ?", goal.ID).Delete(&model.SubMetric{}).Error; err != nil {
				return err
			}
			for i := range subMetrics {
				subMetrics[i].GoalID = goal.ID
				subMetrics[i].DisplayOrder = i
			}
			if len(subMetrics) > 0 {
				if err := tx.Create(&subMetrics).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// Delete cascades: work-log images, work logs, assignments and sub-metrics
// go with the goal.
func (r *GoalRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var logIDs []uint
		if err := tx.Model(&model.WorkLog{}).Where("goal_id = ?", id).Pluck("id", &logIDs).Error; err != nil {
			return err
		}
		if len(logIDs) > 0 {
			if err := tx.Where("work_log_id IN ?", logIDs).Delete(&model.Image{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("goal_id = ?", id).Delete(&model.WorkLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", id).Delete(&model.GoalAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", id).Delete(&model.SubMetric{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Goal{}, id).Error
	})
}

func (r *GoalRepository) UpdateVisibility(id uint, visible bool) error {
	return r.DB.Model(&model.Goal{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_visible": visible,
		"updated_at": time.Now(),
	}).Error
}

// GoalOrder is one entry of a bulk display-order write.
type GoalOrder struct {
	ID           uint `json:"id" binding:"required"`
	DisplayOrder int  `json:"displayOrder"`
}

// UpdateDisplayOrders applies a bulk reorder. Concurrent reorders are
// last-write-wins per goal; there is no optimistic locking.
func (r *GoalRepository) UpdateDisplayOrders(orders []GoalOrder) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			if err := tx.Model(&model.Goal{}).Where("id = ?", o.ID).Update("display_order", o.DisplayOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindAssignments returns a goal's assignments joined to minimal user
// identity.
func (r *GoalRepository) FindAssignments(goalID uint) ([]model.GoalAssignment, error) {
	var assignments []model.GoalAssignment
	err := r.DB.Where("goal_id = ?", goalID).Preload("User").Find(&assignments).Error
	return assignments, err
}

// FindAllAssignments returns every assignment with user identity, for
// listings that decorate many goals at once.
func (r *GoalRepository) FindAllAssignments() ([]model.GoalAssignment, error) {
	var assignments []model.GoalAssignment
	err := r.DB.Preload("User").Find(&assignments).Error
	return assignments, err
}

func (r *GoalRepository) FindSubMetrics(goalID uint) ([]model.SubMetric, error) {
	var subMetrics []model.SubMetric
	err := r.DB.Where("goal_id = ?", goalID).Order("display_order ASC").Find(&subMetrics).Error
	return subMetrics, err
}

// FindForUser returns the goals a user is associated with: assigned to,
// unioned with created by. Newest created first, matching the report view.
func (r *GoalRepository) FindForUser(userID uint) ([]model.Goal, error) {
	var goalIDs []uint
	if err := r.DB.Model(&model.GoalAssignment{}).Where("user_id = ?", userID).Pluck("goal_id", &goalIDs).Error; err != nil {
		return nil, err
	}

	var goals []model.Goal
	q := r.DB.Order("created_at DESC")
	if len(goalIDs) > 0 {
		q = q.Where("id IN ? OR created_by_id = ?", goalIDs, userID)
	} else {
		q = q.Where("created_by_id = ?", userID)
	}
	err := q.Find(&goals).Error
	return goals, err
}

// NavItem is the trimmed goal shape used by the sidebar.
type NavItem struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	DisplayOrder int    `json:"displayOrder"`
	IsVisible    bool   `json:"isVisible"`
}

func (r *GoalRepository) FindNavItems() ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Select("id", "title", "display_order", "is_visible").
		Order("display_order ASC, id ASC").Find(&goals).Error
	return goals, err
}
