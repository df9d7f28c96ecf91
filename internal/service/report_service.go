package service

import (
	"time"

	"kpi_tracker_backend/internal/progress"
	"kpi_tracker_backend/internal/repository"
	"kpi_tracker_backend/pkg/monitoring"
)

type ReportService struct {
	GoalRepo    *repository.GoalRepository
	WorkLogRepo *repository.WorkLogRepository
}

func NewReportService(goalRepo *repository.GoalRepository, workLogRepo *repository.WorkLogRepository) *ReportService {
	return &ReportService{GoalRepo: goalRepo, WorkLogRepo: workLogRepo}
}

// ForUser builds the cross-goal report for one user: every goal they are
// assigned to or created, with the period's completed total and an
// uncapped percentage.
func (s *ReportService) ForUser(userID uint, filter progress.ReportFilter) ([]progress.ReportRow, error) {
	began := time.Now()
	defer monitoring.ObserveAggregation("report", began)

	goals, err := s.GoalRepo.FindForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return []progress.ReportRow{}, nil
	}

	bounds := filter.Bounds()
	totals, err := s.WorkLogRepo.SumByGoal(bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}

	return progress.Rollup(goals, totals), nil
}
