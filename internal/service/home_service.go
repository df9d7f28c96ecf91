package service

import (
	"context"
	"time"

	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/progress"
	"kpi_tracker_backend/internal/repository"
	"kpi_tracker_backend/pkg/monitoring"
)

type HomeService struct {
	GoalRepo        *repository.GoalRepository
	WorkLogRepo     *repository.WorkLogRepository
	SettingsService *SettingsService
}

func NewHomeService(goalRepo *repository.GoalRepository, workLogRepo *repository.WorkLogRepository, settingsService *SettingsService) *HomeService {
	return &HomeService{
		GoalRepo:        goalRepo,
		WorkLogRepo:     workLogRepo,
		SettingsService: settingsService,
	}
}

// HomeCard is one dashboard card: the goal, who it belongs to, and its
// progress with the percentage capped at 100.
type HomeCard struct {
	model.Goal
	AssignedUsers []AssignedUser `json:"assignedUsers"`
	TotalProgress float64        `json:"totalProgress"`
	Percentage    float64        `json:"percentage"`
}

// Cards builds the dashboard. Hidden goals appear only for authenticated
// viewers when the showHiddenCards setting is on; cards keep manual display
// order. An optional date range restricts which work counts toward the
// totals without changing which cards appear.
func (s *HomeService) Cards(ctx context.Context, authenticated bool, start, end *time.Time) ([]HomeCard, error) {
	began := time.Now()
	defer monitoring.ObserveAggregation("home", began)

	settings, err := s.SettingsService.Load(ctx)
	if err != nil {
		return nil, err
	}

	goals, err := s.GoalRepo.FindAllOrdered()
	if err != nil {
		return nil, err
	}
	goals = progress.FilterVisible(goals, authenticated, settings.ShowHiddenCards)

	totals, err := s.WorkLogRepo.SumByGoal(start, end)
	if err != nil {
		return nil, err
	}

	assignments, err := s.GoalRepo.FindAllAssignments()
	if err != nil {
		return nil, err
	}
	byGoal := make(map[uint][]AssignedUser)
	for _, a := range assignments {
		byGoal[a.GoalID] = append(byGoal[a.GoalID], toAssignedUser(a))
	}

	cards := make([]HomeCard, 0, len(goals))
	for _, g := range goals {
		total := totals[g.ID]
		users := byGoal[g.ID]
		if users == nil {
			users = []AssignedUser{}
		}
		cards = append(cards, HomeCard{
			Goal:          g,
			AssignedUsers: users,
			TotalProgress: total,
			Percentage:    Round2(progress.CappedPercent(total, g.Target)),
		})
	}
	return cards, nil
}
