package service

import (
	"errors"
	"math"
	"time"

	"kpi_tracker_backend/internal/model"
	"kpi_tracker_backend/internal/progress"
	"kpi_tracker_backend/internal/repository"
	"kpi_tracker_backend/internal/util"
	"kpi_tracker_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type GoalService struct {
	GoalRepo        *repository.GoalRepository
	WorkLogRepo     *repository.WorkLogRepository
	SettingsService *SettingsService
}

func NewGoalService(goalRepo *repository.GoalRepository, workLogRepo *repository.WorkLogRepository, settingsService *SettingsService) *GoalService {
	return &GoalService{
		GoalRepo:        goalRepo,
		WorkLogRepo:     workLogRepo,
		SettingsService: settingsService,
	}
}

// AssignmentInput is one assignee share in a goal create/update request.
type AssignmentInput struct {
	UserID         uint    `json:"userId" binding:"required"`
	AssignedTarget float64 `json:"assignedTarget"`
}

// SubMetricInput is one sub-metric definition in a goal create/update
// request; display order follows slice position.
type SubMetricInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// GoalInput carries the editable goal fields. A nil Assignments leaves the
// assignment set untouched on update; a nil SubMetrics leaves sub-metrics
// untouched (an empty non-nil slice clears them).
type GoalInput struct {
	Title       string
	Description string
	Target      float64
	Unit        string
	StartDate   time.Time
	EndDate     time.Time
	Assignments []AssignmentInput
	SubMetrics  *[]SubMetricInput
}

// Create inserts a goal with its initial assignment set and optional
// sub-metrics. When no explicit target is given, it is computed as the sum
// of the assignment targets.
func (s *GoalService) Create(createdByID uint, in GoalInput) (*model.Goal, error) {
	if len(in.Assignments) == 0 {
		return nil, util.ErrNoAssignees
	}

	target := in.Target
	if target == 0 {
		for _, a := range in.Assignments {
			target += a.AssignedTarget
		}
	}

	unit := in.Unit
	if unit == "" {
		unit = model.DefaultUnit
	}

	goal := &model.Goal{
		Title:       in.Title,
		Description: in.Description,
		Target:      target,
		Unit:        unit,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsVisible:   true,
		CreatedByID: createdByID,
	}

	assignments := make([]model.GoalAssignment, 0, len(in.Assignments))
	for _, a := range in.Assignments {
		assignments = append(assignments, model.GoalAssignment{UserID: a.UserID, AssignedTarget: a.AssignedTarget})
	}

	var subMetrics []model.SubMetric
	if in.SubMetrics != nil {
		subMetrics = buildSubMetrics(*in.SubMetrics)
	}

	if err := s.GoalRepo.Create(goal, assignments, subMetrics); err != nil {
		return nil, err
	}
	return goal, nil
}

// Update rewrites goal fields and fully replaces assignments/sub-metrics
// when supplied (delete-all-then-reinsert, per the edit contract).
func (s *GoalService) Update(id uint, in GoalInput) error {
	goal, err := s.GoalRepo.FindByID(id)
	if err != nil {
		return mapGoalErr(err)
	}

	goal.Title = in.Title
	goal.Description = in.Description
	goal.Unit = in.Unit
	goal.Target = in.Target
	goal.StartDate = in.StartDate
	goal.EndDate = in.EndDate

	var assignments []model.GoalAssignment
	if in.Assignments != nil {
		assignments = make([]model.GoalAssignment, 0, len(in.Assignments))
		for _, a := range in.Assignments {
			assignments = append(assignments, model.GoalAssignment{UserID: a.UserID, AssignedTarget: a.AssignedTarget})
		}
	}

	var subMetrics []model.SubMetric
	if in.SubMetrics != nil {
		subMetrics = buildSubMetrics(*in.SubMetrics)
	}

	return s.GoalRepo.Update(goal, assignments, in.SubMetrics != nil, subMetrics)
}

func (s *GoalService) Delete(id uint) error {
	if _, err := s.GoalRepo.FindByID(id); err != nil {
		return mapGoalErr(err)
	}
	return s.GoalRepo.Delete(id)
}

func (s *GoalService) SetVisibility(id uint, visible bool) error {
	if _, err := s.GoalRepo.FindByID(id); err != nil {
		return mapGoalErr(err)
	}
	return s.GoalRepo.UpdateVisibility(id, visible)
}

func (s *GoalService) Reorder(orders []repository.GoalOrder) error {
	return s.GoalRepo.UpdateDisplayOrders(orders)
}

// AssignedUser is the assignee shape embedded in goal listings.
type AssignedUser struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email,omitempty"`
	ProfilePicture string  `json:"profilePicture,omitempty"`
	AssignedTarget float64 `json:"assignedTarget"`
}

// GoalWithAssignees is the admin listing row.
type GoalWithAssignees struct {
	model.Goal
	AssignedUsers []AssignedUser `json:"assignedUsers"`
}

// List is the admin-facing listing: every goal regardless of visibility,
// decorated with its assignees, in display order.
func (s *GoalService) List() ([]GoalWithAssignees, error) {
	goals, err := s.GoalRepo.FindAllOrdered()
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

	out := make([]GoalWithAssignees, 0, len(goals))
	for _, g := range goals {
		users := byGoal[g.ID]
		if users == nil {
			users = []AssignedUser{}
		}
		out = append(out, GoalWithAssignees{Goal: g, AssignedUsers: users})
	}
	return out, nil
}

// GoalWithProgress adds the raw records and the running total to a listing
// row, for the admin progress overview.
type GoalWithProgress struct {
	GoalWithAssignees
	CurrentProgress float64                `json:"currentProgress"`
	Assignments     []model.GoalAssignment `json:"assignments"`
	WorkLogs        []model.WorkLog        `json:"workLogs"`
}

func (s *GoalService) ListWithProgress() ([]GoalWithProgress, error) {
	goals, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return []GoalWithProgress{}, nil
	}

	logs, err := s.WorkLogRepo.FindAll(nil, nil)
	if err != nil {
		return nil, err
	}
	totals := progress.SumByGoal(logs, progress.Range{})

	assignments, err := s.GoalRepo.FindAllAssignments()
	if err != nil {
		return nil, err
	}
	assignmentsByGoal := make(map[uint][]model.GoalAssignment)
	for _, a := range assignments {
		assignmentsByGoal[a.GoalID] = append(assignmentsByGoal[a.GoalID], a)
	}
	logsByGoal := make(map[uint][]model.WorkLog)
	for _, l := range logs {
		logsByGoal[l.GoalID] = append(logsByGoal[l.GoalID], l)
	}

	out := make([]GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalWithProgress{
			GoalWithAssignees: g,
			CurrentProgress:   totals[g.ID],
			Assignments:       assignmentsByGoal[g.ID],
			WorkLogs:          logsByGoal[g.ID],
		})
	}
	return out, nil
}

// GoalDetail is the single-goal view: the goal, its assignments with user
// identity, the (optionally date-filtered) work logs and the aggregated
// progress.
type GoalDetail struct {
	Goal        model.Goal             `json:"goal"`
	Assignments []model.GoalAssignment `json:"assignments"`
	WorkLogs    []model.WorkLog        `json:"workLogs"`
	Progress    progress.GoalProgress  `json:"progress"`
}

func (s *GoalService) Detail(id uint, start, end *time.Time) (*GoalDetail, error) {
	began := time.Now()
	defer monitoring.ObserveAggregation("detail", began)

	goal, err := s.GoalRepo.FindByID(id)
	if err != nil {
		return nil, mapGoalErr(err)
	}
	assignments, err := s.GoalRepo.FindAssignments(id)
	if err != nil {
		return nil, err
	}
	logs, err := s.WorkLogRepo.FindByGoal(id, start, end)
	if err != nil {
		return nil, err
	}

	// Logs arrive pre-filtered from the repository, so no further range
	// filter here.
	agg := progress.Aggregate(goal, assignments, logs, progress.AggregateFilter{})

	return &GoalDetail{
		Goal:        *goal,
		Assignments: assignments,
		WorkLogs:    logs,
		Progress:    agg,
	}, nil
}

// MonthlyData is the chart payload for one goal's fiscal year.
type MonthlyData struct {
	Data       []progress.MonthRow `json:"data"`
	SubMetrics []model.SubMetric   `json:"subMetrics"`
}

func (s *GoalService) Monthly(id uint, start, end *time.Time) (*MonthlyData, error) {
	began := time.Now()
	defer monitoring.ObserveAggregation("monthly", began)

	goal, err := s.GoalRepo.FindByID(id)
	if err != nil {
		return nil, mapGoalErr(err)
	}
	subMetrics, err := s.GoalRepo.FindSubMetrics(id)
	if err != nil {
		return nil, err
	}
	logs, err := s.WorkLogRepo.FindByGoal(id, nil, nil)
	if err != nil {
		return nil, err
	}

	rows := progress.MonthlySeries(goal, subMetrics, logs, progress.Range{Start: start, End: end})
	return &MonthlyData{Data: rows, SubMetrics: subMetrics}, nil
}

func (s *GoalService) SubMetrics(id uint) ([]model.SubMetric, error) {
	if _, err := s.GoalRepo.FindByID(id); err != nil {
		return nil, mapGoalErr(err)
	}
	return s.GoalRepo.FindSubMetrics(id)
}

// Nav is the trimmed, visibility-filtered goal list for the sidebar.
func (s *GoalService) Nav(ctxAuthenticated bool, showHiddenCards bool) ([]repository.NavItem, error) {
	goals, err := s.GoalRepo.FindNavItems()
	if err != nil {
		return nil, err
	}
	visible := progress.FilterVisible(goals, ctxAuthenticated, showHiddenCards)
	items := make([]repository.NavItem, 0, len(visible))
	for _, g := range visible {
		items = append(items, repository.NavItem{
			ID:           g.ID,
			Title:        g.Title,
			DisplayOrder: g.DisplayOrder,
			IsVisible:    g.IsVisible,
		})
	}
	return items, nil
}

func buildSubMetrics(in []SubMetricInput) []model.SubMetric {
	out := make([]model.SubMetric, 0, len(in))
	for _, sm := range in {
		if sm.Name == "" {
			continue
		}
		out = append(out, model.SubMetric{Name: sm.Name, Color: sm.Color})
	}
	return out
}

func toAssignedUser(a model.GoalAssignment) AssignedUser {
	u := AssignedUser{ID: a.UserID, AssignedTarget: a.AssignedTarget}
	if a.User != nil {
		u.Name = a.User.Name
		u.Email = a.User.Email
		u.ProfilePicture = a.User.ProfilePicture
	}
	return u
}

func mapGoalErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrGoalNotFound
	}
	return err
}

// Round2 keeps percentages presentable without a formatting layer.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
