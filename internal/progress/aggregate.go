package progress

import (
	"time"

	"kpi_tracker_backend/internal/model"
)

// Range is an inclusive calendar-date filter. Nil endpoints leave that side
// unbounded.
type Range struct {
	Start *time.Time
	End   *time.Time
}

func (r Range) Contains(d time.Time) bool {
	day := dateOnly(d)
	if r.Start != nil && day.Before(dateOnly(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(dateOnly(*r.End)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CappedPercent is completed/target*100 capped at 100. A non-positive
// target is a degenerate input and yields 0 rather than an error.
func CappedPercent(completed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := completed / target * 100
	if p > 100 {
		return 100
	}
	return p
}

// UncappedPercent is completed/target*100 with no upper bound, used by the
// cross-goal report to show over-achievement. Same zero-target rule.
func UncappedPercent(completed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return completed / target * 100
}

// AggregateFilter narrows the work logs considered by Aggregate. UserID 0
// means all users.
type AggregateFilter struct {
	Range  Range
	UserID uint
}

// UserProgress is one assignee's share of a goal's progress.
type UserProgress struct {
	UserID         uint               `json:"userId"`
	User           model.UserIdentity `json:"user"`
	AssignedTarget float64            `json:"assignedTarget"`
	Completed      float64            `json:"completed"`
	Percentage     float64            `json:"percentage"`
}

// GoalProgress is the aggregated view of a goal's work logs.
type GoalProgress struct {
	TotalProgress float64        `json:"totalProgress"`
	Percentage    float64        `json:"percentage"`
	PerUser       []UserProgress `json:"perUserBreakdown"`
}

// Aggregate computes total progress, the capped completion percentage and
// the per-assignment breakdown for one goal. It is a pure function over
// already-fetched records and never mutates its inputs.
func Aggregate(goal *model.Goal, assignments []model.GoalAssignment, logs []model.WorkLog, f AggregateFilter) GoalProgress {
	filtered := make([]model.WorkLog, 0, len(logs))
	for _, log := range logs {
		if !f.Range.Contains(log.Date) {
			continue
		}
		if f.UserID != 0 && log.UserID != f.UserID {
			continue
		}
		filtered = append(filtered, log)
	}

	var total float64
	byUser := make(map[uint]float64)
	for _, log := range filtered {
		v := log.Total()
		total += v
		byUser[log.UserID] += v
	}

	perUser := make([]UserProgress, 0, len(assignments))
	for _, a := range assignments {
		completed := byUser[a.UserID]
		up := UserProgress{
			UserID:         a.UserID,
			AssignedTarget: a.AssignedTarget,
			Completed:      completed,
			Percentage:     CappedPercent(completed, a.AssignedTarget),
		}
		if a.User != nil {
			up.User = a.User.Identity()
		}
		perUser = append(perUser, up)
	}

	return GoalProgress{
		TotalProgress: total,
		Percentage:    CappedPercent(total, goal.Target),
		PerUser:       perUser,
	}
}
