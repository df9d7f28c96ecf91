package progress

import (
	"sort"
	"time"

	"kpi_tracker_backend/internal/model"
)

// ReportFilter selects the period for the cross-goal rollup. Year 0 means
// no filtering at all; Month 0 is the "all" sentinel meaning year-only.
type ReportFilter struct {
	Year  int
	Month time.Month
}

// Bounds resolves the filter to a concrete inclusive date range.
func (f ReportFilter) Bounds() Range {
	if f.Year == 0 {
		return Range{}
	}
	var start, end time.Time
	if f.Month != 0 {
		start, end = MonthBounds(f.Year, f.Month)
	} else {
		start, end = YearBounds(f.Year)
	}
	return Range{Start: &start, End: &end}
}

// SumByGoal sums work-log totals per goal id over an optional date range.
func SumByGoal(logs []model.WorkLog, r Range) map[uint]float64 {
	totals := make(map[uint]float64)
	for _, log := range logs {
		if !r.Contains(log.Date) {
			continue
		}
		totals[log.GoalID] += log.Total()
	}
	return totals
}

// ReportRow is one goal in a user's cross-goal report. The percentage here
// is intentionally uncapped, unlike the goal-detail aggregate: reports are
// meant to show over-achievement.
type ReportRow struct {
	model.Goal
	TotalCompleted float64 `json:"totalCompleted"`
	Percentage     float64 `json:"percentage"`
}

// Rollup emits one row per goal from the per-goal completed totals, newest
// created goal first.
func Rollup(goals []model.Goal, totals map[uint]float64) []ReportRow {
	rows := make([]ReportRow, 0, len(goals))
	for _, goal := range goals {
		completed := totals[goal.ID]
		rows = append(rows, ReportRow{
			Goal:           goal,
			TotalCompleted: completed,
			Percentage:     UncappedPercent(completed, goal.Target),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows
}
