package progress

import (
	"testing"
	"time"

	"kpi_tracker_backend/internal/model"
)

func workLog(userID uint, d time.Time, completed float64) model.WorkLog {
	return model.WorkLog{UserID: userID, Date: d, CompletedWork: completed}
}

// A 100-unit goal split 60/40 between two assignees, both overshooting
// their share. The detail view caps everything at 100.
func exampleFixture() (*model.Goal, []model.GoalAssignment, []model.WorkLog) {
	goal := &model.Goal{Target: 100, StartDate: date(2025, time.October, 20)}
	assignments := []model.GoalAssignment{
		{UserID: 1, AssignedTarget: 60},
		{UserID: 2, AssignedTarget: 40},
	}
	logs := []model.WorkLog{
		workLog(1, date(2025, time.November, 5), 70),
		workLog(2, date(2025, time.December, 10), 50),
	}
	return goal, assignments, logs
}

func TestAggregate(t *testing.T) {
	goal, assignments, logs := exampleFixture()

	got := Aggregate(goal, assignments, logs, AggregateFilter{})

	if got.TotalProgress != 120 {
		t.Errorf("TotalProgress = %v, want 120", got.TotalProgress)
	}
	if got.Percentage != 100 {
		t.Errorf("Percentage = %v, want 100 (capped)", got.Percentage)
	}
	if len(got.PerUser) != 2 {
		t.Fatalf("len(PerUser) = %d, want 2", len(got.PerUser))
	}
	if got.PerUser[0].Completed != 70 || got.PerUser[0].Percentage != 100 {
		t.Errorf("user 1 = %v/%v%%, want 70/100%%", got.PerUser[0].Completed, got.PerUser[0].Percentage)
	}
	if got.PerUser[1].Completed != 50 || got.PerUser[1].Percentage != 100 {
		t.Errorf("user 2 = %v/%v%%, want 50/100%%", got.PerUser[1].Completed, got.PerUser[1].Percentage)
	}
}

// The same totals read above 100 in the uncapped report view.
func TestCappedVersusUncapped(t *testing.T) {
	if got := CappedPercent(120, 100); got != 100 {
		t.Errorf("CappedPercent(120, 100) = %v, want 100", got)
	}
	if got := UncappedPercent(120, 100); got != 120 {
		t.Errorf("UncappedPercent(120, 100) = %v, want 120", got)
	}
}

func TestPercentZeroTarget(t *testing.T) {
	if got := CappedPercent(50, 0); got != 0 {
		t.Errorf("CappedPercent(50, 0) = %v, want 0", got)
	}
	if got := UncappedPercent(50, -1); got != 0 {
		t.Errorf("UncappedPercent(50, -1) = %v, want 0", got)
	}
}

func TestAggregateRangeFilter(t *testing.T) {
	goal, assignments, logs := exampleFixture()

	start := date(2025, time.November, 1)
	end := date(2025, time.November, 30)
	got := Aggregate(goal, assignments, logs, AggregateFilter{Range: Range{Start: &start, End: &end}})

	if got.TotalProgress != 70 {
		t.Errorf("TotalProgress = %v, want 70", got.TotalProgress)
	}
	if got.Percentage != 70 {
		t.Errorf("Percentage = %v, want 70", got.Percentage)
	}
}

func TestAggregateUserFilter(t *testing.T) {
	goal, assignments, logs := exampleFixture()

	got := Aggregate(goal, assignments, logs, AggregateFilter{UserID: 2})

	if got.TotalProgress != 50 {
		t.Errorf("TotalProgress = %v, want 50", got.TotalProgress)
	}
	// Assignments without logs in the filter still appear, zeroed.
	if got.PerUser[0].Completed != 0 {
		t.Errorf("user 1 completed = %v, want 0", got.PerUser[0].Completed)
	}
}

func TestAggregateDecomposedLogs(t *testing.T) {
	goal := &model.Goal{Target: 50, StartDate: date(2025, time.October, 1)}
	logs := []model.WorkLog{
		{UserID: 1, Date: date(2025, time.November, 1), SubMetricValues: model.SubMetricValueMap{"1": 12, "2": 8}},
	}

	got := Aggregate(goal, nil, logs, AggregateFilter{})
	if got.TotalProgress != 20 {
		t.Errorf("TotalProgress = %v, want 20", got.TotalProgress)
	}
}

func TestRangeContainsInclusive(t *testing.T) {
	start := date(2025, time.November, 1)
	end := date(2025, time.November, 30)
	r := Range{Start: &start, End: &end}

	if !r.Contains(date(2025, time.November, 1)) {
		t.Error("start day should be included")
	}
	if !r.Contains(date(2025, time.November, 30)) {
		t.Error("end day should be included")
	}
	// Time of day on the log must not push it past the inclusive end.
	if !r.Contains(time.Date(2025, time.November, 30, 23, 59, 0, 0, time.UTC)) {
		t.Error("end day with time component should be included")
	}
	if r.Contains(date(2025, time.October, 31)) || r.Contains(date(2025, time.December, 1)) {
		t.Error("days outside the range should be excluded")
	}
}

func TestRangeUnbounded(t *testing.T) {
	var r Range
	if !r.Contains(date(1999, time.January, 1)) {
		t.Error("empty range should contain everything")
	}
}
