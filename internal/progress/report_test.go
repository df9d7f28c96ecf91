package progress

import (
	"testing"
	"time"

	"kpi_tracker_backend/internal/model"
)

func TestReportFilterBounds(t *testing.T) {
	all := ReportFilter{}.Bounds()
	if all.Start != nil || all.End != nil {
		t.Errorf("zero filter should be unbounded, got %v..%v", all.Start, all.End)
	}

	year := ReportFilter{Year: 2025}.Bounds()
	if !year.Start.Equal(date(2025, time.January, 1)) || !year.End.Equal(date(2025, time.December, 31)) {
		t.Errorf("year bounds = %v..%v", year.Start, year.End)
	}

	feb := ReportFilter{Year: 2024, Month: time.February}.Bounds()
	if !feb.Start.Equal(date(2024, time.February, 1)) || !feb.End.Equal(date(2024, time.February, 29)) {
		t.Errorf("month bounds = %v..%v", feb.Start, feb.End)
	}
}

func TestSumByGoal(t *testing.T) {
	logs := []model.WorkLog{
		{GoalID: 1, Date: date(2025, time.March, 3), CompletedWork: 10},
		{GoalID: 1, Date: date(2025, time.April, 4), SubMetricValues: model.SubMetricValueMap{"1": 5, "2": 5}},
		{GoalID: 2, Date: date(2024, time.December, 1), CompletedWork: 7},
	}

	totals := SumByGoal(logs, Range{})
	if totals[1] != 20 {
		t.Errorf("goal 1 total = %v, want 20", totals[1])
	}
	if totals[2] != 7 {
		t.Errorf("goal 2 total = %v, want 7", totals[2])
	}

	bounds := ReportFilter{Year: 2025}.Bounds()
	filtered := SumByGoal(logs, bounds)
	if filtered[1] != 20 {
		t.Errorf("goal 1 filtered total = %v, want 20", filtered[1])
	}
	if _, ok := filtered[2]; ok {
		t.Error("goal 2 should have no 2025 total")
	}
}

func TestRollup(t *testing.T) {
	older := date(2025, time.January, 1)
	newer := date(2025, time.June, 1)
	goals := []model.Goal{
		{BaseModel: model.BaseModel{ID: 1, CreatedAt: older}, Title: "old", Target: 100},
		{BaseModel: model.BaseModel{ID: 2, CreatedAt: newer}, Title: "new", Target: 50},
	}
	totals := map[uint]float64{1: 130, 2: 25}

	rows := Rollup(goals, totals)

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	// Newest created first.
	if rows[0].ID != 2 || rows[1].ID != 1 {
		t.Errorf("order = [%d %d], want [2 1]", rows[0].ID, rows[1].ID)
	}
	if rows[0].TotalCompleted != 25 || rows[0].Percentage != 50 {
		t.Errorf("row 0 = %v/%v%%, want 25/50%%", rows[0].TotalCompleted, rows[0].Percentage)
	}
	// Over-achievement stays above 100 in reports.
	if rows[1].Percentage != 130 {
		t.Errorf("row 1 percentage = %v, want 130 (uncapped)", rows[1].Percentage)
	}
}

func TestRollupMissingTotals(t *testing.T) {
	goals := []model.Goal{{BaseModel: model.BaseModel{ID: 9}, Target: 10}}

	rows := Rollup(goals, map[uint]float64{})
	if rows[0].TotalCompleted != 0 || rows[0].Percentage != 0 {
		t.Errorf("row = %v/%v%%, want zeros", rows[0].TotalCompleted, rows[0].Percentage)
	}
}
