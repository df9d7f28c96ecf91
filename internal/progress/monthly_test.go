package progress

import (
	"testing"
	"time"

	"kpi_tracker_backend/internal/model"
)

func subMetric(id uint, name, color string) model.SubMetric {
	return model.SubMetric{BaseModel: model.BaseModel{ID: id}, Name: name, Color: color}
}

func TestMonthlySeriesDecomposed(t *testing.T) {
	goal := &model.Goal{StartDate: date(2025, time.October, 20)}
	subMetrics := []model.SubMetric{
		subMetric(1, "bachelor", "#ff0000"),
		subMetric(2, "master", "#00ff00"),
	}
	smID := uint(1)
	logs := []model.WorkLog{
		{Date: date(2025, time.November, 5), SubMetricValues: model.SubMetricValueMap{"1": 30, "2": 20}},
		// Legacy form tagged with a sub-metric joins the same series.
		{Date: date(2025, time.November, 20), CompletedWork: 10, SubMetricID: &smID},
		// Reference to a deleted sub-metric: dropped, not an error.
		{Date: date(2025, time.December, 1), SubMetricValues: model.SubMetricValueMap{"9": 5}},
	}

	rows := MonthlySeries(goal, subMetrics, logs, Range{})

	if len(rows) != 12 {
		t.Fatalf("len(rows) = %d, want 12", len(rows))
	}
	if rows[0]["month"] != "2025-10" {
		t.Errorf("rows[0] month = %v, want 2025-10", rows[0]["month"])
	}
	if rows[11]["month"] != "2026-09" {
		t.Errorf("rows[11] month = %v, want 2026-09", rows[11]["month"])
	}

	nov := rows[1]
	if nov["month"] != "2025-11" {
		t.Fatalf("rows[1] month = %v, want 2025-11", nov["month"])
	}
	if nov["bachelor"] != 40.0 {
		t.Errorf("November bachelor = %v, want 40", nov["bachelor"])
	}
	if nov["master"] != 20.0 {
		t.Errorf("November master = %v, want 20", nov["master"])
	}

	colors, ok := nov["_colors"].(map[string]string)
	if !ok {
		t.Fatalf("_colors missing or wrong type: %T", nov["_colors"])
	}
	if colors["bachelor"] != "#ff0000" || colors["master"] != "#00ff00" {
		t.Errorf("_colors = %v", colors)
	}

	dec := rows[2]
	if dec["bachelor"] != 0.0 || dec["master"] != 0.0 {
		t.Errorf("December = %v/%v, want zeros (deleted sub-metric excluded)", dec["bachelor"], dec["master"])
	}

	// Months with no activity are zero-filled, not missing.
	for i, row := range rows {
		if _, ok := row["bachelor"]; !ok {
			t.Errorf("rows[%d] missing bachelor series", i)
		}
	}
}

func TestMonthlySeriesFlat(t *testing.T) {
	goal := &model.Goal{StartDate: date(2025, time.October, 20)}
	logs := []model.WorkLog{
		{Date: date(2025, time.November, 5), CompletedWork: 15},
		{Date: date(2025, time.November, 28), CompletedWork: 5},
	}

	rows := MonthlySeries(goal, nil, logs, Range{})

	if len(rows) != 12 {
		t.Fatalf("len(rows) = %d, want 12", len(rows))
	}
	if rows[1]["total"] != 20.0 {
		t.Errorf("November total = %v, want 20", rows[1]["total"])
	}
	if rows[0]["total"] != 0.0 {
		t.Errorf("October total = %v, want 0", rows[0]["total"])
	}
	if _, ok := rows[0]["_colors"]; ok {
		t.Error("flat goal should not carry _colors")
	}
}

func TestMonthlySeriesRangeFilter(t *testing.T) {
	goal := &model.Goal{StartDate: date(2025, time.October, 20)}
	logs := []model.WorkLog{
		{Date: date(2025, time.November, 5), CompletedWork: 15},
		{Date: date(2026, time.January, 10), CompletedWork: 30},
	}

	start := date(2025, time.October, 1)
	end := date(2025, time.December, 31)
	rows := MonthlySeries(goal, nil, logs, Range{Start: &start, End: &end})

	if rows[1]["total"] != 15.0 {
		t.Errorf("November total = %v, want 15", rows[1]["total"])
	}
	// January is still a row, but the filtered-out log does not count.
	if rows[3]["month"] != "2026-01" {
		t.Fatalf("rows[3] month = %v, want 2026-01", rows[3]["month"])
	}
	if rows[3]["total"] != 0.0 {
		t.Errorf("January total = %v, want 0", rows[3]["total"])
	}
}

// Summing the 12 flat rows reproduces the unfiltered aggregate total.
func TestMonthlySeriesMatchesAggregate(t *testing.T) {
	goal := &model.Goal{Target: 200, StartDate: date(2025, time.October, 1)}
	logs := []model.WorkLog{
		{UserID: 1, Date: date(2025, time.October, 2), CompletedWork: 11},
		{UserID: 1, Date: date(2026, time.March, 14), CompletedWork: 22},
		{UserID: 2, Date: date(2026, time.September, 30), SubMetricValues: model.SubMetricValueMap{"1": 3, "2": 4}},
	}

	rows := MonthlySeries(goal, nil, logs, Range{})
	var sum float64
	for _, row := range rows {
		sum += row["total"].(float64)
	}

	agg := Aggregate(goal, nil, logs, AggregateFilter{})
	if sum != agg.TotalProgress {
		t.Errorf("monthly sum = %v, aggregate total = %v", sum, agg.TotalProgress)
	}
}

// The fiscal year is anchored on the goal's start date: a goal starting in
// September belongs to the fiscal year ending that month.
func TestMonthlySeriesFiscalAnchor(t *testing.T) {
	goal := &model.Goal{StartDate: date(2025, time.September, 15)}
	rows := MonthlySeries(goal, nil, nil, Range{})

	if rows[0]["month"] != "2024-10" {
		t.Errorf("rows[0] month = %v, want 2024-10", rows[0]["month"])
	}
	if rows[11]["month"] != "2025-09" {
		t.Errorf("rows[11] month = %v, want 2025-09", rows[11]["month"])
	}
}
