package progress

import (
	"strconv"

	"kpi_tracker_backend/internal/model"
)

// MonthRow is one fiscal month of chart data. Every row carries a "month"
// key; decomposed goals add one numeric field per sub-metric name plus a
// "_colors" name->color map, flat goals add a single "total" field.
type MonthRow map[string]any

// unassignedBucket collects legacy work logs that carry no sub-metric
// reference.
const unassignedBucket uint = 0

// MonthlySeries buckets a goal's work logs into the 12 months of its fiscal
// year, in fiscal order starting with October. The result always has
// exactly 12 rows, zero-filled for months without activity, so chart
// x-axes stay stable regardless of data sparsity.
//
// Mapping entries that reference a sub-metric missing from subMetrics are
// silently excluded from the named series: referential drift after a
// sub-metric was deleted or renamed is tolerated, not an error.
func MonthlySeries(goal *model.Goal, subMetrics []model.SubMetric, logs []model.WorkLog, r Range) []MonthRow {
	// monthKey -> sub-metric id -> running total
	totals := make(map[string]map[uint]float64)
	for _, log := range logs {
		if !r.Contains(log.Date) {
			continue
		}
		key := MonthKey(log.Date)
		bucket := totals[key]
		if bucket == nil {
			bucket = make(map[uint]float64)
			totals[key] = bucket
		}

		if log.IsDecomposed() {
			for idStr, value := range log.SubMetricValues {
				id, err := strconv.ParseUint(idStr, 10, 32)
				if err != nil {
					continue
				}
				bucket[uint(id)] += value
			}
		} else {
			id := unassignedBucket
			if log.SubMetricID != nil {
				id = *log.SubMetricID
			}
			bucket[id] += log.CompletedWork
		}
	}

	fiscalYear := FiscalYearOf(goal.StartDate)
	months := FiscalMonthSequence(fiscalYear)

	rows := make([]MonthRow, 0, 12)
	for _, monthKey := range months {
		bucket := totals[monthKey]
		row := MonthRow{"month": monthKey}

		if len(subMetrics) > 0 {
			colors := make(map[string]string, len(subMetrics))
			for _, sm := range subMetrics {
				row[sm.Name] = bucket[sm.ID]
				colors[sm.Name] = sm.Color
			}
			row["_colors"] = colors
		} else {
			var total float64
			for _, v := range bucket {
				total += v
			}
			row["total"] = total
		}

		rows = append(rows, row)
	}
	return rows
}
