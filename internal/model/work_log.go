package model

import (
	"time"

	"gorm.io/gorm"
)

// WorkLog is a single dated report of progress toward a goal by one user.
//
// The value carries one of two forms:
//   - legacy: CompletedWork plus an optional SubMetricID pointer, for goals
//     tracked as a single flat number;
//   - decomposed: SubMetricValues, a sub-metric-id -> amount mapping, for
//     goals with sub-metric decomposition.
//
// When SubMetricValues is set, CompletedWork is kept in sync as the sum of
// its values (see BeforeSave), so readers may rely on CompletedWork as the
// authoritative total regardless of form.
type WorkLog struct {
	BaseModel
	GoalID      uint      `gorm:"index;type:bigint unsigned;not null" json:"goalId"`
	UserID      uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`

	CompletedWork   float64           `gorm:"not null;default:0" json:"completedWork"`
	SubMetricID     *uint             `gorm:"type:bigint unsigned" json:"subMetricId,omitempty"`
	SubMetricValues SubMetricValueMap `gorm:"serializer:json;type:json" json:"subMetricValues,omitempty"`

	Goal   *Goal   `gorm:"foreignKey:GoalID" json:"goal,omitempty"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Images []Image `gorm:"foreignKey:WorkLogID" json:"images,omitempty"`
}

func (WorkLog) TableName() string {
	return "work_logs"
}

// SubMetricValueMap maps a sub-metric id (stringified, as stored in the
// JSON column) to a completed amount.
type SubMetricValueMap map[string]float64

// IsDecomposed reports whether the log carries the sub-metric mapping form.
func (w *WorkLog) IsDecomposed() bool {
	return len(w.SubMetricValues) > 0
}

// Total returns the log's overall completed amount, branching on the form:
// the sum of the mapping for decomposed logs, CompletedWork otherwise.
func (w *WorkLog) Total() float64 {
	if w.IsDecomposed() {
		var sum float64
		for _, v := range w.SubMetricValues {
			sum += v
		}
		return sum
	}
	return w.CompletedWork
}

// BeforeSave maintains the denormalized total: any write that touches
// SubMetricValues recomputes CompletedWork and clears the legacy pointer.
func (w *WorkLog) BeforeSave(tx *gorm.DB) error {
	if w.IsDecomposed() {
		w.CompletedWork = w.Total()
		w.SubMetricID = nil
	}
	return nil
}
