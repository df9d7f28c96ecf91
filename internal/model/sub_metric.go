package model

// SubMetric is a named sub-category of progress within a goal. A goal with
// zero sub-metrics tracks a single flat number; with one or more it tracks
// each quantity separately. Name is the mapping key used by charts,
// DisplayOrder fixes the stacking order.
type SubMetric struct {
	BaseModel
	GoalID       uint   `gorm:"index;type:bigint unsigned;not null" json:"goalId"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Color        string `gorm:"size:20" json:"color"`
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`
}

func (SubMetric) TableName() string {
	return "sub_metrics"
}
