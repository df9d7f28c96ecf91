package model

import "time"

// Goal is a KPI: a target quantity to be reached collectively by its
// assignees within a date window. StartDate decides which fiscal year the
// goal belongs to.
type Goal struct {
	BaseModel
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Target       float64   `gorm:"not null" json:"target"`
	Unit         string    `gorm:"size:50" json:"unit"`
	StartDate    time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate      time.Time `gorm:"type:date;not null" json:"endDate"`
	IsVisible    bool      `gorm:"default:true" json:"isVisible"`
	DisplayOrder int       `gorm:"default:0;index" json:"displayOrder"`
	CreatedByID  uint      `gorm:"index;type:bigint unsigned" json:"createdById"`

	Assignments []GoalAssignment `gorm:"foreignKey:GoalID" json:"assignments,omitempty"`
	SubMetrics  []SubMetric      `gorm:"foreignKey:GoalID" json:"subMetrics,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}

// DefaultUnit is used when a goal was created without a unit label.
const DefaultUnit = "ชิ้น"

func (g *Goal) UnitOrDefault() string {
	if g.Unit == "" {
		return DefaultUnit
	}
	return g.Unit
}
