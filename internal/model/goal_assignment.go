package model

// GoalAssignment is one user's individual share of a goal's target. The
// assigned targets are independent of the goal total and are not required
// to sum to it.
type GoalAssignment struct {
	BaseModel
	GoalID         uint    `gorm:"index:idx_goal_user,unique;type:bigint unsigned;not null" json:"goalId"`
	UserID         uint    `gorm:"index:idx_goal_user,unique;type:bigint unsigned;not null" json:"userId"`
	AssignedTarget float64 `gorm:"not null" json:"assignedTarget"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (GoalAssignment) TableName() string {
	return "goal_assignments"
}
