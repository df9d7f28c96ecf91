package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrWorkLogNotFound    = errors.New("work log not found")
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrAccountPending     = errors.New("account pending approval")
	ErrAccountRejected    = errors.New("account rejected")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrNoAssignees        = errors.New("at least one assignee is required")
	ErrMissingWorkValue   = errors.New("missing completedWork or subMetricValues")
)
