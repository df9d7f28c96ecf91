package progress

import (
	"sort"

	"kpi_tracker_backend/internal/model"
)

// Visible reports whether a goal may appear in a public/home listing: the
// goal is visible, or the requester is authenticated and the global
// showHiddenCards setting is on. Admin-facing listings use a different
// endpoint and bypass this rule entirely.
func Visible(goal *model.Goal, authenticated, showHiddenCards bool) bool {
	if goal.IsVisible {
		return true
	}
	return authenticated && showHiddenCards
}

// FilterVisible applies Visible over a listing, preserving input order.
func FilterVisible(goals []model.Goal, authenticated, showHiddenCards bool) []model.Goal {
	out := make([]model.Goal, 0, len(goals))
	for i := range goals {
		if Visible(&goals[i], authenticated, showHiddenCards) {
			out = append(out, goals[i])
		}
	}
	return out
}

// SortByDisplayOrder sorts a listing by the manual display order, ascending,
// with id as the tiebreak for a stable result.
func SortByDisplayOrder(goals []model.Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].DisplayOrder != goals[j].DisplayOrder {
			return goals[i].DisplayOrder < goals[j].DisplayOrder
		}
		return goals[i].ID < goals[j].ID
	})
}
