package progress

import (
	"testing"

	"kpi_tracker_backend/internal/model"
)

func TestVisible(t *testing.T) {
	visible := &model.Goal{IsVisible: true}
	hidden := &model.Goal{IsVisible: false}

	tests := []struct {
		name            string
		goal            *model.Goal
		authenticated   bool
		showHiddenCards bool
		want            bool
	}{
		{"visible goal, anonymous", visible, false, false, true},
		{"hidden goal, anonymous", hidden, false, false, false},
		{"hidden goal, anonymous, setting on", hidden, false, true, false},
		{"hidden goal, authenticated, setting off", hidden, true, false, false},
		{"hidden goal, authenticated, setting on", hidden, true, true, true},
	}
	for _, tt := range tests {
		if got := Visible(tt.goal, tt.authenticated, tt.showHiddenCards); got != tt.want {
			t.Errorf("%s: Visible = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFilterVisible(t *testing.T) {
	goals := []model.Goal{
		{BaseModel: model.BaseModel{ID: 1}, IsVisible: true},
		{BaseModel: model.BaseModel{ID: 2}, IsVisible: false},
		{BaseModel: model.BaseModel{ID: 3}, IsVisible: true},
	}

	got := FilterVisible(goals, false, false)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("FilterVisible kept %v, want ids [1 3]", got)
	}

	all := FilterVisible(goals, true, true)
	if len(all) != 3 {
		t.Errorf("len = %d, want 3", len(all))
	}
}

func TestSortByDisplayOrder(t *testing.T) {
	goals := []model.Goal{
		{BaseModel: model.BaseModel{ID: 5}, DisplayOrder: 2},
		{BaseModel: model.BaseModel{ID: 3}, DisplayOrder: 1},
		{BaseModel: model.BaseModel{ID: 1}, DisplayOrder: 1},
	}

	SortByDisplayOrder(goals)

	wantIDs := []uint{1, 3, 5}
	for i, want := range wantIDs {
		if goals[i].ID != want {
			t.Errorf("goals[%d].ID = %d, want %d", i, goals[i].ID, want)
		}
	}
}
