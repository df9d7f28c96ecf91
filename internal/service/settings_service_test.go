package service

import (
	"testing"

	"kpi_tracker_backend/internal/model"
)

func TestFromRows(t *testing.T) {
	rows := []model.Setting{
		{Key: model.SettingRegistrationOpen, Value: "true"},
		{Key: model.SettingRequireApproval, Value: "false"},
		{Key: model.SettingShowHiddenCards, Value: "true"},
		{Key: model.SettingGlobalTheme, Value: "dark"},
		{Key: "unknown_key", Value: "whatever"},
	}

	got := fromRows(rows)

	if !got.IsRegistrationOpen {
		t.Error("IsRegistrationOpen = false, want true")
	}
	if got.RequireApproval {
		t.Error("RequireApproval = true, want false")
	}
	if !got.ShowHiddenCards {
		t.Error("ShowHiddenCards = false, want true")
	}
	if got.GlobalTheme != "dark" {
		t.Errorf("GlobalTheme = %q, want dark", got.GlobalTheme)
	}
}

func TestFromRowsDefaults(t *testing.T) {
	got := fromRows(nil)
	if got.GlobalTheme != "light" {
		t.Errorf("GlobalTheme default = %q, want light", got.GlobalTheme)
	}
	if got.IsRegistrationOpen {
		t.Error("missing rows should read as off")
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{33.333333, 33.33},
		{66.666666, 66.67},
		{100, 100},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
