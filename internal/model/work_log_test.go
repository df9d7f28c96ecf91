package model

import "testing"

func TestWorkLogTotal(t *testing.T) {
	flat := WorkLog{CompletedWork: 12}
	if got := flat.Total(); got != 12 {
		t.Errorf("flat Total = %v, want 12", got)
	}

	decomposed := WorkLog{
		CompletedWork:   999, // stale denormalized value must be ignored
		SubMetricValues: SubMetricValueMap{"1": 7, "2": 3},
	}
	if got := decomposed.Total(); got != 10 {
		t.Errorf("decomposed Total = %v, want 10", got)
	}
}

func TestWorkLogBeforeSaveDerivesTotal(t *testing.T) {
	smID := uint(4)
	log := WorkLog{
		CompletedWork:   1,
		SubMetricID:     &smID,
		SubMetricValues: SubMetricValueMap{"1": 30, "2": 20},
	}

	if err := log.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave returned error: %v", err)
	}

	if log.CompletedWork != 50 {
		t.Errorf("CompletedWork = %v, want 50", log.CompletedWork)
	}
	if log.SubMetricID != nil {
		t.Errorf("SubMetricID = %v, want nil (legacy pointer cleared)", *log.SubMetricID)
	}
}

func TestWorkLogBeforeSaveLegacyUntouched(t *testing.T) {
	smID := uint(4)
	log := WorkLog{CompletedWork: 8, SubMetricID: &smID}

	if err := log.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave returned error: %v", err)
	}

	if log.CompletedWork != 8 {
		t.Errorf("CompletedWork = %v, want 8", log.CompletedWork)
	}
	if log.SubMetricID == nil || *log.SubMetricID != 4 {
		t.Error("legacy SubMetricID should survive BeforeSave")
	}
}

func TestIsDecomposed(t *testing.T) {
	if (&WorkLog{}).IsDecomposed() {
		t.Error("empty log should not be decomposed")
	}
	if !(&WorkLog{SubMetricValues: SubMetricValueMap{"1": 1}}).IsDecomposed() {
		t.Error("log with mapping should be decomposed")
	}
}
