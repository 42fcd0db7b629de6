package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrStr(s string) *string { return &s }

func validCycleRecord() *CycleRecord {
	return &CycleRecord{
		LastPeriod:   ptrStr("2024-01-01"),
		CycleLength:  28,
		PeriodLength: 5,
		SymptomsLog: []SymptomRecord{
			{Date: "2024-01-02", Phase: ptrStr("Menstrual"), Mood: "😢 Low", Energy: 2, Symptoms: []string{"Cramps"}},
			{Date: "2024-01-20", Phase: nil, Mood: "Good", Energy: 4, Symptoms: []string{"None"}},
		},
	}
}

func TestValidateCycleRecord_Valid(t *testing.T) {
	assert.Empty(t, ValidateCycleRecord(validCycleRecord()))
}

func TestValidateCycleRecord_MissingLengthsUseDefaults(t *testing.T) {
	rec := &CycleRecord{LastPeriod: nil}
	assert.Empty(t, ValidateCycleRecord(rec))
}

func TestValidateCycleRecord_CollectsAllErrors(t *testing.T) {
	rec := validCycleRecord()
	rec.LastPeriod = ptrStr("01/01/2024")
	rec.CycleLength = 40
	rec.SymptomsLog[0].Mood = "Ecstatic"
	rec.SymptomsLog[1].Energy = 9
	rec.SymptomsLog[1].Phase = ptrStr("Waxing")

	errs := ValidateCycleRecord(rec)
	assert.Len(t, errs, 5)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	assert.Contains(t, msgs[0], "last_period")
	assert.Contains(t, msgs[1], "cycle_length")
	assert.Contains(t, msgs[2], "symptoms_log[0].mood")
	assert.Contains(t, msgs[3], "symptoms_log[1].phase")
	assert.Contains(t, msgs[4], "symptoms_log[1].energy")
}

func TestValidateTaskRecords(t *testing.T) {
	recs := []TaskRecord{
		{Task: "Essay", Category: "Study", Deadline: "2024-03-01", Hours: 4, Intensity: "Moderate"},
		{Task: " ", Category: "Chores", Deadline: "tomorrow", Hours: 0.25, Intensity: "Extreme"},
	}

	errs := ValidateTaskRecords(recs)
	assert.Len(t, errs, 5)
	for _, e := range errs {
		assert.Contains(t, e.Error(), "tasks[1]")
	}
}

func TestValidateTaskRecords_DescribedIntensityAccepted(t *testing.T) {
	recs := []TaskRecord{{Task: "Run", Category: "Exercise", Deadline: "2024-03-01", Hours: 1, Intensity: "Light (easy, routine)"}}
	assert.Empty(t, ValidateTaskRecords(recs))
}
