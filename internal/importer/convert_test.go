package importer

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyCycleFile = `{
  "last_period": "2024-01-01",
  "cycle_length": 28,
  "period_length": 5,
  "symptoms_log": [
    {"date": "2024-01-02", "phase": "Menstrual", "mood": "😢 Low", "energy": 2, "symptoms": ["Cramps", "Tired"], "notes": "rough day"},
    {"date": "2024-01-02", "phase": null, "mood": "😐 Neutral", "energy": 3, "symptoms": ["None"], "notes": ""}
  ]
}`

const legacyTasksFile = `[
  {"task": "Finish presentation", "category": "Work", "deadline": "2024-01-10", "hours": 6.0, "intensity": "Demanding", "completed": false},
  {"task": "Yoga", "category": "Exercise", "deadline": "2024-01-03", "hours": 1.0, "intensity": "Light", "completed": true}
]`

func TestCycleToDomain_LegacyFile(t *testing.T) {
	rec, err := ParseCycleRecord([]byte(legacyCycleFile))
	require.NoError(t, err)
	require.Empty(t, ValidateCycleRecord(rec))

	c, entries, err := CycleToDomain(rec)
	require.NoError(t, err)
	require.True(t, c.Configured())
	assert.Equal(t, domain.Date(2024, 1, 1), *c.AnchorDate)
	assert.Equal(t, 28, c.CycleLength)

	require.Len(t, entries, 2)
	assert.Equal(t, domain.MoodLow, entries[0].Mood)
	require.NotNil(t, entries[0].Phase)
	assert.Equal(t, domain.PhaseMenstrual, *entries[0].Phase)
	assert.Equal(t, []string{"Cramps", "Tired"}, entries[0].Symptoms)
	assert.Nil(t, entries[1].Phase)
	assert.True(t, entries[0].CreatedAt.Before(entries[1].CreatedAt), "file order is kept for same-day entries")
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestTasksToDomain_LegacyFile(t *testing.T) {
	recs, err := ParseTaskRecords([]byte(legacyTasksFile))
	require.NoError(t, err)
	require.Empty(t, ValidateTaskRecords(recs))

	tasks, err := TasksToDomain(recs)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Finish presentation", tasks[0].Name)
	assert.Equal(t, domain.IntensityDemanding, tasks[0].Intensity)
	assert.Equal(t, domain.Date(2024, 1, 10), tasks[0].Deadline)
	assert.True(t, tasks[1].Completed)
}

func TestCycleFromDomain_WritesEmojiMoodAndNullPhase(t *testing.T) {
	anchor := domain.Date(2024, 1, 1)
	menstrual := domain.PhaseMenstrual
	c := domain.CycleModel{AnchorDate: &anchor, CycleLength: 30, PeriodLength: 4}
	entries := []domain.SymptomEntry{
		{Date: domain.Date(2024, 1, 2), Phase: &menstrual, Mood: domain.MoodNeutral, Energy: 3},
		{Date: domain.Date(2024, 1, 3), Mood: domain.MoodAmazing, Energy: 5, Symptoms: []string{"Happy"}},
	}

	rec := CycleFromDomain(c, entries)

	require.NotNil(t, rec.LastPeriod)
	assert.Equal(t, "2024-01-01", *rec.LastPeriod)
	assert.Equal(t, "😐 Neutral", rec.SymptomsLog[0].Mood)
	assert.Equal(t, "Menstrual", *rec.SymptomsLog[0].Phase)
	assert.Equal(t, []string{}, rec.SymptomsLog[0].Symptoms)
	assert.Nil(t, rec.SymptomsLog[1].Phase)
	assert.Equal(t, "🌟 Amazing", rec.SymptomsLog[1].Mood)
}

func TestWriteAndReadFiles(t *testing.T) {
	dir := t.TempDir()
	cyclePath := filepath.Join(dir, "cycle_data.json")
	tasksPath := filepath.Join(dir, "tasks.json")

	rec, err := ParseCycleRecord([]byte(legacyCycleFile))
	require.NoError(t, err)
	recs, err := ParseTaskRecords([]byte(legacyTasksFile))
	require.NoError(t, err)

	require.NoError(t, WriteCycleFile(cyclePath, *rec))
	require.NoError(t, WriteTasksFile(tasksPath, recs))

	gotCycle, err := ReadCycleFile(cyclePath)
	require.NoError(t, err)
	assert.Equal(t, rec, gotCycle)

	gotTasks, err := ReadTasksFile(tasksPath)
	require.NoError(t, err)
	assert.Equal(t, recs, gotTasks)
}

func TestWriteTasksFile_EmptyListIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, WriteTasksFile(path, nil))

	recs, err := ReadTasksFile(path)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestReadCycleFile_Missing(t *testing.T) {
	_, err := ReadCycleFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
