package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_Valid(t *testing.T) {
	task, err := NewTask("  Finish presentation ", CategoryWork, Date(2024, 1, 10), 2, IntensityModerate)
	require.NoError(t, err)
	assert.Equal(t, "Finish presentation", task.Name)
	assert.False(t, task.Completed)
}

func TestNewTask_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		task  string
		hours float64
	}{
		{"empty name", "   ", 2},
		{"hours below range", "Read", 0.25},
		{"hours above range", "Read", 20.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTask(tc.task, CategoryStudy, Date(2024, 1, 10), tc.hours, IntensityLight)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestNewTask_BoundaryHours(t *testing.T) {
	_, err := NewTask("Short", CategoryPersonal, Date(2024, 1, 10), MinTaskHours, IntensityLight)
	assert.NoError(t, err)
	_, err = NewTask("Long", CategoryPersonal, Date(2024, 1, 10), MaxTaskHours, IntensityLight)
	assert.NoError(t, err)
}

func TestTask_MarkCompleted(t *testing.T) {
	task := &Task{Name: "x"}
	task.MarkCompleted()
	task.MarkCompleted()
	assert.True(t, task.Completed)
}

func TestSymptomEntry_CountedSymptoms(t *testing.T) {
	e := SymptomEntry{Symptoms: []string{"Cramps", NoneSymptom, "Bloating"}}
	assert.Equal(t, []string{"Cramps", "Bloating"}, e.CountedSymptoms())
}

func TestSymptomEntry_Validate(t *testing.T) {
	e := SymptomEntry{Date: Date(2024, 1, 1), Mood: MoodGood, Energy: 3}
	assert.NoError(t, e.Validate())

	e.Energy = 6
	e.Mood = 0
	err := e.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "energy")
	assert.Contains(t, err.Error(), "mood")
}
