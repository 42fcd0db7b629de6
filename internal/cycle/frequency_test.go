package cycle

import (
	"testing"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date time.Time, symptoms ...string) domain.SymptomEntry {
	return domain.SymptomEntry{Date: date, Mood: domain.MoodNeutral, Energy: 3, Symptoms: symptoms}
}

func TestBuildFrequencyTable_CountsPerCycleDay(t *testing.T) {
	c := configured(t, 28, 5)
	log := []domain.SymptomEntry{
		entry(domain.Date(2024, 1, 1), "Cramps", "Fatigue"),
		entry(domain.Date(2024, 1, 29), "Cramps"),
		entry(domain.Date(2024, 1, 2), "Bloating"),
	}

	table, err := BuildFrequencyTable(c, log)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Counts[1]["Cramps"], "day 1 of two cycles")
	assert.Equal(t, 1, table.Counts[1]["Fatigue"])
	assert.Equal(t, 1, table.Counts[2]["Bloating"])
	assert.Len(t, table.Counts, 28)
}

func TestBuildFrequencyTable_NoneIsNotCounted(t *testing.T) {
	c := configured(t, 28, 5)
	table, err := BuildFrequencyTable(c, []domain.SymptomEntry{entry(domain.Date(2024, 1, 3), domain.NoneSymptom)})
	require.NoError(t, err)
	for day, bucket := range table.Counts {
		assert.Empty(t, bucket, "day %d", day)
	}
	assert.True(t, table.Empty())
	assert.Empty(t, TopSymptoms(table, 3))
}

func TestBuildFrequencyTable_Unconfigured(t *testing.T) {
	_, err := BuildFrequencyTable(domain.DefaultCycleModel(), nil)
	require.Error(t, err)
	assert.True(t, domain.IsConfigError(err))
}

func TestBuildFrequencyTable_EmptyLog(t *testing.T) {
	c := configured(t, 30, 5)
	table, err := BuildFrequencyTable(c, nil)
	require.NoError(t, err)
	assert.True(t, table.Empty())
	assert.Len(t, table.Series("Cramps"), 30)
}

func TestBuildFrequencyTable_ImplausibleDatesStillCount(t *testing.T) {
	c := configured(t, 28, 5)
	log := []domain.SymptomEntry{
		entry(domain.Date(1900, 3, 1), "Headache"),
		entry(domain.Date(2300, 7, 9), "Headache"),
	}
	table, err := BuildFrequencyTable(c, log)
	require.NoError(t, err)
	top := TopSymptoms(table, 1)
	require.Len(t, top, 1)
	assert.Equal(t, SymptomCount{Symptom: "Headache", Count: 2}, top[0])
}

func TestBuildFrequencyTable_Idempotent(t *testing.T) {
	c := configured(t, 28, 5)
	log := []domain.SymptomEntry{
		entry(domain.Date(2024, 1, 1), "Cramps", domain.NoneSymptom),
		entry(domain.Date(2024, 1, 5), "Acne"),
	}
	snapshot := make([]domain.SymptomEntry, len(log))
	copy(snapshot, log)

	first, err := BuildFrequencyTable(c, log)
	require.NoError(t, err)
	second, err := BuildFrequencyTable(c, log)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, log, "input log must not be mutated")
	assert.Equal(t, []string{"Cramps", domain.NoneSymptom}, log[0].Symptoms)
}

func TestTopSymptoms_StableTieBreak(t *testing.T) {
	c := configured(t, 28, 5)
	var log []domain.SymptomEntry
	for i := 0; i < 5; i++ {
		log = append(log, entry(domain.Date(2024, 1, 1+i), "Cramps"))
	}
	for i := 0; i < 5; i++ {
		log = append(log, entry(domain.Date(2024, 1, 10+i), "Bloating"))
	}
	log = append(log, entry(domain.Date(2024, 1, 20), "Acne"))

	table, err := BuildFrequencyTable(c, log)
	require.NoError(t, err)

	top := TopSymptoms(table, 3)
	assert.Equal(t, []SymptomCount{
		{Symptom: "Cramps", Count: 5},
		{Symptom: "Bloating", Count: 5},
		{Symptom: "Acne", Count: 1},
	}, top)

	assert.Len(t, TopSymptoms(table, 2), 2)
	assert.Len(t, TopSymptoms(table, 0), 3)
}

func TestFrequencyTable_Series(t *testing.T) {
	c := configured(t, 21, 3)
	table, err := BuildFrequencyTable(c, []domain.SymptomEntry{
		entry(domain.Date(2024, 1, 3), "Cramps"),
		entry(domain.Date(2024, 1, 24), "Cramps"),
	})
	require.NoError(t, err)
	series := table.Series("Cramps")
	require.Len(t, series, 21)
	assert.Equal(t, 2, series[2])
	assert.Equal(t, 0, series[0])
}

func TestLatestSymptoms(t *testing.T) {
	log := []domain.SymptomEntry{
		entry(domain.Date(2024, 1, 5), "Cramps"),
		entry(domain.Date(2024, 1, 7), "Acne", domain.NoneSymptom),
		entry(domain.Date(2024, 1, 6), "Bloating"),
	}
	assert.Equal(t, []string{"Acne"}, LatestSymptoms(log))
	assert.Nil(t, LatestSymptoms(nil))
}

func TestTrackedSymptoms(t *testing.T) {
	log := []domain.SymptomEntry{
		entry(domain.Date(2024, 1, 5), "Cramps", "Acne"),
		entry(domain.Date(2024, 1, 7), domain.NoneSymptom),
		entry(domain.Date(2024, 1, 6), "Acne"),
	}
	assert.Equal(t, []string{"Acne", "Cramps"}, TrackedSymptoms(log))
}
