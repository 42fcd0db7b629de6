package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMood_AcceptsLabelAndName(t *testing.T) {
	m, err := ParseMood("😐 Neutral")
	require.NoError(t, err)
	assert.Equal(t, MoodNeutral, m)

	m, err = ParseMood("amazing")
	require.NoError(t, err)
	assert.Equal(t, MoodAmazing, m)

	_, err = ParseMood("ecstatic")
	assert.Error(t, err)
}

func TestMoods_Ordered(t *testing.T) {
	require.Len(t, Moods, 8)
	for i := 1; i < len(Moods); i++ {
		assert.Less(t, Moods[i-1], Moods[i])
	}
	assert.Equal(t, "🌟 Amazing", MoodAmazing.Label())
}

func TestParsePhase(t *testing.T) {
	for _, p := range Phases {
		got, err := ParsePhase(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePhase("fertile")
	assert.Error(t, err)
}

func TestParseIntensity_DescribedForm(t *testing.T) {
	i, err := ParseIntensity("Demanding (high focus, stressful)")
	require.NoError(t, err)
	assert.Equal(t, IntensityDemanding, i)
}
