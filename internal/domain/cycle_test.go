package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCycleModel_Valid(t *testing.T) {
	c, err := NewCycleModel(Date(2024, 1, 1), 28, 5)
	require.NoError(t, err)
	require.True(t, c.Configured())
	assert.Equal(t, Date(2024, 1, 1), *c.AnchorDate)
}

func TestCycleModel_Validate_Ranges(t *testing.T) {
	cases := []struct {
		name   string
		cycle  int
		period int
		fields []string
	}{
		{"cycle too short", 20, 5, []string{"cycle_length"}},
		{"cycle too long", 36, 5, []string{"cycle_length"}},
		{"period too short", 28, 2, []string{"period_length"}},
		{"period too long", 28, 8, []string{"period_length"}},
		{"period exceeds cycle", 2, 5, []string{"cycle_length", "period_length"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CycleModel{CycleLength: tc.cycle, PeriodLength: tc.period}.Validate()
			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			var fields []string
			for _, v := range verrs {
				fields = append(fields, v.Field)
			}
			for _, f := range tc.fields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestDefaultCycleModel_NotConfigured(t *testing.T) {
	c := DefaultCycleModel()
	assert.False(t, c.Configured())
	assert.NoError(t, c.Validate())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(Date(2024, 1, 1), Date(2024, 1, 1)))
	assert.Equal(t, 14, DaysBetween(Date(2024, 1, 1), Date(2024, 1, 15)))
	assert.Equal(t, -3, DaysBetween(Date(2024, 1, 4), Date(2024, 1, 1)))
	assert.Equal(t, 366, DaysBetween(Date(2024, 1, 1), Date(2025, 1, 1)))
}

func TestDaysBetween_CenturiesApart(t *testing.T) {
	anchor := Date(2024, 1, 1)
	assert.Equal(t, -118338, DaysBetween(anchor, Date(1700, 1, 1)))
	assert.Equal(t, 137331, DaysBetween(anchor, Date(2400, 1, 1)))
	assert.Equal(t, -657437, DaysBetween(anchor, Date(224, 1, 1)))
	assert.Equal(t, 118338, DaysBetween(Date(1700, 1, 1), anchor))
}

func TestConfigError_Unwraps(t *testing.T) {
	err := NewNotConfiguredError()
	assert.True(t, errors.Is(err, ErrCycleNotConfigured))
	assert.True(t, IsConfigError(err))
	assert.False(t, IsValidationError(err))
}
