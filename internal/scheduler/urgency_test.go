package scheduler

import (
	"testing"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUrgency(t *testing.T) {
	cases := []struct {
		daysLeft int
		want     UrgencyLevel
	}{
		{-3, UrgencyUrgent},
		{0, UrgencyUrgent},
		{2, UrgencyUrgent},
		{3, UrgencySoon},
		{5, UrgencySoon},
		{6, UrgencyRelaxed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Urgency(today.AddDate(0, 0, tc.daysLeft), today), "daysLeft=%d", tc.daysLeft)
	}
}

func TestSortByDeadline_StableAndNonMutating(t *testing.T) {
	tasks := []domain.Task{task("late", 9, 1), task("first", 1, 1), task("tie-a", 4, 1), task("tie-b", 4, 1)}

	sorted := SortByDeadline(tasks)

	var ids []string
	for _, tk := range sorted {
		ids = append(ids, tk.ID)
	}
	assert.Equal(t, []string{"first", "tie-a", "tie-b", "late"}, ids)
	assert.Equal(t, "late", tasks[0].ID)
}
