package cycle

import (
	"sort"

	"github.com/alexanderramin/mooncyc/internal/domain"
)

// FrequencyTable counts symptom occurrences per one-based cycle day.
type FrequencyTable struct {
	CycleLength int
	// Counts maps cycle day (1..CycleLength) to symptom tag to count.
	Counts map[int]map[string]int
	// order holds tags in the order they were first counted.
	order []string
}

// SymptomCount is a symptom tag with its total occurrences.
type SymptomCount struct {
	Symptom string
	Count   int
}

// BuildFrequencyTable folds log into a per-cycle-day frequency table. The
// None sentinel is skipped. Entries dated outside any plausible range still
// count, wrapped by DayInCycle. The log is not modified.
func BuildFrequencyTable(c domain.CycleModel, log []domain.SymptomEntry) (FrequencyTable, error) {
	if !c.Configured() {
		return FrequencyTable{}, domain.NewNotConfiguredError()
	}

	table := FrequencyTable{
		CycleLength: c.CycleLength,
		Counts:      make(map[int]map[string]int, c.CycleLength),
	}
	for day := 1; day <= c.CycleLength; day++ {
		table.Counts[day] = make(map[string]int)
	}

	seen := make(map[string]bool)
	for _, entry := range log {
		day, err := DayInCycle(c, entry.Date)
		if err != nil {
			return FrequencyTable{}, err
		}
		bucket := table.Counts[day+1]
		for _, tag := range entry.Symptoms {
			if tag == domain.NoneSymptom {
				continue
			}
			bucket[tag]++
			if !seen[tag] {
				seen[tag] = true
				table.order = append(table.order, tag)
			}
		}
	}
	return table, nil
}

// Totals returns every counted symptom with its total across all days, in
// first-seen order.
func (t FrequencyTable) Totals() []SymptomCount {
	totals := make([]SymptomCount, 0, len(t.order))
	for _, tag := range t.order {
		n := 0
		for _, bucket := range t.Counts {
			n += bucket[tag]
		}
		totals = append(totals, SymptomCount{Symptom: tag, Count: n})
	}
	return totals
}

// TopSymptoms returns up to n symptoms by total count descending. Ties keep
// first-seen order. n <= 0 returns all.
func TopSymptoms(t FrequencyTable, n int) []SymptomCount {
	totals := t.Totals()
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Count > totals[j].Count
	})
	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// Series returns the count of tag on each cycle day, index 0 being day 1.
func (t FrequencyTable) Series(tag string) []int {
	series := make([]int, t.CycleLength)
	for day := 1; day <= t.CycleLength; day++ {
		series[day-1] = t.Counts[day][tag]
	}
	return series
}

// Empty reports whether nothing was counted.
func (t FrequencyTable) Empty() bool {
	return len(t.order) == 0
}

// LatestSymptoms returns the counted symptoms of the most recent entry by
// date. Later entries win ties.
func LatestSymptoms(log []domain.SymptomEntry) []string {
	if len(log) == 0 {
		return nil
	}
	latest := 0
	for i := 1; i < len(log); i++ {
		if !log[i].Date.Before(log[latest].Date) {
			latest = i
		}
	}
	return log[latest].CountedSymptoms()
}

// TrackedSymptoms returns every distinct counted tag in the log, sorted.
func TrackedSymptoms(log []domain.SymptomEntry) []string {
	set := make(map[string]bool)
	for _, entry := range log {
		for _, tag := range entry.CountedSymptoms() {
			set[tag] = true
		}
	}
	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
