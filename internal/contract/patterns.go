package contract

// DefaultTopSymptoms is how many symptom lines the pattern chart draws.
const DefaultTopSymptoms = 3

type PatternsRequest struct {
	TopN int
}

func NewPatternsRequest() PatternsRequest {
	return PatternsRequest{TopN: DefaultTopSymptoms}
}

// PatternsView summarises the symptom log across cycle days.
type PatternsView struct {
	CycleLength int `json:"cycle_length"`
	EntryCount  int `json:"entry_count"`
	// Top holds the most reported symptoms, highest count first.
	Top []SymptomTotal `json:"top"`
	// Series maps each top symptom to its count on cycle days 1..CycleLength.
	Series map[string][]int `json:"series"`
	// Tracked lists every distinct symptom ever logged, sorted.
	Tracked []string `json:"tracked"`
}

type SymptomTotal struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

// Empty reports whether no countable symptom has been logged.
func (v *PatternsView) Empty() bool {
	return len(v.Top) == 0
}
