package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CycleRecord is the persisted cycle file: configuration plus the symptom log.
type CycleRecord struct {
	LastPeriod   *string         `json:"last_period"`
	CycleLength  int             `json:"cycle_length"`
	PeriodLength int             `json:"period_length"`
	SymptomsLog  []SymptomRecord `json:"symptoms_log"`
}

// SymptomRecord is one persisted log entry. Mood is stored as its emoji
// label, e.g. "😐 Neutral".
type SymptomRecord struct {
	Date     string   `json:"date"`
	Phase    *string  `json:"phase"`
	Mood     string   `json:"mood"`
	Energy   int      `json:"energy"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

// TaskRecord is one persisted task. The name lives under "task".
type TaskRecord struct {
	Task      string  `json:"task"`
	Category  string  `json:"category"`
	Deadline  string  `json:"deadline"`
	Hours     float64 `json:"hours"`
	Intensity string  `json:"intensity"`
	Completed bool    `json:"completed"`
}

// ParseCycleRecord decodes a cycle file.
func ParseCycleRecord(data []byte) (*CycleRecord, error) {
	var rec CycleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing cycle record: %w", err)
	}
	return &rec, nil
}

// ParseTaskRecords decodes a task file.
func ParseTaskRecords(data []byte) ([]TaskRecord, error) {
	var recs []TaskRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parsing task records: %w", err)
	}
	return recs, nil
}

// ReadCycleFile reads and decodes the cycle file at path.
func ReadCycleFile(path string) (*CycleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cycle file: %w", err)
	}
	return ParseCycleRecord(data)
}

// ReadTasksFile reads and decodes the task file at path.
func ReadTasksFile(path string) ([]TaskRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tasks file: %w", err)
	}
	return ParseTaskRecords(data)
}

// WriteCycleFile writes rec to path as indented JSON.
func WriteCycleFile(path string, rec CycleRecord) error {
	if rec.SymptomsLog == nil {
		rec.SymptomsLog = []SymptomRecord{}
	}
	return writeJSON(path, rec)
}

// WriteTasksFile writes recs to path as indented JSON.
func WriteTasksFile(path string, recs []TaskRecord) error {
	if recs == nil {
		recs = []TaskRecord{}
	}
	return writeJSON(path, recs)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
