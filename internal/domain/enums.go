package domain

import (
	"fmt"
	"strings"
)

// Phase is one of the four named segments of a cycle.
type Phase string

const (
	PhaseMenstrual  Phase = "Menstrual"
	PhaseFollicular Phase = "Follicular"
	PhaseOvulation  Phase = "Ovulation"
	PhaseLuteal     Phase = "Luteal"
)

// Phases lists every phase in cycle order.
var Phases = []Phase{PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal}

// Valid reports whether p is one of the four known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal:
		return true
	}
	return false
}

// ParsePhase accepts the persisted phase name, case-insensitively.
func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown phase %q", s)
}

// Mood is one of eight ordered mood levels, Terrible lowest.
type Mood int

const (
	MoodTerrible Mood = iota + 1
	MoodLow
	MoodDown
	MoodNeutral
	MoodOkay
	MoodGood
	MoodGreat
	MoodAmazing
)

// Moods lists every mood from lowest to highest.
var Moods = []Mood{MoodTerrible, MoodLow, MoodDown, MoodNeutral, MoodOkay, MoodGood, MoodGreat, MoodAmazing}

var moodNames = map[Mood]string{
	MoodTerrible: "Terrible",
	MoodLow:      "Low",
	MoodDown:     "Down",
	MoodNeutral:  "Neutral",
	MoodOkay:     "Okay",
	MoodGood:     "Good",
	MoodGreat:    "Great",
	MoodAmazing:  "Amazing",
}

var moodEmoji = map[Mood]string{
	MoodTerrible: "😭",
	MoodLow:      "😢",
	MoodDown:     "😔",
	MoodNeutral:  "😐",
	MoodOkay:     "🙂",
	MoodGood:     "😊",
	MoodGreat:    "😄",
	MoodAmazing:  "🌟",
}

func (m Mood) String() string {
	if name, ok := moodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mood(%d)", int(m))
}

// Emoji returns the glyph shown next to the mood name.
func (m Mood) Emoji() string {
	return moodEmoji[m]
}

// Label returns the emoji-prefixed form, e.g. "😐 Neutral".
func (m Mood) Label() string {
	return m.Emoji() + " " + m.String()
}

func (m Mood) Valid() bool {
	return m >= MoodTerrible && m <= MoodAmazing
}

// ParseMood accepts either the plain name ("Neutral") or the emoji label
// ("😐 Neutral").
func ParseMood(s string) (Mood, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("mood is required")
	}
	name := fields[len(fields)-1]
	for m, n := range moodNames {
		if strings.EqualFold(n, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mood %q", s)
}

type Category string

const (
	CategoryWork     Category = "Work"
	CategoryStudy    Category = "Study"
	CategoryPersonal Category = "Personal"
	CategoryExercise Category = "Exercise"
	CategoryCreative Category = "Creative"
)

// Categories lists every task category in display order.
var Categories = []Category{CategoryWork, CategoryStudy, CategoryPersonal, CategoryExercise, CategoryCreative}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type Intensity string

const (
	IntensityLight     Intensity = "Light"
	IntensityModerate  Intensity = "Moderate"
	IntensityDemanding Intensity = "Demanding"
)

var Intensities = []Intensity{IntensityLight, IntensityModerate, IntensityDemanding}

func (i Intensity) Valid() bool {
	switch i {
	case IntensityLight, IntensityModerate, IntensityDemanding:
		return true
	}
	return false
}

// ParseIntensity accepts the bare level or a described form such as
// "Light (easy, routine)"; only the first word is significant.
func ParseIntensity(s string) (Intensity, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", fmt.Errorf("intensity is required")
	}
	for _, i := range Intensities {
		if strings.EqualFold(string(i), fields[0]) {
			return i, nil
		}
	}
	return "", fmt.Errorf("unknown intensity %q", s)
}
