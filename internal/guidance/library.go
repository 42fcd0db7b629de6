package guidance

import "github.com/alexanderramin/mooncyc/internal/domain"

// PhaseDescription explains what is happening in the body during a phase.
type PhaseDescription struct {
	Emoji    string `json:"emoji"`
	Summary  string `json:"summary"`
	Hormones string `json:"hormones"`
	Feeling  string `json:"feeling"`
	Tip      string `json:"tip"`
}

// ExerciseAdvice recommends movement suited to a phase.
type ExerciseAdvice struct {
	Activities string `json:"activities"`
	Rationale  string `json:"rationale"`
}

var descriptions = map[domain.Phase]PhaseDescription{
	domain.PhaseMenstrual: {
		Emoji:    "🩸",
		Summary:  "Your body is shedding the uterine lining",
		Hormones: "Both estrogen and progesterone are at their lowest",
		Feeling:  "It's completely normal to feel drained, emotional, or want to curl up in bed. Your body is doing intense biological work, so be kind to yourself.",
		Tip:      "This is your body's natural reset. Honor the need for rest, warmth, and gentle movement.",
	},
	domain.PhaseFollicular: {
		Emoji:    "🌱",
		Summary:  "Your body is preparing to release an egg",
		Hormones: "Estrogen is rising steadily",
		Feeling:  "You might notice your mood lifting, energy returning, and skin glowing. This is your 'spring' phase, when new ideas and motivation come naturally.",
		Tip:      "Harness this energy! Start new projects, have difficult conversations, tackle your hardest tasks.",
	},
	domain.PhaseOvulation: {
		Emoji:    "✨",
		Summary:  "Your body releases an egg: peak fertility",
		Hormones: "Estrogen and testosterone peak together",
		Feeling:  "This is your superpower window. You feel confident, social, strong, and clear-headed. Everything feels easier right now.",
		Tip:      "Schedule presentations, workouts, social events, and challenging tasks here. You're literally at your best.",
	},
	domain.PhaseLuteal: {
		Emoji:    "🌙",
		Summary:  "Your body prepares for either pregnancy or menstruation",
		Hormones: "Progesterone rises, then both hormones drop sharply before your period",
		Feeling:  "It's completely normal to feel drained, irritable, or foggy, especially in the second half. The hormone crash is real and it's not in your head.",
		Tip:      "This is your 'autumn' phase. Focus on finishing what you started, not starting new things. Rest is productive.",
	},
}

var exercise = map[domain.Phase]ExerciseAdvice{
	domain.PhaseMenstrual: {
		Activities: "🧘 Gentle yoga, walking, stretching",
		Rationale:  "Low progesterone and estrogen: your body needs rest and gentle movement.",
	},
	domain.PhaseFollicular: {
		Activities: "🏃 HIIT, running, strength training",
		Rationale:  "Rising estrogen boosts energy and muscle building capacity.",
	},
	domain.PhaseOvulation: {
		Activities: "💪 Peak performance training, heavy lifting",
		Rationale:  "Testosterone and estrogen peak: your strongest days.",
	},
	domain.PhaseLuteal: {
		Activities: "🚴 Moderate cardio, pilates, swimming",
		Rationale:  "Progesterone rises, so focus on steady-state endurance.",
	},
}

// Describe returns the description of phase, or the Follicular entry for an
// unknown phase.
func Describe(phase domain.Phase) PhaseDescription {
	if d, ok := descriptions[phase]; ok {
		return d
	}
	return descriptions[defaultPhase]
}

// Exercise returns the movement advice for phase, or the Follicular entry for
// an unknown phase.
func Exercise(phase domain.Phase) ExerciseAdvice {
	if e, ok := exercise[phase]; ok {
		return e
	}
	return exercise[defaultPhase]
}
