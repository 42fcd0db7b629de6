package guidance

import "github.com/alexanderramin/mooncyc/internal/domain"

// defaultPhase keys the entry used for a phase missing from a table.
const defaultPhase = domain.PhaseFollicular

var fallbackMeditations = map[domain.Phase]Meditation{
	domain.PhaseMenstrual: {
		Title:    "Rest & Release Meditation",
		Duration: "5 minutes",
		Script: `Find a comfortable position, lying down or seated with support.

Close your eyes. Take three deep breaths, in through your nose and out through your mouth.

Place your hands on your lower belly. Feel the warmth of your palms.

Say to yourself: "My body is doing sacred work. I honor this time of release."

Visualize a warm, golden light filling your belly, soothing and melting away tension.

With each exhale, imagine releasing what no longer serves you.

Rest here for 3-5 minutes. You are exactly where you need to be.`,
	},
	domain.PhaseFollicular: {
		Title:    "Energy & Possibility Meditation",
		Duration: "5 minutes",
		Script: `Sit upright with your spine tall. Roll your shoulders back.

Take a deep breath in and feel your lungs expand. Exhale fully.

Say to yourself: "I am rising. I am ready. I am capable."

Visualize a bright, spring-green light starting at your feet, rising up through your body.

With each breath, feel energy building like a seed sprouting toward the sun.

Notice any new ideas or intentions that arise. Welcome them.

Take one final deep breath. Open your eyes feeling refreshed.`,
	},
	domain.PhaseOvulation: {
		Title:    "Confidence & Clarity Meditation",
		Duration: "3 minutes",
		Script: `Stand tall or sit upright. Feel your strength.

Take three powerful breaths: sharp inhale, full exhale.

Say to yourself: "I am powerful. I am magnetic. I am clear."

Visualize a bright white light at the crown of your head, radiating confidence outward.

Feel yourself standing in your full power. You have everything you need.

This is your moment. Use it.

Open your eyes when ready.`,
	},
	domain.PhaseLuteal: {
		Title:    "Grounding & Compassion Meditation",
		Duration: "7 minutes",
		Script: `Lie down or sit with your back supported. Close your eyes.

Take slow, deep breaths: 4 counts in, 4 counts out.

Say to yourself: "I am allowed to slow down. I am enough as I am."

Visualize roots growing from your body into the earth, grounding you and holding you.

With each exhale, release self-criticism. With each inhale, breathe in gentleness.

Place your hand on your heart. Feel your heartbeat.

You are doing your best. That is enough.

Rest here as long as you need.`,
	},
}

var fallbackMealPlans = map[domain.Phase]MealPlan{
	domain.PhaseMenstrual: {
		Breakfast: "🍳 Scrambled eggs with spinach and avocado",
		Lunch:     "🥩 Grilled steak salad with dark leafy greens",
		Dinner:    "🐟 Baked salmon with roasted sweet potato",
		Snacks:    "🍫 Dark chocolate, dates, handful of almonds",
		Rationale: "Replenish iron lost during bleeding. Magnesium reduces cramps.",
	},
	domain.PhaseFollicular: {
		Breakfast: "🥣 Greek yogurt with berries and flaxseeds",
		Lunch:     "🥗 Grilled chicken quinoa bowl with broccoli",
		Dinner:    "🍜 Miso soup with tofu and fermented vegetables",
		Snacks:    "🥕 Carrot sticks with hummus, apple slices",
		Rationale: "Support rising estrogen with fiber and fermented foods.",
	},
	domain.PhaseOvulation: {
		Breakfast: "🥑 Avocado toast with poached egg and tomato",
		Lunch:     "🌯 Whole grain wrap with grilled veggies and chickpeas",
		Dinner:    "🍗 Herb-roasted chicken with quinoa and asparagus",
		Snacks:    "🍊 Orange slices, bell pepper strips, mixed nuts",
		Rationale: "Balance peak estrogen. Antioxidants support detoxification.",
	},
	domain.PhaseLuteal: {
		Breakfast: "🥞 Oatmeal with banana, cinnamon, and walnuts",
		Lunch:     "🍠 Sweet potato and black bean bowl with brown rice",
		Dinner:    "🍝 Whole wheat pasta with lentil bolognese",
		Snacks:    "🍌 Banana with almond butter, yogurt with honey",
		Rationale: "Complex carbs stabilize blood sugar and serotonin.",
	},
}

// FallbackMeditation returns the pre-written meditation for phase.
func FallbackMeditation(phase domain.Phase) Meditation {
	m, ok := fallbackMeditations[phase]
	if !ok {
		m = fallbackMeditations[defaultPhase]
	}
	m.Source = SourceFallback
	return m
}

// FallbackMealPlan returns the pre-written meal plan for phase.
func FallbackMealPlan(phase domain.Phase) MealPlan {
	p, ok := fallbackMealPlans[phase]
	if !ok {
		p = fallbackMealPlans[defaultPhase]
	}
	p.Source = SourceFallback
	return p
}

// FallbackRemedy returns the generic self-care remedy. No symptom-specific
// remedies are stored.
func FallbackRemedy(symptom string) Remedy {
	return Remedy{
		Symptom:      symptom,
		Remedy:       "🌿 General wellness approach",
		Instructions: "Hydrate well, rest when needed, and consider gentle movement.",
		Rationale:    "Basic self-care supports overall wellbeing during hormonal changes.",
		Source:       SourceFallback,
	}
}
