package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/guidance"
)

// FormatMeditation renders a meditation script.
func FormatMeditation(m guidance.Meditation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", Bold(m.Title), Dim("· "+m.Duration))
	b.WriteString(wrap(m.Script, 72))
	b.WriteString("\n\n")
	b.WriteString(SourceLine(m.Source, m.Model))
	return RenderBox("Meditation", b.String())
}

// FormatMealPlan renders a one-day meal plan.
func FormatMealPlan(p guidance.MealPlan) string {
	var b strings.Builder
	for _, row := range [][2]string{
		{"Breakfast", p.Breakfast},
		{"Lunch", p.Lunch},
		{"Dinner", p.Dinner},
		{"Snacks", p.Snacks},
	} {
		fmt.Fprintf(&b, "%s\n%s\n\n", StyleMauve.Render(row[0]), wrap(row[1], 72))
	}
	fmt.Fprintf(&b, "%s\n%s\n\n", Dim("Why"), Dim(wrap(p.Rationale, 72)))
	b.WriteString(SourceLine(p.Source, p.Model))
	return RenderBox("Meal plan", b.String())
}

// FormatRemedy renders a remedy suggestion for one symptom.
func FormatRemedy(r guidance.Remedy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Bold(r.Remedy))
	fmt.Fprintf(&b, "%s\n%s\n\n", StyleMauve.Render("How"), wrap(r.Instructions, 72))
	fmt.Fprintf(&b, "%s\n%s\n\n", Dim("Why"), Dim(wrap(r.Rationale, 72)))
	b.WriteString(SourceLine(r.Source, r.Model))
	return RenderBox(r.Symptom, b.String())
}

// FormatRemedies renders one remedy box per symptom.
func FormatRemedies(rs []guidance.Remedy) string {
	if len(rs) == 0 {
		return Dim("No symptoms logged yet. Log some with: mooncyc log add") + "\n"
	}
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = FormatRemedy(r)
	}
	return strings.Join(parts, "\n") + "\n"
}
