package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/contract"
	"github.com/alexanderramin/mooncyc/internal/domain"
)

// FormatPatterns renders the most reported symptoms and where in the cycle
// they occur.
func FormatPatterns(v *contract.PatternsView, c domain.CycleModel) string {
	var b strings.Builder
	b.WriteString(Header("Symptom patterns"))
	b.WriteString("\n")

	if v.Empty() {
		b.WriteString(Dim("Not enough data yet. Log symptoms with: mooncyc log add"))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n\n", Dim(fmt.Sprintf("%d entries over a %d-day cycle", v.EntryCount, v.CycleLength)))

	order := make([]string, len(v.Top))
	for i, s := range v.Top {
		order[i] = s.Symptom
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, Bold(s.Symptom), Dim(fmt.Sprintf("×%d", s.Count)))
	}
	b.WriteString("\n")
	b.WriteString(RenderSymptomSeries(order, v.Series, c))

	if len(v.Tracked) > len(v.Top) {
		fmt.Fprintf(&b, "\n%s %s\n", Dim("Also tracked:"), strings.Join(v.Tracked, ", "))
	}
	return b.String()
}
