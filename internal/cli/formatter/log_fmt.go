package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/domain"
)

// FormatSymptomLog renders the symptom log, newest entry first.
func FormatSymptomLog(entries []domain.SymptomEntry) string {
	if len(entries) == 0 {
		return Dim("No entries yet. Log today with: mooncyc log add") + "\n"
	}

	headers := []string{"ID", "DATE", "PHASE", "MOOD", "ENERGY", "SYMPTOMS", "NOTES"}
	rows := make([][]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		phase := Dim("--")
		if e.Phase != nil {
			phase = PhaseBadge(*e.Phase)
		}
		symptoms := strings.Join(e.Symptoms, ", ")
		if symptoms == "" {
			symptoms = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			e.Date.Format(domain.DateLayout),
			phase,
			e.Mood.Label(),
			fmt.Sprintf("%d/%d", e.Energy, domain.MaxEnergy),
			symptoms,
			truncate(e.Notes, 32),
		})
	}
	return RenderTable(headers, rows)
}

// FormatEntryLogged confirms a new log entry.
func FormatEntryLogged(e *domain.SymptomEntry) string {
	phase := ""
	if e.Phase != nil {
		phase = " " + PhaseBadge(*e.Phase)
	}
	return fmt.Sprintf("%s %s%s %s\n",
		StyleSage.Render("✔ Logged"),
		Bold(e.Date.Format(domain.DateLayout)),
		phase,
		TruncID(e.ID))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
