package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/cycle"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

// loadBarWidth is the number of cells drawn for a day exactly at the limit.
const loadBarWidth = 24

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// RenderLoadChart draws one horizontal bar per day of the schedule with the
// healthy limit marked as a vertical rule.
func RenderLoadChart(s scheduler.Schedule) string {
	var b strings.Builder
	for _, day := range s.Days {
		bar := RenderLoadBar(day.TotalHours, s.HealthyLimit, loadBarWidth)
		visible := lipgloss.Width(bar)
		if visible < loadBarWidth {
			bar += strings.Repeat(" ", loadBarWidth-visible) + Dim("│")
		}
		label := Dim(fmt.Sprintf("%-10s", ShortDate(day.Date)))
		total := FormatHours(day.TotalHours)
		if day.Overloaded {
			total = StyleOverload.Render(total + " ⚠")
		}
		fmt.Fprintf(&b, "%s %s %s\n", label, bar, total)
	}
	fmt.Fprintf(&b, "%s %s%s\n",
		strings.Repeat(" ", 10),
		strings.Repeat(" ", loadBarWidth),
		Dim("└ healthy limit "+FormatHours(s.HealthyLimit)))
	return b.String()
}

// Sparkline renders counts as a row of block characters scaled to peak.
// Zero counts are drawn as a dim dot.
func Sparkline(counts []int, peak int) string {
	if peak <= 0 {
		peak = 1
	}
	var b strings.Builder
	for _, c := range counts {
		if c <= 0 {
			b.WriteString(Dim("·"))
			continue
		}
		idx := (c*len(sparkLevels) - 1) / peak
		idx = min(idx, len(sparkLevels)-1)
		b.WriteString(StyleMauve.Render(string(sparkLevels[idx])))
	}
	return b.String()
}

// PhaseStrip renders one phase initial per cycle day 1..cycleLength.
func PhaseStrip(cycleLength, periodLength int) string {
	var b strings.Builder
	for day := 0; day < cycleLength; day++ {
		b.WriteString(PhaseInitial(cycle.PhaseForDay(day, periodLength)))
	}
	return b.String()
}

// RenderSymptomSeries draws a sparkline per symptom over the cycle days with
// the phase strip underneath, so peaks can be read against phases.
func RenderSymptomSeries(order []string, series map[string][]int, c domain.CycleModel) string {
	peak := 0
	labelWidth := len("phase")
	for _, name := range order {
		for _, n := range series[name] {
			peak = max(peak, n)
		}
		labelWidth = max(labelWidth, lipgloss.Width(name))
	}

	var b strings.Builder
	for _, name := range order {
		fmt.Fprintf(&b, "%-*s  %s\n", labelWidth, name, Sparkline(series[name], peak))
	}
	fmt.Fprintf(&b, "%s  %s\n", Dim(fmt.Sprintf("%-*s", labelWidth, "phase")), PhaseStrip(c.CycleLength, c.PeriodLength))
	fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", labelWidth), Dim(dayRuler(c.CycleLength)))
	return b.String()
}

// dayRuler marks day 1 and every seventh day after it.
func dayRuler(n int) string {
	cells := []rune(strings.Repeat(" ", n))
	for day := 1; day <= n; day += 7 {
		label := []rune(fmt.Sprint(day))
		for i, r := range label {
			if day-1+i < n {
				cells[day-1+i] = r
			}
		}
	}
	return string(cells)
}
