package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderEnergy renders an energy level on the 1..5 scale as a meter like
// [███░░] 3/5. Low levels are drawn in rose, high levels in sage.
func RenderEnergy(level int) string {
	level = min(max(level, 0), domain.MaxEnergy)

	bar := strings.Repeat(filledBlock, level) + strings.Repeat(emptyBlock, domain.MaxEnergy-level)

	style := StyleSage
	switch {
	case level <= 2:
		style = StyleRose
	case level == 3:
		style = StyleHoney
	}

	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), level, domain.MaxEnergy)
}

// RenderLoadBar renders hours against a healthy daily limit with width cells
// per limit. Bars over the limit are drawn in the overload color.
func RenderLoadBar(hours, limit float64, width int) string {
	if width < 1 || limit <= 0 {
		return ""
	}
	cells := int(hours/limit*float64(width) + 0.5)
	if hours > 0 && cells == 0 {
		cells = 1
	}
	if cells == 0 {
		return ""
	}
	bar := strings.Repeat(filledBlock, cells)
	if hours > limit {
		return StyleOverload.Render(bar)
	}
	return StyleMauve.Render(bar)
}
