package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/humorlab/humorlab/internal/application"
)

var sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

// RenderOpinions renders heuristic and prompt-based scores side by side.
func RenderOpinions(opinions []application.Opinion) string {
	var b strings.Builder
	b.WriteString("\n  " + sectionHeaderStyle.Render("Second Opinion") + "\n\n")
	for _, op := range opinions {
		delta := fmt.Sprintf("%+.1f", op.Delta)
		switch {
		case op.Delta > 0:
			delta = passStyle.Render(delta)
		case op.Delta < 0:
			delta = failStyle.Render(delta)
		default:
			delta = dimStyle.Render(delta)
		}
		fmt.Fprintf(&b, "  %s %4.1f → %4.1f  %s\n",
			nameStyle.Render(padRight(op.Theory.DisplayName(), 26)),
			op.Heuristic.Score, op.LLM.Score, delta)
		if op.LLM.Explanation != "" {
			fmt.Fprintf(&b, "      %s\n", faintStyle.Render(op.LLM.Explanation))
		}
	}
	b.WriteString("\n  " + hintStyle.Render("Prompt-based scores are not deterministic.") + "\n")
	return b.String()
}

// RenderSelftest renders the built-in validation suite outcome.
func RenderSelftest(cases []application.SelftestCase) string {
	var b strings.Builder
	b.WriteString("\n  " + sectionHeaderStyle.Render("Validation Suite") + "\n\n")
	passed := 0
	for _, c := range cases {
		icon := failStyle.Render("✗")
		if c.Passed {
			icon = passStyle.Render("✓")
			passed++
		}
		fmt.Fprintf(&b, "  %s %s %s\n", icon, nameStyle.Render(padRight(c.Name, 20)), dimStyle.Render(c.Detail))
	}
	fmt.Fprintf(&b, "\n  %d/%d passed\n", passed, len(cases))
	return b.String()
}
