package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/humorlab/humorlab/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	lime    = lipgloss.Color("#A3E635")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lime,
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dominantStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func RenderAnalysis(result *domain.AnalysisResult) string {
	var b strings.Builder

	// ── Header ──
	grade := result.Grade()
	title := headerStyle.Render("humorlab")
	joke := dimStyle.Render(truncate(result.JokeText, 56))
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%.1f / 10", result.OverallScore))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + joke + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Theories ──
	for _, id := range domain.AllTheories {
		ts, ok := result.TheoryScores[id]
		if !ok {
			continue
		}
		renderTheory(&b, id, ts, id == result.DominantTheory)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Goals ──
	fmt.Fprintf(&b, "  %s %s  %s\n", nameStyle.Render(padRight("Reach", 20)), coloredBar(result.ReachEstimate, 20), goalText(result.ReachEstimate))
	fmt.Fprintf(&b, "  %s %s  %s\n", nameStyle.Render(padRight("Monetization", 20)), coloredBar(result.MonetizationScore, 20), goalText(result.MonetizationScore))
	fmt.Fprintf(&b, "  %s %s  %s\n", nameStyle.Render(padRight("Viral", 20)), coloredBar(result.ViralScore, 20), goalText(result.ViralScore))
	b.WriteString("\n")

	b.WriteString("  " + titleStyle.Render("Audience") + "  " + dimStyle.Render(strings.Join(result.TargetSegments, ", ")) + "\n")

	// ── Recommendations ──
	if len(result.RecommendedImprovements) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Improvements") + "\n\n")
		for _, rec := range result.RecommendedImprovements {
			fmt.Fprintf(&b, "    %s %s\n", dimStyle.Render("→"), rec)
		}
	} else {
		b.WriteString("\n  " + passStyle.Render("No improvements suggested.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderTheory(b *strings.Builder, id domain.TheoryID, ts domain.TheoryScore, dominant bool) {
	pct := int(ts.Score * 10)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(pct)).Render(fmt.Sprintf("%4.1f", ts.Score))
	name := nameStyle.Render(padRight(id.DisplayName(), 26))
	marker := " "
	if dominant {
		marker = dominantStyle.Render("★")
	}
	fmt.Fprintf(b, "  %s %s %s  %s\n", marker, name, coloredBar(pct, 20), scoreText)
	if ts.Explanation != "" {
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(ts.Explanation))
	}
}

// RenderTheories lists the theory catalog.
func RenderTheories(theories []domain.TheoryInfo) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Humor Theories") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")
	for _, t := range theories {
		fmt.Fprintf(&b, "  %s %s\n", nameStyle.Render(padRight(t.DisplayName, 26)), faintStyle.Render(string(t.ID)))
		fmt.Fprintf(&b, "      %s\n", dimStyle.Render(t.Description))
	}
	return b.String()
}

func goalText(score int) string {
	return lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%d/100", score))
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width-1]) + "…"
}

// RenderHistory formats analysis history for terminal output.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No analysis history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Analysis History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(int(e.OverallScore * 10))).
			Render(fmt.Sprintf("%4.1f/10", e.OverallScore))

		line := fmt.Sprintf("  %s  %s  %-2s  %s",
			dimStyle.Render(date),
			scoreStyled,
			e.Grade,
			faintStyle.Render(truncate(e.JokeText, 40)),
		)

		if i > 0 {
			diff := domain.Round1(e.OverallScore - entries[i-1].OverallScore)
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.1f", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%.1f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}
