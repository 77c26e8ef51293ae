package tui

import (
	"fmt"
	"strings"

	"github.com/humorlab/humorlab/internal/domain"
)

// RenderFeatures formats extracted humor features grouped by category.
func RenderFeatures(f *domain.HumorFeatures) string {
	var b strings.Builder
	b.WriteString("\n" + boxStyle.Render(headerStyle.Render("humorlab features")+"\n\n"+
		dimStyle.Render(truncate(f.JokeText, 56))) + "\n")

	section := func(title string, rows [][2]string) {
		b.WriteString("\n  " + sectionHeaderStyle.Render(title) + "\n")
		for _, r := range rows {
			fmt.Fprintf(&b, "  %s %s\n", nameStyle.Render(padRight(r[0], 22)), r[1])
		}
	}

	section("Text", [][2]string{
		{"Language", f.Language},
		{"Characters", fmt.Sprint(f.CharCount)},
		{"Words", fmt.Sprint(f.WordCount)},
	})
	s := f.Structural
	section("Structure", [][2]string{
		{"Sentences", fmt.Sprintf("%d %v", s.SentenceCount, s.SentenceLengths)},
		{"Setup / punchline", fmt.Sprintf("%d / %d words", s.SetupLength, s.PunchlineLength)},
		{"Length variance", fmt.Sprintf("%.1f", s.LengthVariance)},
		{"Question", yesNo(s.HasQuestion)},
	})
	k := f.Keywords
	section("Keywords", [][2]string{
		{"Tech", list(k.TechWords)},
		{"Emotion", list(k.EmotionWords)},
		{"Regional", list(k.RegionalMarkers)},
		{"Archetypes", list(k.Archetypes)},
		{"Taboo", list(k.TabooMarkers)},
		{"Surprise", list(k.SurpriseWords)},
	})
	a := f.Atomic
	section("Atoms", [][2]string{
		{"Emoji / caps / !", fmt.Sprintf("%d / %d / %d", a.EmojiCount, a.CapsWordsCount, a.ExclamationCount)},
		{"Repetitions", list(a.Repetitions)},
		{"Sound words", list(a.SoundWords)},
		{"Hyperboles", list(a.Hyperboles)},
	})
	m := f.Semantic
	section("Semantics", [][2]string{
		{"Polysemy", list(m.PolysemyWords)},
		{"Metaphors", list(m.Metaphors)},
		{"Wordplay", list(m.WordplayCandidates)},
		{"Fields", list(m.SemanticFields)},
	})
	t := f.Timing
	section("Timing", [][2]string{
		{"Syllables", fmt.Sprint(t.SyllableCount)},
		{"Reading time", fmt.Sprintf("%.1fs", t.ReadingTimeSec)},
		{"Rhythm", fmt.Sprintf("%.2f", t.RhythmScore)},
		{"Pauses", fmt.Sprint(t.PauseIndicators)},
	})
	n := f.Narrative
	section("Narrative", [][2]string{
		{"Perspective", n.Perspective},
		{"Emotional arc", n.EmotionalArc},
		{"Conflict / resolution", yesNo(n.ConflictPresent) + " / " + yesNo(n.ResolutionPresent)},
		{"Characters", fmt.Sprint(n.CharacterCount)},
	})
	x := f.Absurdity
	section("Absurdity", [][2]string{
		{"Contradictions", fmt.Sprint(x.ContradictionCount)},
		{"Impossibilities", list(x.ImpossibilityMarkers)},
		{"Exaggerations", list(x.ExaggerationWords)},
		{"Logical breaks", fmt.Sprint(x.LogicalBreaks)},
	})
	return b.String()
}

func list(words []string) string {
	if len(words) == 0 {
		return faintStyle.Render("none")
	}
	return strings.Join(words, ", ")
}

func yesNo(v bool) string {
	if v {
		return passStyle.Render("yes")
	}
	return dimStyle.Render("no")
}
