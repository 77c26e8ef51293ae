package llm

import (
	"fmt"
	"strings"

	"github.com/humorlab/humorlab/internal/domain"
)

const systemPrompt = "You are a humor analysis expert. Always answer with a single JSON object and nothing else."

// focus describes what the model should look at for each theory.
var focus = map[domain.TheoryID]string{
	domain.TheorySetupPunchline:     "the setup-punchline structure: a clear setup that builds an expectation and a short punchline that overturns it",
	domain.TheoryIncongruity:        "incongruity: collisions between incompatible domains, registers or expectations (e.g. technology versus human emotion)",
	domain.TheorySemanticShift:      "semantic shift: ambiguous words, metaphors taken literally, and reinterpretation of a phrase's meaning",
	domain.TheoryTiming:             "comic timing: sentence rhythm, pauses before the punchline, and how short the final beat is",
	domain.TheoryAbsurdEscalation:   "absurd escalation: hyperbole and an escalating chain of increasingly absurd claims",
	domain.TheoryPsychoanalysis:     "narrative psychoanalysis: the speaker's emotions, defense mechanisms, frustration and self-irony",
	domain.TheoryArchetype:          "character archetypes: recognizable cultural figures (e.g. the cynic, the uncle, the corporate drone) and how well they are used",
	domain.TheoryHumorAtoms:         "humor atoms: the density of small humor devices such as exaggeration, wordplay, repetition and callbacks",
	domain.TheoryReverseEngineering: "reverse engineering: which joke template the text follows and how reusable or formulaic it is",
}

// BuildPrompt renders the user prompt that asks for a single theory score.
func BuildPrompt(theory domain.TheoryID, joke string) (string, error) {
	f, ok := focus[theory]
	if !ok {
		return "", fmt.Errorf("no prompt for theory %q", theory)
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Analyze the joke below through the lens of %s.\n", f)
	b.WriteString("The joke may be written in Polish or English.\n\n")
	fmt.Fprintf(&b, "JOKE:\n%s\n\n", joke)
	b.WriteString("Respond with JSON using exactly these keys:\n")
	b.WriteString(`{"score": <number 0-10>, "explanation": "<one sentence>", "key_elements": ["<up to 5 short labels>"]}`)
	b.WriteString("\n")
	return b.String(), nil
}
