package domain

// TheoryInfo describes a theory for listing and documentation.
type TheoryInfo struct {
	ID          TheoryID `json:"id"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
}

var theoryCatalog = map[TheoryID]TheoryInfo{
	TheorySetupPunchline: {
		ID:          TheorySetupPunchline,
		DisplayName: "Setup-Punchline",
		Description: "Structural autopsy of the joke: setup, twist, punchline",
	},
	TheoryIncongruity: {
		ID:          TheoryIncongruity,
		DisplayName: "Incongruity",
		Description: "Collision of two models of reality, e.g. technology versus emotion",
	},
	TheorySemanticShift: {
		ID:          TheorySemanticShift,
		DisplayName: "Semantic Shift",
		Description: "Change of a word's meaning or a metaphor taken literally",
	},
	TheoryTiming: {
		ID:          TheoryTiming,
		DisplayName: "Timing",
		Description: "Tempo, rhythm, pauses and register changes",
	},
	TheoryAbsurdEscalation: {
		ID:          TheoryAbsurdEscalation,
		DisplayName: "Absurd Escalation",
		Description: "Gradually increasing intensity of the absurd",
	},
	TheoryPsychoanalysis: {
		ID:          TheoryPsychoanalysis,
		DisplayName: "Narrative Psychoanalysis",
		Description: "Speaker's mental state: self-irony, despair, projection",
	},
	TheoryArchetype: {
		ID:          TheoryArchetype,
		DisplayName: "Archetype",
		Description: "Humor archetypes such as the cynic, the nihilist or the philosopher",
	},
	TheoryHumorAtoms: {
		ID:          TheoryHumorAtoms,
		DisplayName: "Humor Atoms",
		Description: "Micro-components: hyperbole, contrast, sarcasm and similar devices",
	},
	TheoryReverseEngineering: {
		ID:          TheoryReverseEngineering,
		DisplayName: "Reverse Engineering",
		Description: "Extraction of the reusable mechanism behind the joke",
	},
}

// ListTheories returns the nine theories in canonical order.
func ListTheories() []TheoryInfo {
	out := make([]TheoryInfo, 0, len(AllTheories))
	for _, id := range AllTheories {
		out = append(out, theoryCatalog[id])
	}
	return out
}

// DisplayName returns the human-readable name of id, or id itself when unknown.
func (id TheoryID) DisplayName() string {
	if info, ok := theoryCatalog[id]; ok {
		return info.DisplayName
	}
	return string(id)
}
