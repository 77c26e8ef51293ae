package domain

// HumorFeatures are the raw signals found in a joke, without any scoring.
// Every list is non-nil so the JSON form always carries arrays.
type HumorFeatures struct {
	JokeText   string             `json:"joke_text"`
	Language   string             `json:"language"`
	CharCount  int                `json:"char_count"`
	WordCount  int                `json:"word_count"`
	Structural StructuralFeatures `json:"structural"`
	Keywords   KeywordFeatures    `json:"keywords"`
	Linguistic LinguisticFeatures `json:"linguistic"`
	Atomic     AtomicFeatures     `json:"atomic"`
	Semantic   SemanticFeatures   `json:"semantic"`
	Timing     TimingFeatures     `json:"timing"`
	Narrative  NarrativeFeatures  `json:"narrative"`
	Absurdity  AbsurdityFeatures  `json:"absurdity"`
}

// StructuralFeatures describe the setup-punchline shape. Lengths are in words.
type StructuralFeatures struct {
	SentenceCount     int     `json:"sentence_count"`
	HasQuestion       bool    `json:"has_question"`
	SentenceLengths   []int   `json:"sentence_lengths"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	LengthVariance    float64 `json:"length_variance"`
	HasClearPunchline bool    `json:"has_clear_punchline"`
	SetupLength       int     `json:"setup_length"`
	PunchlineLength   int     `json:"punchline_length"`
}

type KeywordFeatures struct {
	TechWords       []string `json:"tech_words"`
	EmotionWords    []string `json:"emotion_words"`
	RegionalMarkers []string `json:"regional_markers"`
	Archetypes      []string `json:"archetypes"`
	TabooMarkers    []string `json:"taboo_markers"`
	SurpriseWords   []string `json:"surprise_words"`
}

type LinguisticFeatures struct {
	ComparisonsCount  int `json:"comparisons_count"`
	NegationsCount    int `json:"negations_count"`
	QuestionsCount    int `json:"questions_count"`
	ExclamationsCount int `json:"exclamations_count"`
}

type AtomicFeatures struct {
	EmojiCount       int      `json:"emoji_count"`
	ExclamationCount int      `json:"exclamation_count"`
	CapsWordsCount   int      `json:"caps_words_count"`
	Repetitions      []string `json:"repetitions"`
	SoundWords       []string `json:"sound_words"`
	Hyperboles       []string `json:"hyperboles"`
}

type SemanticFeatures struct {
	PolysemyWords      []string `json:"polysemy_words"`
	Metaphors          []string `json:"metaphors"`
	WordplayCandidates []string `json:"wordplay_candidates"`
	SemanticFields     []string `json:"semantic_fields"`
}

type TimingFeatures struct {
	WordCount       int     `json:"word_count"`
	SyllableCount   int     `json:"syllable_count"`
	ReadingTimeSec  float64 `json:"reading_time_sec"`
	RhythmScore     float64 `json:"rhythm_score"`
	PauseIndicators int     `json:"pause_indicators"`
}

// Narrative perspectives and emotional arcs.
const (
	PerspectiveFirst   = "1st person"
	PerspectiveThird   = "3rd person"
	PerspectiveNeutral = "neutral"

	ArcPositive = "positive"
	ArcNegative = "negative"
	ArcNeutral  = "neutral"
)

type NarrativeFeatures struct {
	Perspective       string `json:"narrative_perspective"`
	EmotionalArc      string `json:"emotional_arc"`
	ConflictPresent   bool   `json:"conflict_present"`
	ResolutionPresent bool   `json:"resolution_present"`
	CharacterCount    int    `json:"character_count"`
}

type AbsurdityFeatures struct {
	ContradictionCount   int      `json:"contradiction_count"`
	ImpossibilityMarkers []string `json:"impossibility_markers"`
	ExaggerationWords    []string `json:"exaggeration_words"`
	LogicalBreaks        int      `json:"logical_breaks"`
}
