package scoring

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

// Feature vocabularies. Multi-word entries are listed before their first
// word so Find reports the longer phrase.
var (
	featureTech = text.NewLexicon(
		"api", "bug*", "git", "commit*", "merge*", "deploy*", "server*", "serwer*",
		"frontend*", "backend*", "fullstack", "database", "baza danych", "sql",
		"orm", "framework*", "library", "package", "npm", "composer", "pip",
		"docker", "kubernetes", "devops", "agile", "scrum",
	)
	featureEmotion = text.NewLexicon(
		"radoś*", "smut*", "złoś*", "strach*", "zaskocz*", "wstyd*", "szczęśli*",
		"szczęści*", "frustracj*", "ekscytacj*", "nud*", "ciekawoś*",
		"joy", "sad*", "anger", "fear", "shame",
	)
	regionalMarkers = text.NewLexicon(
		"janusz*", "grażyn*", "seba", "karyn*", "brajan*", "dżesik*",
		"polska", "polski", "polsce", "polak*", "warszaw*", "krak*", "śląsk*",
	)
	archetypeWords = text.NewLexicon(
		"bohater*", "antybohater*", "mentor*", "błazen", "błazna", "męczennik*",
		"buntownik*", "nieudacznik*", "geniusz*", "outsider*", "celebryt*",
		"hero", "jester", "genius", "loser",
	)
	tabooMarkers = text.NewLexicon(
		"śmier*", "seks*", "polityk*", "religi*", "narkotyk*", "alkohol*",
		"chorob*", "przemoc*", "dyskryminacj*",
		"death", "sex", "politic*", "religion", "drugs", "violence",
	)
	surpriseWords = text.NewLexicon(
		"okazuje się", "okazało się", "wcale nie", "w sumie", "nagle",
		"niespodziewanie", "ale", "jednak", "przecież", "wcale", "właściwie",
		"suddenly", "but", "turns out",
	)
	exaggerationWords = text.NewLexicon(
		"nigdy", "zawsze", "wszyscy", "nikt", "wszystko", "nic", "kompletnie",
		"totalnie", "absolutnie", "mega", "ultra",
		"never", "always", "everyone", "nobody", "everything", "nothing",
	)
	impossibilityMarkers = text.NewLexicon(
		"niemożliw*", "absurdaln*", "nierealn*", "fantastyczn*", "magiczn*",
		"cudown*", "niewiarygodn*", "impossible", "absurd*", "unbelievable",
	)
	soundWords = text.NewLexicon(
		"haha*", "hehe*", "hihi*", "hoho*", "apsik", "bum", "pif", "paf", "trach",
		"buch", "plask", "ups", "bang", "boom", "oops",
	)
	comparisonWords = text.NewLexicon("niż", "jak", "bardziej", "mniej", "than", "like", "more", "less")
	negationWords   = text.NewLexicon("nie", "nigdy", "wcale", "żaden", "żadna", "żadne", "not", "never")
	breakNegations  = text.NewLexicon("nie", "nigdy", "not", "never")
	contradictOpen  = text.NewLexicon("ale", "jednak", "but")
	firstPronouns   = text.NewLexicon("ja", "mnie", "mój", "moja", "me", "mine")
	thirdPronouns   = text.NewLexicon("on", "ona", "jego", "jej", "he", "she", "his", "her")
	pronouns        = text.NewLexicon(
		"ja", "ty", "on", "ona", "ono", "my", "wy", "oni", "one", "mnie", "ciebie",
		"jego", "jej", "nas", "was", "ich", "you", "he", "she", "we", "they",
	)
	positiveWords   = text.NewLexicon("dobrze", "super", "świetnie", "wspaniale", "good", "great")
	negativeWords   = text.NewLexicon("źle", "słabo", "kiepsko", "fatalnie", "bad", "awful")
	conflictWords   = text.NewLexicon("ale", "jednak", "niestety", "problem*", "but", "unfortunately")
	resolutionWords = text.NewLexicon("w końcu", "okazało się", "więc", "dlatego", "so", "finally")
	englishMarkers  = text.NewLexicon(
		"the", "an", "is", "are", "were", "and", "you", "it", "of", "in", "why",
		"what", "does", "has", "have",
	)
)

const (
	maxRepetitions    = 5
	maxWordplay       = 5
	maxCharacters     = 10
	wordsPerMinute    = 200
	rhythmNormalizer  = 100
	contradictWindow  = 5
	wordplayPrefix    = 3
	minCapsWordLength = 2
	emojiFloor        = 0x1F300
)

// ExtractFeatures collects the raw humor signals of doc. It never scores:
// every value is a count, a flag or a list of the matched words.
func ExtractFeatures(doc *text.Document) domain.HumorFeatures {
	tokens := doc.Tokens
	lengths := sentenceWordCounts(doc)
	return domain.HumorFeatures{
		JokeText:   doc.Raw,
		Language:   detectLanguage(tokens),
		CharCount:  doc.Len(),
		WordCount:  len(tokens),
		Structural: structuralFeatures(doc, lengths),
		Keywords: domain.KeywordFeatures{
			TechWords:       featureTech.Find(tokens),
			EmotionWords:    featureEmotion.Find(tokens),
			RegionalMarkers: regionalMarkers.Find(tokens),
			Archetypes:      archetypeWords.Find(tokens),
			TabooMarkers:    tabooMarkers.Find(tokens),
			SurpriseWords:   surpriseWords.Find(tokens),
		},
		Linguistic: domain.LinguisticFeatures{
			ComparisonsCount:  len(comparisonWords.Find(tokens)),
			NegationsCount:    len(negationWords.Find(tokens)),
			QuestionsCount:    doc.CountMarks("?"),
			ExclamationsCount: doc.CountMarks("!"),
		},
		Atomic:    atomicFeatures(doc),
		Semantic:  semanticFeatures(tokens),
		Timing:    timingFeatures(doc, lengths),
		Narrative: narrativeFeatures(tokens),
		Absurdity: absurdityFeatures(doc),
	}
}

// sentenceWordCounts returns the length of every sentence in words.
func sentenceWordCounts(doc *text.Document) []int {
	out := make([]int, len(doc.Sentences))
	for i, s := range doc.Sentences {
		out[i] = len(s.Tokens)
	}
	return out
}

// variance is the population variance of xs, zero for fewer than two values.
func variance(xs []int) float64 {
	if len(xs) < 2 {
		return 0
	}
	_, sd := meanStdDev(xs)
	return sd * sd
}

func structuralFeatures(doc *text.Document, lengths []int) domain.StructuralFeatures {
	f := domain.StructuralFeatures{
		SentenceCount:     len(lengths),
		HasQuestion:       doc.HasMark("?"),
		SentenceLengths:   lengths,
		LengthVariance:    domain.Round1(variance(lengths)),
		HasClearPunchline: len(lengths) >= 2,
	}
	if len(lengths) == 0 {
		return f
	}
	mean, _ := meanStdDev(lengths)
	f.AvgSentenceLength = domain.Round1(mean)
	f.PunchlineLength = lengths[len(lengths)-1]
	for _, n := range lengths[:len(lengths)-1] {
		f.SetupLength += n
	}
	return f
}

func atomicFeatures(doc *text.Document) domain.AtomicFeatures {
	f := domain.AtomicFeatures{
		ExclamationCount: doc.CountMarks("!"),
		Repetitions:      repeatedTokens(doc.Tokens, maxRepetitions),
		SoundWords:       soundWords.Find(doc.Tokens),
		Hyperboles:       exaggerationWords.Find(doc.Tokens),
	}
	for _, r := range doc.Raw {
		if r >= emojiFloor {
			f.EmojiCount++
		}
	}
	for _, w := range strings.Fields(doc.Raw) {
		if isCapsWord(w) {
			f.CapsWordsCount++
		}
	}
	return f
}

// isCapsWord reports a shouted word: at least two letters, none lower-case.
func isCapsWord(w string) bool {
	letters := 0
	for _, r := range w {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsLower(r) {
			return false
		}
		letters++
	}
	return letters >= minCapsWordLength
}

// repeatedTokens returns tokens seen more than once, in order of first
// appearance, at most limit of them.
func repeatedTokens(tokens []string, limit int) []string {
	seen := map[string]int{}
	for _, t := range tokens {
		seen[t]++
	}
	out := []string{}
	for _, t := range tokens {
		if len(out) == limit {
			break
		}
		if seen[t] > 1 {
			out = append(out, t)
			seen[t] = 0
		}
	}
	return out
}

func semanticFeatures(tokens []string) domain.SemanticFeatures {
	f := domain.SemanticFeatures{
		PolysemyWords:      distinct(ambiguousWords.Find(tokens)),
		Metaphors:          distinct(metaphorMarkers.Find(tokens)),
		WordplayCandidates: wordplayCandidates(tokens, maxWordplay),
		SemanticFields:     []string{},
	}
	if techTerms.Any(tokens) {
		f.SemanticFields = append(f.SemanticFields, "technologia")
	}
	if emotionTerms.Any(tokens) {
		f.SemanticFields = append(f.SemanticFields, "emocje")
	}
	return f
}

func distinct(xs []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// wordplayCandidates pairs distinct words longer than three letters that
// start with the same three letters.
func wordplayCandidates(tokens []string, limit int) []string {
	out := []string{}
	for i, a := range tokens {
		if utf8.RuneCountInString(a) <= wordplayPrefix {
			continue
		}
		for _, b := range tokens[i+1:] {
			if utf8.RuneCountInString(b) <= wordplayPrefix || a == b {
				continue
			}
			if string([]rune(a)[:wordplayPrefix]) != string([]rune(b)[:wordplayPrefix]) {
				continue
			}
			out = append(out, a+"/"+b)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

func timingFeatures(doc *text.Document, lengths []int) domain.TimingFeatures {
	words := len(doc.Tokens)
	f := domain.TimingFeatures{
		WordCount:       words,
		ReadingTimeSec:  domain.Round1(float64(words) / wordsPerMinute * 60),
		PauseIndicators: doc.CountMarks(",", ".", ";", ":"),
	}
	for _, t := range doc.Tokens {
		f.SyllableCount += syllables(t)
	}
	if len(lengths) > 1 {
		f.RhythmScore = math.Round(min(1, variance(lengths)/rhythmNormalizer)*100) / 100
	}
	return f
}

// syllables counts vowel groups, with a floor of one for any word.
func syllables(word string) int {
	n := 0
	inVowel := false
	for _, r := range word {
		v := strings.ContainsRune("aeiouyąęó", r)
		if v && !inVowel {
			n++
		}
		inVowel = v
	}
	return max(n, 1)
}

func narrativeFeatures(tokens []string) domain.NarrativeFeatures {
	f := domain.NarrativeFeatures{
		Perspective:       domain.PerspectiveNeutral,
		EmotionalArc:      domain.ArcNeutral,
		ConflictPresent:   conflictWords.Any(tokens),
		ResolutionPresent: resolutionWords.Any(tokens),
		CharacterCount:    min(len(pronouns.Matches(tokens)), maxCharacters),
	}
	switch first, third := firstPronouns.Count(tokens), thirdPronouns.Count(tokens); {
	case first > third:
		f.Perspective = domain.PerspectiveFirst
	case third > first:
		f.Perspective = domain.PerspectiveThird
	}
	switch pos, neg := positiveWords.Count(tokens), negativeWords.Count(tokens); {
	case pos > neg:
		f.EmotionalArc = domain.ArcPositive
	case neg > pos:
		f.EmotionalArc = domain.ArcNegative
	}
	return f
}

func absurdityFeatures(doc *text.Document) domain.AbsurdityFeatures {
	tokens := doc.Tokens
	contradictions := 0
	for i := range tokens {
		if !contradictOpen.Any(tokens[i : i+1]) {
			continue
		}
		if breakNegations.Any(tokens[i+1 : min(i+contradictWindow, len(tokens))]) {
			contradictions++
		}
	}
	return domain.AbsurdityFeatures{
		ContradictionCount:   contradictions,
		ImpossibilityMarkers: impossibilityMarkers.Find(tokens),
		ExaggerationWords:    exaggerationWords.Find(tokens),
		LogicalBreaks:        doc.CountMarks("?") + breakNegations.Count(tokens) + contradictions,
	}
}

// detectLanguage tells English from Polish by function words. Polish is the
// default.
func detectLanguage(tokens []string) string {
	if len(tokens) > 0 && englishMarkers.Count(tokens)*4 >= len(tokens) {
		return "en"
	}
	return "pl"
}
