package scoring

import (
	"fmt"
	"strings"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/text"
)

type archetype struct {
	name  string
	base  float64
	words text.Lexicon
}

var universalArchetypes = []archetype{
	{"trickster", 7, text.NewLexicon("podstęp*", "sprytn*", "oszuk*", "kombin*", "przechytrz*", "trick*", "hack*")},
	{"cynic", 8, text.NewLexicon("oczywiście", "jasne", "jak zwykle", "typowe", "typowo", "naturalnie", "bo czemu nie", "brawo")},
	{"jester", 6, text.NewLexicon("haha", "hehe", "xd", "żart*", "śmieszn*", "wygłup*", "zabaw*")},
	{"philosopher", 7.5, text.NewLexicon("sens", "sensu", "istnieni*", "byt", "egzystencj*", "dlaczego", "świadomoś*", "rzeczywistoś*")},
	{"victim", 7, text.NewLexicon("znowu", "zawsze mnie", "dlaczego ja", "czemu ja", "pech*", "nic mi nie")},
	{"nihilist", 9, text.NewLexicon("nic nie ma sensu", "bez sensu", "nicoś*", "pustk*", "śmier*", "wszystko jedno", "nie ma znaczenia", "po co", "umier*")},
	{"rebel", 7.5, text.NewLexicon("nie będę", "nie chcę", "bunt*", "zasad*", "przeciw*", "dość")},
}

// culturalArchetypes are recognizable Polish characters.
var culturalArchetypes = []archetype{
	{"wujek_ze_slaska", 3, text.NewLexicon("wuj*", "śląsk*", "ślązak*", "hasiok*", "gryfn*")},
	{"tesciowa", 3, text.NewLexicon("teściow*")},
	{"janusz", 3, text.NewLexicon("janusz*", "grażyn*", "działk*", "majsterkow*", "sandał*")},
	{"student", 3, text.NewLexicon("student*", "sesj*", "egzamin*", "kolokwi*", "akademik*", "stypendi*")},
}

// personaArchetypes lists the archetypes each known persona is written for.
var personaArchetypes = map[string][]string{
	"waldus":  {"nihilist", "cynic"},
	"cynik":   {"cynic"},
	"janusz":  {"janusz"},
	"wujek":   {"wujek_ze_slaska"},
	"student": {"student"},
}

// KnownPersonas returns the persona names that influence archetype scoring.
func KnownPersonas() []string {
	return []string{"cynik", "janusz", "student", "waldus", "wujek"}
}

// ScoreArchetype matches universal and cultural character archetypes. A
// single clear archetype is rewarded, a crowd of them is not. The persona
// context key, when present, must be a string.
func ScoreArchetype(doc *text.Document, ctx map[string]any) (domain.TheoryScore, error) {
	persona, err := personaFrom(ctx)
	if err != nil {
		return domain.TheoryScore{}, err
	}

	var t tally
	tokens := doc.Tokens
	detected := map[string]bool{}

	var universal []string
	for _, a := range universalArchetypes {
		if a.words.Any(tokens) {
			t.add(a.base*0.5, "archetype:"+a.name, "")
			universal = append(universal, a.name)
			detected[a.name] = true
		}
	}
	if len(universal) > 0 {
		t.notes = append(t.notes, "archetypes: "+strings.Join(universal, ", "))
	}

	hasTech := techTerms.Any(tokens)
	cultural := 0
	for _, a := range culturalArchetypes {
		m := a.words.Matches(tokens)
		if len(m) == 0 {
			continue
		}
		cultural++
		detected[a.name] = true
		t.add(a.base, "cultural:"+a.name, fmt.Sprintf("cultural archetype %s", a.name))
		if len(m) >= 2 {
			t.add(1, "", "")
		}
	}
	if cultural > 0 && hasTech {
		t.add(1.5, "cultural_meets_tech", "cultural character confronted with technology")
	}

	if detected["nihilist"] && hasTech {
		t.add(2, "tech_nihilism", "nihilism about technology")
	}

	if persona != "" {
		for _, name := range personaArchetypes[persona] {
			if detected[name] {
				t.add(1, "persona_fit:"+persona, "fits the "+persona+" persona")
				break
			}
		}
	}

	switch n := len(universal); {
	case n == 1:
		t.add(1, "", "one consistent archetype")
	case n >= 3:
		t.add(-0.5, "", "too many archetypes blur the character")
	}

	return t.finish("no recognizable archetype"), nil
}

func personaFrom(ctx map[string]any) (string, error) {
	v, ok := ctx[domain.ContextPersona]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("context %q must be a string, got %T", domain.ContextPersona, v)
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}
