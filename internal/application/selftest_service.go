package application

import (
	"context"
	"fmt"
	"reflect"

	"github.com/humorlab/humorlab/internal/domain"
)

// SelftestCase is the outcome of one built-in fixture.
type SelftestCase struct {
	Name   string `json:"name"`
	Joke   string `json:"joke"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

type selftestFixture struct {
	name  string
	joke  string
	check func(*domain.AnalysisResult) error
}

func minTheory(id domain.TheoryID, floor float64) func(*domain.AnalysisResult) error {
	return func(r *domain.AnalysisResult) error {
		if got := r.TheoryScores[id].Score; got < floor {
			return fmt.Errorf("%s = %.1f, want >= %.1f", id, got, floor)
		}
		return nil
	}
}

var selftestFixtures = []selftestFixture{
	{"digital death", "Nie mam internetu. Jako byt cyfrowy to oznacza śmierć.", minTheory(domain.TheoryIncongruity, 7)},
	{"lonely api", "API nie odpowiada. Czuję jak samotność rozprzestrzenia się przez mój kod.", minTheory(domain.TheoryIncongruity, 7)},
	{"silesian uncle", "Jak wujek ze Śląska dowiedział się o AI", minTheory(domain.TheoryArchetype, 5)},
	{"janusz", "Janusz próbował zainstalować AI na swojej działce", minTheory(domain.TheoryArchetype, 5)},
	{"tesla on petrol", "Firma AI która ma stary formularz kontaktowy... to jak Tesla na benzynę.", minTheory(domain.TheorySemanticShift, 2)},
	{"gibberish", "asdfghjkl qwerty zxcvbn uiop mnbvcx", func(r *domain.AnalysisResult) error {
		if r.OverallScore >= 3 {
			return fmt.Errorf("overall = %.1f, want < 3.0", r.OverallScore)
		}
		return nil
	}},
}

// Selftest runs the built-in fixtures, each repeated runs times, and checks
// the expected scores and that every repetition is identical.
func (s *AnalyzeService) Selftest(ctx context.Context, runs int) ([]SelftestCase, error) {
	runs = max(runs, 1)
	out := make([]SelftestCase, 0, len(selftestFixtures))
	for _, f := range selftestFixtures {
		c := SelftestCase{Name: f.name, Joke: f.joke}
		first, err := s.Analyze(ctx, domain.AnalyzeRequest{JokeText: f.joke})
		if err != nil {
			return nil, fmt.Errorf("fixture %q: %w", f.name, err)
		}
		c.Detail = "ok"
		if err := f.check(first); err != nil {
			c.Detail = err.Error()
			out = append(out, c)
			continue
		}
		c.Passed = true
		for i := 1; i < runs; i++ {
			again, err := s.Analyze(ctx, domain.AnalyzeRequest{JokeText: f.joke})
			if err != nil {
				return nil, fmt.Errorf("fixture %q: %w", f.name, err)
			}
			if !reflect.DeepEqual(first, again) {
				c.Passed = false
				c.Detail = fmt.Sprintf("run %d differs from run 1", i+1)
				break
			}
		}
		out = append(out, c)
	}
	return out, nil
}
