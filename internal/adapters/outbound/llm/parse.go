package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/humorlab/humorlab/internal/domain"
)

const maxKeyElements = 5

var errNoJSON = errors.New("no JSON object in response")

type promptResponse struct {
	Score       *float64 `json:"score"`
	Explanation string   `json:"explanation"`
	KeyElements []string `json:"key_elements"`
}

// ParseResponse extracts the first JSON object from a model reply and turns
// it into a TheoryScore clamped to [0,10]. Replies that name the score
// "<theory>_score" are accepted too.
func ParseResponse(theory domain.TheoryID, reply string) (domain.TheoryScore, error) {
	raw, err := firstObject(reply)
	if err != nil {
		return domain.TheoryScore{}, err
	}

	var resp promptResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return domain.TheoryScore{}, fmt.Errorf("decoding response: %w", err)
	}
	if resp.Score == nil {
		var alt map[string]any
		if err := json.Unmarshal(raw, &alt); err == nil {
			if v, ok := alt[string(theory)+"_score"].(float64); ok {
				resp.Score = &v
			}
		}
	}
	if resp.Score == nil {
		return domain.TheoryScore{}, fmt.Errorf("response has no score for %s", theory)
	}

	elements := make([]string, 0, maxKeyElements)
	for _, e := range resp.KeyElements {
		if e = strings.TrimSpace(e); e != "" && len(elements) < maxKeyElements {
			elements = append(elements, e)
		}
	}

	return domain.TheoryScore{
		Score:       domain.Round1(domain.Clamp(*resp.Score, 0, 10)),
		Explanation: strings.TrimSpace(resp.Explanation),
		KeyElements: elements,
	}, nil
}

// firstObject returns the first decodable JSON object in s, skipping
// markdown fences and any prose around it.
func firstObject(s string) (json.RawMessage, error) {
	s = stripCodeFences(s)
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(s[i:])).Decode(&raw); err == nil {
			return raw, nil
		}
	}
	return nil, errNoJSON
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), "```") {
			continue
		}
		out = append(out, ln)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
