package cli_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/humorlab/humorlab/internal/adapters/inbound/cli"
	"github.com/humorlab/humorlab/internal/application"
	"github.com/humorlab/humorlab/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const techJoke = "Mój laptop ma więcej RAM-u niż ja chęci do życia."

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--config-dir", t.TempDir()))
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "humorlab dev")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	out, err := run(t, "", "analyze", techJoke, "--json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, techJoke, decoded["joke_text"])
	assert.Contains(t, decoded, "grade")
	scores, ok := decoded["theory_scores"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, scores, 9)
}

func TestAnalyzeCommand_Stdin(t *testing.T) {
	out, err := run(t, techJoke+"\n", "analyze", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"joke_text": "`+techJoke+`"`)
}

func TestAnalyzeCommand_DefaultTUI(t *testing.T) {
	out, err := run(t, "", "analyze", techJoke)
	require.NoError(t, err)
	assert.Contains(t, out, "humorlab")
	assert.Contains(t, out, "Incongruity")
	assert.Contains(t, out, "/100")
}

func TestAnalyzeCommand_TooShort(t *testing.T) {
	_, err := run(t, "", "analyze", "hej")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "joke_text must be at least 5 characters")
}

func TestAnalyzeCommand_BadContext(t *testing.T) {
	_, err := run(t, "", "analyze", techJoke, "--context", "{not json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing --context")
}

func TestAnalyzeCommand_PersonaMustBeString(t *testing.T) {
	_, err := run(t, "", "analyze", techJoke, "--context", `{"persona": 7}`)
	require.Error(t, err)
	var ae *domain.AnalyzerError
	assert.ErrorAs(t, err, &ae)
}

func TestAnalyzeCommand_SaveAndHistory(t *testing.T) {
	dir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", techJoke, "--save", "--config-dir", dir})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(dir, ".humorlab", "history", "analyses.json"))
	require.NoError(t, err)

	cmd = cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"history", "--json", "--config-dir", dir})
	require.NoError(t, cmd.Execute())

	var entries []domain.HistoryEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, techJoke, entries[0].JokeText)
}

func TestAnalyzeCommand_HistoryDisabledByConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".humorlab.yaml"), []byte("history: false\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", techJoke, "--save", "--config-dir", dir})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(dir, ".humorlab"))
	assert.True(t, os.IsNotExist(err))
}

func TestExtractCommand(t *testing.T) {
	const joke = "Dlaczego programista nie śpi? Bo serwer nagle padł."

	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    []string
		wantErr string
	}{
		{
			name: "json from args",
			args: []string{"extract", joke, "--json"},
			want: []string{`"language": "pl"`, `"tech_words": [`, `"narrative_perspective": "neutral"`},
		},
		{
			name:  "json from stdin",
			stdin: joke + "\n",
			args:  []string{"extract", "--json"},
			want:  []string{`"joke_text": "` + joke + `"`},
		},
		{
			name: "terminal output",
			args: []string{"extract", joke},
			want: []string{"humorlab features", "Keywords", "serwer"},
		},
		{
			name:    "too short",
			args:    []string{"extract", "hej"},
			wantErr: "joke_text must be at least 5 characters",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".humorlab.yaml"), []byte("failure_policy: retry\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"theories", "--config-dir", dir})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := run(t, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No analysis history found.")
}

func TestTheoriesCommand(t *testing.T) {
	out, err := run(t, "", "theories", "--json")
	require.NoError(t, err)

	var list []domain.TheoryInfo
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 9)
	assert.Equal(t, domain.TheorySetupPunchline, list[0].ID)

	out, err = run(t, "", "theories")
	require.NoError(t, err)
	assert.Contains(t, out, "Reverse Engineering")
}

func TestBatchCommand_Stdin(t *testing.T) {
	input := strings.Join([]string{
		"# fixtures",
		techJoke,
		"",
		"hej",
		"Wujek Janusz znowu tłumaczy mi blockchain przy obiedzie.",
	}, "\n")

	out, err := run(t, input, "batch", "-")
	require.NoError(t, err)

	var items []application.BatchItem
	sc := bufio.NewScanner(strings.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var item application.BatchItem
		require.NoError(t, json.Unmarshal(sc.Bytes(), &item))
		items = append(items, item)
	}
	require.Len(t, items, 3)
	assert.Equal(t, 2, items[0].Line)
	assert.NotNil(t, items[0].Result)
	assert.Equal(t, 4, items[1].Line)
	assert.Contains(t, items[1].Error, "at least 5 characters")
	assert.Equal(t, 5, items[2].Line)
}

func TestBatchCommand_MissingFile(t *testing.T) {
	_, err := run(t, "", "batch", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening batch file")
}

func TestSelftestCommand(t *testing.T) {
	out, err := run(t, "", "selftest", "--runs", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "passed")
}

func TestAnalyzeCommand_LLMWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	_, err := run(t, "", "analyze", techJoke, "--llm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY is not set")
}

func TestBatchCommand_File(t *testing.T) {
	out, err := run(t, "", "batch", "../../../../testdata/jokes/batch.txt")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	var last application.BatchItem
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &last))
	assert.Equal(t, 6, last.Line)
	assert.Nil(t, last.Result)
	assert.NotEmpty(t, last.Error)
}
