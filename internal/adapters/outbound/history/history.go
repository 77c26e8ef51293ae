package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/humorlab/humorlab/internal/domain"
)

const historyFile = ".humorlab/history/analyses.json"

// maxEntries keeps the history file bounded; older entries are dropped first.
const maxEntries = 500

// FileHistory implements domain.AnalysisHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dir string, entry domain.HistoryEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	fp := filepath.Join(dir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dir string) ([]domain.HistoryEntry, error) {
	fp := filepath.Join(dir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", historyFile, err)
	}

	return entries, nil
}

// EntryFor summarizes result for the history file.
func EntryFor(result *domain.AnalysisResult, timestamp string) domain.HistoryEntry {
	return domain.HistoryEntry{
		Timestamp:         timestamp,
		JokeText:          result.JokeText,
		OverallScore:      result.OverallScore,
		Grade:             result.Grade(),
		DominantTheory:    result.DominantTheory,
		ReachEstimate:     result.ReachEstimate,
		MonetizationScore: result.MonetizationScore,
	}
}
