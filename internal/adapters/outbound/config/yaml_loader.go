package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/humorlab/humorlab/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".humorlab.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .humorlab.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .humorlab.yaml from dir. A missing file yields DefaultConfig.
// Unset fields are filled with defaults after validation.
func (l *YAMLLoader) Load(dir string) (domain.EngineConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.EngineConfig{}, err
	}

	var cfg domain.EngineConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.EngineConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate the raw input so typos are reported, not defaulted away.
	if err := cfg.Validate(); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg.WithDefaults(), nil
}
