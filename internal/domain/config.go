package domain

import "fmt"

// FailurePolicy controls what happens when a single analyzer fails.
type FailurePolicy string

const (
	// FailFast fails the whole analysis on the first analyzer error.
	FailFast FailurePolicy = "fail_fast"
	// Sentinel substitutes a zero score for the failed theory.
	Sentinel FailurePolicy = "sentinel"
)

// ValidFailurePolicies enumerates the recognized failure policies.
var ValidFailurePolicies = []FailurePolicy{FailFast, Sentinel}

// ValidLogLevels enumerates the recognized log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// EngineConfig holds settings loaded from .humorlab.yaml.
type EngineConfig struct {
	Parallel      *bool         `yaml:"parallel"       json:"parallel,omitempty"`
	FailurePolicy FailurePolicy `yaml:"failure_policy" json:"failure_policy,omitempty"`
	Debug         bool          `yaml:"debug"          json:"debug,omitempty"`
	LogLevel      string        `yaml:"log_level"      json:"log_level,omitempty"`
	History       *bool         `yaml:"history"        json:"history,omitempty"`
	LLM           LLMConfig     `yaml:"llm"            json:"llm"`
}

// LLMConfig configures the optional prompt-based second opinion.
type LLMConfig struct {
	Model          string `yaml:"model"           json:"model,omitempty"`
	APIKeyEnv      string `yaml:"api_key_env"     json:"api_key_env,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
}

const (
	DefaultLLMModel       = "gemini-2.5-flash"
	DefaultLLMAPIKeyEnv   = "GEMINI_API_KEY"
	DefaultLLMTimeoutSecs = 30
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() EngineConfig {
	return EngineConfig{}.WithDefaults()
}

// WithDefaults fills every unset field with its default.
func (c EngineConfig) WithDefaults() EngineConfig {
	if c.Parallel == nil {
		t := true
		c.Parallel = &t
	}
	if c.History == nil {
		t := true
		c.History = &t
	}
	if c.FailurePolicy == "" {
		c.FailurePolicy = FailFast
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = DefaultLLMModel
	}
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = DefaultLLMAPIKeyEnv
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = DefaultLLMTimeoutSecs
	}
	return c
}

// IsParallel reports whether analyzers run concurrently. Defaults to true.
func (c EngineConfig) IsParallel() bool { return c.Parallel == nil || *c.Parallel }

// HistoryEnabled reports whether saved analyses go to history. Defaults to true.
func (c EngineConfig) HistoryEnabled() bool { return c.History == nil || *c.History }

// Validate checks the config for invalid values and returns a descriptive error.
func (c EngineConfig) Validate() error {
	if c.FailurePolicy != "" && !isValidPolicy(c.FailurePolicy) {
		return fmt.Errorf("unknown failure_policy %q (valid: fail_fast, sentinel)", c.FailurePolicy)
	}
	if c.LogLevel != "" && !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	if c.LLM.TimeoutSeconds < 0 {
		return fmt.Errorf("llm.timeout_seconds must be positive, got %d", c.LLM.TimeoutSeconds)
	}
	return nil
}

func isValidPolicy(p FailurePolicy) bool {
	for _, v := range ValidFailurePolicies {
		if v == p {
			return true
		}
	}
	return false
}

func isValidLogLevel(level string) bool {
	for _, v := range ValidLogLevels {
		if v == level {
			return true
		}
	}
	return false
}
