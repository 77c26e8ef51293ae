package domain_test

import (
	"testing"

	"github.com/humorlab/humorlab/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.True(t, cfg.IsParallel())
	assert.True(t, cfg.HistoryEnabled())
	assert.Equal(t, domain.FailFast, cfg.FailurePolicy)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, domain.DefaultLLMAPIKeyEnv, cfg.LLM.APIKeyEnv)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
	assert.NoError(t, cfg.Validate())
}

func TestWithDefaults_KeepsExplicitValues(t *testing.T) {
	off := false
	cfg := domain.EngineConfig{Parallel: &off, FailurePolicy: domain.Sentinel, LogLevel: "debug"}.WithDefaults()
	assert.False(t, cfg.IsParallel())
	assert.Equal(t, domain.Sentinel, cfg.FailurePolicy)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.EngineConfig
		msg  string
	}{
		{"bad policy", domain.EngineConfig{FailurePolicy: "retry"}, "unknown failure_policy"},
		{"bad level", domain.EngineConfig{LogLevel: "trace"}, "unknown log_level"},
		{"negative timeout", domain.EngineConfig{LLM: domain.LLMConfig{TimeoutSeconds: -1}}, "timeout_seconds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}
