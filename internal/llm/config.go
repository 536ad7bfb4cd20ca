package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskItinerary       TaskType = "itinerary"
	TaskSummary         TaskType = "summary"
	TaskRecommendations TaskType = "recommendations"
	TaskPackingList     TaskType = "packing_list"
	TaskDestinationInfo TaskType = "destination_info"
	TaskAttractions     TaskType = "attractions"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
// LLM is disabled by default; every caller must carry a fallback path.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskItinerary:       {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 45000},
			TaskSummary:         {Temperature: 0.6, MaxTokens: 2048, TimeoutMs: 20000},
			TaskRecommendations: {Temperature: 0.5, MaxTokens: 1024, TimeoutMs: 15000},
			TaskPackingList:     {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 15000},
			TaskDestinationInfo: {Temperature: 0.4, MaxTokens: 1536, TimeoutMs: 15000},
			TaskAttractions:     {Temperature: 0.4, MaxTokens: 1536, TimeoutMs: 15000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WAYFARER_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WAYFARER_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WAYFARER_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("WAYFARER_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("WAYFARER_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("WAYFARER_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskItinerary, "WAYFARER_LLM_ITINERARY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSummary, "WAYFARER_LLM_SUMMARY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskRecommendations, "WAYFARER_LLM_RECOMMENDATIONS_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPackingList, "WAYFARER_LLM_PACKING_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskDestinationInfo, "WAYFARER_LLM_DESTINATION_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskAttractions, "WAYFARER_LLM_ATTRACTIONS_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
