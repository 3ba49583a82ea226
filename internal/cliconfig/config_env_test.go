package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all env vars",
			envVars: map[string]string{
				"STOICH_INPUT":        "/env/batch.jsonl",
				"STOICH_OUTPUT":       "/env/results.jsonl",
				"STOICH_SUMMARY":      "/env/summary.json",
				"STOICH_METRICS_FILE": "/env/stoich.prom",
				"STOICH_WORKERS":      "6",
				"STOICH_WATCH":        "1",
				"STOICH_DEBOUNCE":     "2s",
				"STOICH_STRICT":       "true",
				"STOICH_LOG_LEVEL":    "error",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Input:       "/env/batch.jsonl",
				Output:      "/env/results.jsonl",
				SummaryFile: "/env/summary.json",
				MetricsFile: "/env/stoich.prom",
				Workers:     6,
				Watch:       true,
				Debounce:    2 * time.Second,
				Strict:      true,
				LogLevel:    "error",
			},
		},
		{
			name:     "respects changed flags",
			envVars:  map[string]string{"STOICH_INPUT": "/env/batch.json", "STOICH_WORKERS": "4"},
			changed:  map[string]bool{"input": true, "workers": true},
			initial:  Config{Input: "/flag/batch.json", Workers: 2},
			expected: Config{Input: "/flag/batch.json", Workers: 2},
		},
		{
			name:     "handles bool 'false' as false",
			envVars:  map[string]string{"STOICH_STRICT": "false"},
			changed:  map[string]bool{},
			initial:  Config{Strict: true},
			expected: Config{},
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"STOICH_WORKERS": "many"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"STOICH_DEBOUNCE": "not-a-duration"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Precedence order: CLI > Env > File
func TestConfigPrecedence(t *testing.T) {
	trueVal := true
	fileConf := FileConfig{
		Input:   "/file/batch.json",
		Output:  "/file/results.jsonl",
		Workers: 2,
		Strict:  &trueVal,
	}

	t.Setenv("STOICH_OUTPUT", "/env/results.jsonl")
	t.Setenv("STOICH_WORKERS", "3")

	changed := map[string]bool{"workers": true}
	cfg := Config{Workers: 8}

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.Workers != 8 {
		t.Errorf("Workers = %v, want 8 (CLI should win)", cfg.Workers)
	}
	if cfg.Output != "/env/results.jsonl" {
		t.Errorf("Output = %v, want /env/results.jsonl (env should override file)", cfg.Output)
	}
	if cfg.Input != "/file/batch.json" {
		t.Errorf("Input = %v, want /file/batch.json (file should set)", cfg.Input)
	}
	if !cfg.Strict {
		t.Errorf("Strict = false, want true (file should set)")
	}
}
