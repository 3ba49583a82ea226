package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (STOICH_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("STOICH_INPUT"), &cfg.Input)
	s.setString("output", os.Getenv("STOICH_OUTPUT"), &cfg.Output)
	s.setString("summary", os.Getenv("STOICH_SUMMARY"), &cfg.SummaryFile)
	s.setString("metrics-file", os.Getenv("STOICH_METRICS_FILE"), &cfg.MetricsFile)
	s.setString("log-level", os.Getenv("STOICH_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("workers", os.Getenv("STOICH_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("STOICH_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("STOICH_WATCH"), &cfg.Watch)
	s.setBoolFromString("strict", os.Getenv("STOICH_STRICT"), &cfg.Strict)

	return nil
}
