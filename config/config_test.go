package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9095 || cfg.RoundRobinTimeQuantum != 2 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.MultilevelFeedbackQueueLevelsTimeQuantum, []int{4, 8}) {
		t.Errorf("levels = %v", cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" || cfg.DatabasePath != "schedsim.db" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
port: 8081
scheduler:
  round_robin:
    time_quantum: 5
  multilevel_feedback_queue:
    levels_time_quantum: [3, 6, 12]
log:
  level: debug
  format: json
database:
  path: ":memory:"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &SchedulerConfig{
		Port:                                     8081,
		RoundRobinTimeQuantum:                    5,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{3, 6, 12},
		LogLevel:                                 "debug",
		LogFormat:                                "json",
		DatabasePath:                             ":memory:",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 5\n")
	t.Setenv("SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RoundRobinTimeQuantum != 7 {
		t.Errorf("quantum = %d, want 7", cfg.RoundRobinTimeQuantum)
	}
}

func TestLoadEnvOverrideLevels(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, raw := range []string{"3,6", "3 6", "[3, 6]"} {
		t.Setenv("SCHEDSIM_SCHEDULER_MULTILEVEL_FEEDBACK_QUEUE_LEVELS_TIME_QUANTUM", raw)
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load(%q): %v", raw, err)
		}
		if !reflect.DeepEqual(cfg.MultilevelFeedbackQueueLevelsTimeQuantum, []int{3, 6}) {
			t.Errorf("levels from %q = %v, want [3 6]", raw, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
		}
	}
}

func TestLoadEnvOverrideLevelsInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCHEDSIM_SCHEDULER_MULTILEVEL_FEEDBACK_QUEUE_LEVELS_TIME_QUANTUM", "3,six")

	if _, err := Load(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want %v", err, ErrInvalidConfig)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "port: 0\nscheduler:\n  round_robin:\n    time_quantum: 0\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want %v", err, ErrInvalidConfig)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
