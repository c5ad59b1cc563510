package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/render"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/store"
)

var titles = map[string]string{
	string(schedulers.FirstComeFirstServe):        "First-come, first-serve",
	string(schedulers.ShortestJobFirst):           "Shortest-job-first",
	string(schedulers.ShortestRemainingTimeFirst): "Shortest-remaining-time-first",
	string(schedulers.PriorityNonPreemptive):      "Priority",
	string(schedulers.PriorityPreemptive):         "Preemptive priority",
	string(schedulers.RoundRobin):                 "Round-robin",
	string(schedulers.MultilevelFeedbackQueue):    "Multilevel feedback queue",
}

func title(algorithm string) string {
	if t, ok := titles[algorithm]; ok {
		return t
	}
	return algorithm
}

func validateFormat(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
}

// writeStructured encodes v as json or yaml.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	return validateFormat(format)
}

func writeSchedule(w io.Writer, format string, resp responses.ScheduleResponse) error {
	if format == "table" {
		render.Schedule(w, title(resp.Algorithm), resp)
		return nil
	}
	return writeStructured(w, format, resp)
}

func openStore(ctx context.Context) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(cfg.DatabasePath, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}
