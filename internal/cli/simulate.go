package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"os-scheduler/internal/render"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/store"
)

// loadRequest reads the input file, applies flag overrides and validates.
func loadRequest(cmd *cobra.Command, input string) (*requests.ScheduleRequests, error) {
	req, err := requests.LoadFile(input)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("quantum") {
		req.TimeQuantum, _ = cmd.Flags().GetInt("quantum")
	}
	if cmd.Flags().Changed("levels") {
		req.LevelsTimeQuantum, _ = cmd.Flags().GetIntSlice("levels")
	}
	if req.TimeQuantum == 0 {
		req.TimeQuantum = cfg.RoundRobinTimeQuantum
	}
	if len(req.LevelsTimeQuantum) == 0 {
		req.LevelsTimeQuantum = cfg.MultilevelFeedbackQueueLevelsTimeQuantum
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func addInputFlags(cmd *cobra.Command, input *string, output *string) {
	cmd.Flags().StringVarP(input, "input", "i", "", "Process file (.csv, .yaml, .json)")
	cmd.Flags().StringVarP(output, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().IntP("quantum", "q", 0, "Round-robin time quantum (default from config)")
	cmd.Flags().IntSlice("levels", nil, "Multilevel feedback queue quanta, one per round-robin level")
	_ = cmd.MarkFlagRequired("input")
}

func newSimulateCmd() *cobra.Command {
	var input, output, algorithmName string
	var save bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling algorithm over a process file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}
			req, err := loadRequest(cmd, input)
			if err != nil {
				return err
			}

			name := algorithmName
			if name == "" {
				name = req.Algorithm
			}
			if name == "" {
				name = string(schedulers.FirstComeFirstServe)
			}
			algorithm, err := schedulers.ParseAlgorithm(name)
			if err != nil {
				return err
			}

			processes := req.Processes()
			opts := schedulers.Options{TimeQuantum: req.TimeQuantum, LevelsTimeQuantum: req.LevelsTimeQuantum}
			result, err := schedulers.Simulate(algorithm, processes, opts)
			if err != nil {
				return err
			}
			resp := responses.NewScheduleResponse(result, processes)
			logger.Debug("simulated", "algorithm", algorithm, "jobs", len(processes))

			if save {
				st, err := openStore(cmd.Context())
				if err != nil {
					return err
				}
				defer st.Close()

				run := &store.Run{
					ID:          "run_" + uuid.New().String(),
					Algorithm:   string(algorithm),
					TimeQuantum: opts.TimeQuantum,
					Jobs:        req.Jobs,
					CreatedAt:   time.Now().UTC(),
				}
				resp.RunId = run.ID
				run.Response = resp
				if err := st.SaveRun(cmd.Context(), run); err != nil {
					return fmt.Errorf("save run: %w", err)
				}
				logger.Info("run saved", "run_id", run.ID)
			}

			return writeSchedule(cmd.OutOrStdout(), output, resp)
		},
	}

	addInputFlags(cmd, &input, &output)
	cmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "", "Algorithm: fcfs, sjf, srtf, priority, priority-preemptive, rr, mlfq (default from input file, then fcfs)")
	cmd.Flags().BoolVar(&save, "save", false, "Record the run in the history database")

	return cmd
}

func newCompareCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm over a process file and compare averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(output); err != nil {
				return err
			}
			req, err := loadRequest(cmd, input)
			if err != nil {
				return err
			}

			processes := req.Processes()
			results, err := schedulers.Compare(cmd.Context(), processes, schedulers.Options{
				TimeQuantum:       req.TimeQuantum,
				LevelsTimeQuantum: req.LevelsTimeQuantum,
			})
			if err != nil {
				return err
			}

			resps := make([]responses.ScheduleResponse, len(results))
			for i, result := range results {
				resps[i] = responses.NewScheduleResponse(result, processes)
			}
			if output == "table" {
				for _, resp := range resps {
					render.Schedule(cmd.OutOrStdout(), title(resp.Algorithm), resp)
				}
				render.Comparison(cmd.OutOrStdout(), resps)
				return nil
			}
			return writeStructured(cmd.OutOrStdout(), output, resps)
		},
	}

	addInputFlags(cmd, &input, &output)
	return cmd
}
