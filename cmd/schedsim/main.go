//
// Copyright 2019 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
//
// Command schedsim runs, validates, and serves four-level feedback
// scheduler simulations over workload files, mirroring the teacher's
// server binary (server/server.go) but fronting the simulator instead
// of a trace-analysis service.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/google/feedbacksim/internal/config"
	"github.com/google/feedbacksim/internal/httpapi"
	"github.com/google/feedbacksim/internal/metrics"
	"github.com/google/feedbacksim/internal/runstore"
	"github.com/google/feedbacksim/internal/scheduler"
	"github.com/google/feedbacksim/internal/workload"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Errorf("schedsim: %s", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "Four-level feedback scheduler simulator",
		Long: `schedsim replays a workload of CPU/IO burst sequences through a
four-level feedback scheduler (RR1, RR2, SRTF, FCFS with strict queue
priority and demotion on sustained CPU usage) and reports the resulting
Gantt trace, event log, and aggregate metrics.`,
	}
	root.AddCommand(newRunCommand(), newValidateCommand(), newServeCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var (
		q1, q2  int
		alpha   float64
		maxTime int
		jsonOut bool
		gantt   bool
	)
	cmd := &cobra.Command{
		Use:   "run [workload-file]",
		Short: "Simulate a workload file and print its trace and metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening workload: %w", err)
			}
			defer f.Close()

			procs, err := workload.Load(f)
			if err != nil {
				return fmt.Errorf("parsing workload: %w", err)
			}

			params := config.Params{Q1: q1, Q2: q2, Alpha: alpha, MaxTime: maxTime}
			if err := params.Validate(); err != nil {
				return fmt.Errorf("invalid parameters: %w", err)
			}

			result := scheduler.Run(procs, params)
			if result.HitSafetyBound {
				log.Warningf("run: hit safety bound at tick %d before all processes terminated", result.FinalTime)
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), httpapi.ToRunResponse("local", result))
			}
			printRunSummary(cmd, result)
			if gantt {
				printGantt(cmd, result)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&q1, "q1", config.Default().Q1, "RR1 time quantum")
	cmd.Flags().IntVar(&q2, "q2", config.Default().Q2, "RR2 time quantum")
	cmd.Flags().Float64Var(&alpha, "alpha", config.Default().Alpha, "exponential-average weight for the burst predictor diagnostic")
	cmd.Flags().IntVar(&maxTime, "max-time", config.Default().MaxTime, "safety bound on simulated ticks")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the run result as JSON instead of text")
	cmd.Flags().BoolVar(&gantt, "gantt", false, "also print the Gantt trace as text")
	return cmd
}

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [workload-file]...",
		Short: "Parse one or more workload files concurrently without simulating them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readers := make([]io.Reader, len(args))
			for i, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("opening %s: %w", path, err)
				}
				defer f.Close()
				readers[i] = f
			}

			procs, err := workload.LoadBatch(cmd.Context(), readers)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d processes across %d files\n", len(procs), len(args))
			return nil
		},
	}
	return cmd
}

func newServeCommand() *cobra.Command {
	var (
		addr      string
		cacheSize int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := runstore.New(cacheSize)
			if err != nil {
				return fmt.Errorf("creating run store: %w", err)
			}
			srv := &httpapi.Server{Store: store}
			log.Infof("serve: listening on %s (cache size %d)", addr, cacheSize)
			return http.ListenAndServe(addr, srv.NewRouter())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":7402", "HTTP listen address")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 25, "maximum number of completed runs to keep in memory")
	return cmd
}

func printRunSummary(cmd *cobra.Command, result *scheduler.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "final tick: %d\n", result.FinalTime)
	fmt.Fprintf(out, "cpu utilization: %.1f%%\n", metrics.CPUUtilization(result.FinalTime, result.FreeCPUTime))
	fmt.Fprintf(out, "average waiting time: %.2f\n", metrics.AverageWaitingTime(result.Processes))
	if result.HitSafetyBound {
		fmt.Fprintln(out, "WARNING: safety bound reached before all processes terminated")
	}
	for _, p := range result.Processes {
		fmt.Fprintf(out, "  %s\n", p)
	}
}

func printGantt(cmd *cobra.Command, result *scheduler.Result) {
	out := cmd.OutOrStdout()
	for _, s := range result.Gantt {
		fmt.Fprintf(out, "%s\n", s)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
