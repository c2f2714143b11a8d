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
// Package httpapi exposes a completed simulation run's Gantt trace,
// event log, and aggregate metrics as JSON over HTTP, mirroring the
// teacher's apiservice/storageservice HTTP surface (server/server.go).
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	log "github.com/golang/glog"

	"github.com/google/feedbacksim/internal/config"
	"github.com/google/feedbacksim/internal/metrics"
	"github.com/google/feedbacksim/internal/runstore"
	"github.com/google/feedbacksim/internal/scheduler"
	"github.com/google/feedbacksim/internal/workload"
)

const err500 = "Internal Server Error"

// RunResponse is the JSON payload returned for a completed run: its
// Gantt trace, event log, per-process metrics, and aggregate metrics.
type RunResponse struct {
	RunID          string           `json:"runId"`
	Gantt          []ganttSegment   `json:"gantt"`
	EventLog       []string         `json:"eventLog"`
	Processes      []processSummary `json:"processes"`
	CPUUtilization float64          `json:"cpuUtilization"`
	AvgWaitingTime float64          `json:"avgWaitingTime"`
	HitSafetyBound bool             `json:"hitSafetyBound"`
}

type ganttSegment struct {
	PID   int    `json:"pid"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Algo  string `json:"algo"`
}

type processSummary struct {
	PID              int   `json:"pid"`
	ArrivalTime      int   `json:"arrivalTime"`
	StartTime        int   `json:"startTime"`
	CompleteTime     int   `json:"completeTime"`
	WaitingTime      int   `json:"waitingTime"`
	TurnaroundTime   int   `json:"turnaroundTime"`
	OriginalCPU      []int `json:"originalCpuBursts"`
	OriginalIO       []int `json:"originalIoBursts"`
}

// ToRunResponse converts a completed simulation result into its JSON
// response shape, under the given run ID. Exported so the CLI's
// `run --json` path can reuse the same serialization as the HTTP API.
func ToRunResponse(runID string, result *scheduler.Result) RunResponse {
	resp := RunResponse{
		RunID:          runID,
		EventLog:       result.EventLog,
		CPUUtilization: metrics.CPUUtilization(result.FinalTime, result.FreeCPUTime),
		AvgWaitingTime: metrics.AverageWaitingTime(result.Processes),
		HitSafetyBound: result.HitSafetyBound,
	}
	for _, s := range result.Gantt {
		resp.Gantt = append(resp.Gantt, ganttSegment{PID: s.PID, Start: s.Start, End: s.End, Algo: string(s.Algo)})
	}
	for _, p := range result.Processes {
		resp.Processes = append(resp.Processes, processSummary{
			PID:            p.PID,
			ArrivalTime:    p.ArrivalTime,
			StartTime:      p.StartTime,
			CompleteTime:   p.CompleteTime,
			WaitingTime:    p.WaitingTime(),
			TurnaroundTime: p.TurnaroundTime(),
			OriginalCPU:    p.OriginalCPUBursts,
			OriginalIO:     p.OriginalIOBursts,
		})
	}
	return resp
}

// Server wires the HTTP routes over a run store and simulation
// parameters supplied per request.
type Server struct {
	Store *runstore.Store
}

// NewRouter builds the mux.Router exposing /simulate and /runs/{id}.
func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/simulate", s.handleSimulate).Methods(http.MethodPost)
	r.HandleFunc("/runs/{id}", s.handleGetRun).Methods(http.MethodGet)
	return r
}

type simulateRequest struct {
	Workload string  `json:"workload"`
	Q1       int     `json:"q1"`
	Q2       int     `json:"q2"`
	Alpha    float64 `json:"alpha"`
	MaxTime  int     `json:"maxTime"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, req *http.Request) {
	var jsonreq simulateRequest
	if err := json.NewDecoder(req.Body).Decode(&jsonreq); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	procs, err := workload.Load(strings.NewReader(jsonreq.Workload))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid workload: %s", err), http.StatusBadRequest)
		return
	}

	params := config.Params{Q1: jsonreq.Q1, Q2: jsonreq.Q2, Alpha: jsonreq.Alpha, MaxTime: jsonreq.MaxTime}
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := scheduler.Run(procs, params)
	runID := uuid.New().String()
	s.Store.Put(runID, result)

	log.Infof("simulate: run %s completed at tick %d (%d processes)", runID, result.FinalTime, len(procs))

	sendJSON(w, ToRunResponse(runID, result))
}

func (s *Server) handleGetRun(w http.ResponseWriter, req *http.Request) {
	runID := mux.Vars(req)["id"]
	result, ok := s.Store.Get(runID)
	if !ok {
		http.Error(w, fmt.Sprintf("no such run: %s", runID), http.StatusNotFound)
		return
	}
	sendJSON(w, ToRunResponse(runID, result))
}

func sendJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err500, http.StatusInternalServerError)
	}
}
