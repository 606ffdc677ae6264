package server

import (
	"github.com/openfiscal/wealthsim/config"
	"github.com/openfiscal/wealthsim/sim"
)

// SimulateResponse is the full output of POST /simulate: the inputs echoed
// back, the year-by-year trajectory, the share series and the headline
// summary. RunID identifies the run in logs.
type SimulateResponse struct {
	RunID      string                  `json:"run_id"`
	Parameters config.SimulationConfig `json:"parameters"`
	Trajectory sim.Trajectory          `json:"trajectory"`
	Shares     []sim.Shares            `json:"shares"`
	Summary    sim.Summary             `json:"summary"`
}

// ErrorResponse is the JSON body for every non-2xx answer.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
