package entity

import "time"

// Pipeline names a runnable pipeline.
type Pipeline string

const (
	PipelineListings  Pipeline = "listings"
	PipelineStage     Pipeline = "stage"
	PipelineOSM       Pipeline = "osm"
	PipelineReconcile Pipeline = "reconcile"
)

// StageCount records the rows entering and leaving one filtering stage.
type StageCount struct {
	Stage  string `json:"stage"`
	Before int    `json:"before"`
	After  int    `json:"after"`
}

// RunSummary is the run-level report every pipeline returns. Every row that
// leaves the batch is accounted for in Stages or Dropped.
type RunSummary struct {
	Pipeline   Pipeline       `json:"pipeline"`
	RunID      string         `json:"runId"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	RowsIn     int            `json:"rowsIn"`
	RowsOut    int            `json:"rowsOut"`
	Stages     []StageCount   `json:"stages"`
	Dropped    map[string]int `json:"dropped,omitempty"`
	Corrected  int            `json:"corrected"`
	Matches    map[string]int `json:"matches,omitempty"`
	Counters   map[string]int `json:"counters,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
	Failed     bool           `json:"failed"`
}

// NewRunSummary starts a summary for a run.
func NewRunSummary(p Pipeline, runID string, startedAt time.Time) *RunSummary {
	return &RunSummary{
		Pipeline:  p,
		RunID:     runID,
		StartedAt: startedAt,
		Dropped:   map[string]int{},
		Matches:   map[string]int{},
		Counters:  map[string]int{},
	}
}

// RecordStage appends a before/after count.
func (s *RunSummary) RecordStage(stage string, before, after int) {
	s.Stages = append(s.Stages, StageCount{Stage: stage, Before: before, After: after})
}

// Drop adds n rows dropped for reason.
func (s *RunSummary) Drop(reason string, n int) {
	if n > 0 {
		s.Dropped[reason] += n
	}
}

// Count adds n to a named counter.
func (s *RunSummary) Count(name string, n int) {
	s.Counters[name] += n
}

// TotalDropped sums every drop reason.
func (s *RunSummary) TotalDropped() int {
	total := 0
	for _, n := range s.Dropped {
		total += n
	}

	return total
}
