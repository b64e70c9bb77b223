package web

import (
	"net/http"

	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/katalvlaran/lvcalc/stats"
)

type matrixRequest struct {
	Text string `json:"text"`
}

type matrixResult struct {
	Rows        int         `json:"rows"`
	Cols        int         `json:"cols"`
	Matrix      [][]float64 `json:"matrix"`
	Transpose   [][]float64 `json:"transpose"`
	Determinant *float64    `json:"determinant,omitempty"`
	// DeterminantReason explains a missing determinant.
	DeterminantReason string `json:"determinantReason,omitempty"`
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	var req matrixRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	a, err := matrix.Analyze(req.Text)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}

	out := matrixResult{
		Rows:        a.Matrix.Rows(),
		Cols:        a.Matrix.Cols(),
		Matrix:      a.Matrix.ToRows(),
		Transpose:   a.Transpose.ToRows(),
		Determinant: a.Determinant,
	}
	if a.DeterminantErr != nil {
		out.DeterminantReason = a.DeterminantErr.Error()
	}
	respondResult(w, r, out)
}

type statisticsRequest struct {
	Data        string    `json:"data"`
	Percentiles []float64 `json:"percentiles,omitempty"`
}

type percentileValue struct {
	P     float64 `json:"p"`
	Value float64 `json:"value"`
}

type statisticsResult struct {
	stats.Summary
	Percentiles []percentileValue `json:"percentiles,omitempty"`
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	var req statisticsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	xs, err := stats.ParseDataset(req.Data)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	sum, err := stats.Describe(xs)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}

	out := statisticsResult{Summary: sum}
	for _, p := range req.Percentiles {
		v, err := stats.Percentile(xs, p)
		if err != nil {
			respondUnavailable(w, r, err)

			return
		}
		out.Percentiles = append(out.Percentiles, percentileValue{P: p, Value: v})
	}
	respondResult(w, r, out)
}

type stddevRequest struct {
	Data string `json:"data"`
	Kind string `json:"kind"` // "population" (default) or "sample"
}

type stddevResult struct {
	stats.Dispersion
	Kind string `json:"kind"`
}

func (s *Server) handleStdDev(w http.ResponseWriter, r *http.Request) {
	var req stddevRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	kind, err := stats.ParseKind(req.Kind)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	xs, err := stats.ParseDataset(req.Data)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	d, err := stats.Spread(xs, kind)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, stddevResult{Dispersion: d, Kind: kind.String()})
}
