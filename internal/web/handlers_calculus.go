package web

import (
	"net/http"

	"github.com/katalvlaran/lvcalc/calculus"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/internal/logging"
)

// scheduleRequest carries optional per-request overrides of the numeric defaults.
type scheduleRequest struct {
	H0        *float64 `json:"h0,omitempty"`
	Steps     *int     `json:"steps,omitempty"`
	Intervals *int     `json:"intervals,omitempty"`
}

// options merges the overrides over the configured defaults.
func (s *Server) options(req scheduleRequest) *calculus.Options {
	o := s.cfg.Numeric.Options()
	if req.H0 != nil {
		o.H0 = *req.H0
	}
	if req.Steps != nil {
		o.Steps = *req.Steps
	}
	if req.Intervals != nil {
		o.Intervals = *req.Intervals
	}

	return o
}

type evalRequest struct {
	Expression string  `json:"expression"`
	X          float64 `json:"x"`
}

type evalResult struct {
	Expression string  `json:"expression"`
	X          float64 `json:"x"`
	Value      float64 `json:"value"`
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	v, err := expr.Evaluate(req.Expression, req.X)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, evalResult{Expression: req.Expression, X: req.X, Value: v})
}

type derivativeRequest struct {
	Expression string  `json:"expression"`
	At         float64 `json:"at"`
	scheduleRequest
}

func (s *Server) handleDerivative(w http.ResponseWriter, r *http.Request) {
	var req derivativeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	res, err := calculus.Derivative(expr.Compile(req.Expression), req.At, s.options(req.scheduleRequest))
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	logging.WithFields(r.Context(), "tool", "derivative").Debug("computed", "rows", len(res.Rows))
	respondResult(w, r, res)
}

type limitRequest struct {
	Expression string  `json:"expression"`
	At         float64 `json:"at"`
	Side       string  `json:"side"`
	scheduleRequest
}

type limitResult struct {
	calculus.LimitResult
	Side string `json:"side"`
}

func (s *Server) handleLimit(w http.ResponseWriter, r *http.Request) {
	var req limitRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	side, err := calculus.ParseSide(req.Side)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	res, err := calculus.Limit(expr.Compile(req.Expression), req.At, side, s.options(req.scheduleRequest))
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, limitResult{LimitResult: res, Side: side.String()})
}

type integralRequest struct {
	Expression string  `json:"expression"`
	From       float64 `json:"from"`
	To         float64 `json:"to"`
	Method     string  `json:"method"` // "simpson" (default) or "gauss"
	scheduleRequest
}

type integralResult struct {
	calculus.IntegralResult
	Method string `json:"method"`
}

func (s *Server) handleIntegral(w http.ResponseWriter, r *http.Request) {
	var req integralRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	f := expr.Compile(req.Expression)
	opts := s.options(req.scheduleRequest)

	var (
		res calculus.IntegralResult
		err error
	)
	switch req.Method {
	case "", "simpson":
		req.Method = "simpson"
		res, err = calculus.Integrate(f, req.From, req.To, opts)
	case "gauss":
		res, err = calculus.IntegrateGauss(f, req.From, req.To, opts)
	default:
		respondBadRequest(w, r, "method must be simpson or gauss")

		return
	}
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, integralResult{IntegralResult: res, Method: req.Method})
}
