package web

// errors.go maps package sentinels to the "unavailable" envelope.
//
// Every calculator failure is an expected outcome (bad input, no result,
// domain violation) and is answered with 422 and a stable code. Anything
// not in the table is a bug: it is logged with the request id and answered
// with 500.

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/lvcalc/calculus"
	"github.com/katalvlaran/lvcalc/convert"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/finance"
	"github.com/katalvlaran/lvcalc/health"
	"github.com/katalvlaran/lvcalc/internal/logging"
	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/katalvlaran/lvcalc/stats"
)

// Response is the envelope of every /api reply.
type Response struct {
	Available bool   `json:"available"`
	Result    any    `json:"result,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Code      string `json:"code,omitempty"`
}

// Stable error codes.
const (
	CodeBadRequest = "bad_request"
	CodeInternal   = "internal"
)

// errorCodes is checked in order; more specific sentinels come first.
var errorCodes = []struct {
	err  error
	code string
}{
	{calculus.ErrEqualBounds, "equal_bounds"},
	{calculus.ErrInvalidPoint, "invalid_point"},
	{calculus.ErrInvalidOptions, "invalid_options"},
	{calculus.ErrNoResult, "no_result"},
	{expr.ErrEmptyExpression, "empty_expression"},
	{expr.ErrSyntax, "syntax_error"},
	{expr.ErrNonFinite, "non_finite"},
	{expr.ErrNotNumeric, "not_numeric"},

	{matrix.ErrEmpty, "empty_matrix"},
	{matrix.ErrRaggedRows, "ragged_rows"},
	{matrix.ErrNonSquare, "non_square"},
	{matrix.ErrDeterminantUnsupported, "determinant_unsupported"},

	{stats.ErrEmptyDataset, "empty_dataset"},
	{stats.ErrInvalidNumber, "invalid_number"},
	{stats.ErrSampleTooSmall, "sample_too_small"},
	{stats.ErrInvalidPercentile, "invalid_percentile"},
	{stats.ErrInvalidKind, "invalid_kind"},

	{finance.ErrInvalidInput, "invalid_input"},
	{health.ErrInvalidInput, "invalid_input"},

	{convert.ErrRomanRange, "roman_range"},
	{convert.ErrInvalidRoman, "invalid_roman"},
	{convert.ErrInvalidBase, "invalid_base"},
	{convert.ErrInvalidDigits, "invalid_digits"},
}

// codeFor returns the stable code of err, or "" when err is unexpected.
func codeFor(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}

	return ""
}

// respondResult writes 200 {"available":true,"result":...}.
func respondResult(w http.ResponseWriter, r *http.Request, result any) {
	writeJSON(w, r, http.StatusOK, Response{Available: true, Result: result})
}

// respondUnavailable writes 422 for calculator errors and 500 for anything else.
func respondUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	code := codeFor(err)
	if code == "" {
		logging.FromContext(r.Context()).Error("unexpected error",
			"path", r.URL.Path,
			"error", err.Error(),
		)
		writeJSON(w, r, http.StatusInternalServerError, Response{Reason: "internal error", Code: CodeInternal})

		return
	}

	logging.FromContext(r.Context()).Debug("calculation unavailable",
		"path", r.URL.Path,
		"code", code,
		"error", err.Error(),
	)
	writeJSON(w, r, http.StatusUnprocessableEntity, Response{Reason: err.Error(), Code: code})
}

// respondBadRequest writes 400 for bodies that are not valid requests.
func respondBadRequest(w http.ResponseWriter, r *http.Request, reason string) {
	writeJSON(w, r, http.StatusBadRequest, Response{Reason: reason, Code: CodeBadRequest})
}

// writeJSON encodes v before touching w, so an unencodable value (e.g. an
// overflowed ±Inf result) still yields a well-formed 422.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v Response) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logging.FromContext(r.Context()).Warn("result not encodable", "error", err.Error())
		buf.Reset()
		status = http.StatusUnprocessableEntity
		_ = json.NewEncoder(&buf).Encode(Response{Reason: "result is not a finite number", Code: "non_finite"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
