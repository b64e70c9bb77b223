package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvcalc/internal/config"
)

type envelope struct {
	Available bool           `json:"available"`
	Result    map[string]any `json:"result"`
	Reason    string         `json:"reason"`
	Code      string         `json:"code"`
}

type ServerSuite struct {
	suite.Suite
	cfg *config.Config
	srv *Server
}

func (s *ServerSuite) SetupTest() {
	cfg, err := config.LoadFrom("", "")
	require.NoError(s.T(), err)
	s.cfg = cfg
	s.srv = NewServer(cfg)
}

// post sends body to path and decodes the envelope.
func (s *ServerSuite) post(path, body string) (int, envelope) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.srv.Router().ServeHTTP(rec, req)

	require.Equal(s.T(), "application/json", rec.Header().Get("Content-Type"))
	var env envelope
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

// ok asserts a 200 envelope and returns its result.
func (s *ServerSuite) ok(path, body string) map[string]any {
	code, env := s.post(path, body)
	require.Equal(s.T(), http.StatusOK, code, env.Reason)
	require.True(s.T(), env.Available)

	return env.Result
}

// unavailable asserts a 422 envelope with the given code.
func (s *ServerSuite) unavailable(path, body, wantCode string) envelope {
	code, env := s.post(path, body)
	require.Equal(s.T(), http.StatusUnprocessableEntity, code)
	require.False(s.T(), env.Available)
	require.Equal(s.T(), wantCode, env.Code)
	require.NotEmpty(s.T(), env.Reason)

	return env
}

func (s *ServerSuite) TestHealth() {
	rec := httptest.NewRecorder()
	s.srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(s.T(), http.StatusOK, rec.Code)
	require.JSONEq(s.T(), `{"status":"ok"}`, rec.Body.String())
	require.Equal(s.T(), "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *ServerSuite) TestEval() {
	res := s.ok("/api/eval", `{"expression":"x^2","x":3}`)
	require.Equal(s.T(), 9.0, res["value"])

	s.unavailable("/api/eval", `{"expression":"","x":1}`, "empty_expression")
	s.unavailable("/api/eval", `{"expression":"1/x","x":0}`, "non_finite")
}

func (s *ServerSuite) TestDerivative() {
	res := s.ok("/api/derivative", `{"expression":"x^2","at":2}`)
	require.InDelta(s.T(), 4.0, res["approx"], 1e-4)
	require.Len(s.T(), res["rows"], 6)

	res = s.ok("/api/derivative", `{"expression":"x^2","at":2,"steps":2}`)
	require.Len(s.T(), res["rows"], 2)

	s.unavailable("/api/derivative", `{"expression":"ln(x)","at":-1}`, "no_result")
	s.unavailable("/api/derivative", `{"expression":"x","at":0,"h0":-1}`, "invalid_options")
}

func (s *ServerSuite) TestLimit() {
	res := s.ok("/api/limit", `{"expression":"sin(x)/x","at":0}`)
	require.Equal(s.T(), "both", res["side"])
	require.InDelta(s.T(), 1.0, res["approx"], 1e-3)

	// Only the right side exists: no combined value.
	res = s.ok("/api/limit", `{"expression":"sqrt(x)","at":0,"side":"both"}`)
	require.NotContains(s.T(), res, "approx")
	require.NotContains(s.T(), res, "left")
	require.Contains(s.T(), res, "right")

	s.unavailable("/api/limit", `{"expression":"x","at":0,"side":"up"}`, "invalid_options")
}

func (s *ServerSuite) TestIntegral() {
	res := s.ok("/api/integral", `{"expression":"x^2","from":0,"to":1}`)
	require.Equal(s.T(), "simpson", res["method"])
	require.InDelta(s.T(), 1.0/3, res["value"], 1e-6)
	require.Equal(s.T(), 400.0, res["intervals"])

	res = s.ok("/api/integral", `{"expression":"x^2","from":0,"to":1,"method":"gauss"}`)
	require.InDelta(s.T(), 1.0/3, res["value"], 1e-9)

	s.unavailable("/api/integral", `{"expression":"x","from":1,"to":1}`, "equal_bounds")
	s.unavailable("/api/integral", `{"expression":"ln(x)","from":-1,"to":1}`, "no_result")

	code, env := s.post("/api/integral", `{"expression":"x","from":0,"to":1,"method":"trapezoid"}`)
	require.Equal(s.T(), http.StatusBadRequest, code)
	require.Equal(s.T(), CodeBadRequest, env.Code)
}

func (s *ServerSuite) TestMatrix() {
	res := s.ok("/api/matrix", `{"text":"1 2\n3 4"}`)
	require.Equal(s.T(), -2.0, res["determinant"])
	require.Equal(s.T(), []any{[]any{1.0, 3.0}, []any{2.0, 4.0}}, res["transpose"])

	res = s.ok("/api/matrix", `{"text":"1 2 3 4\n5 6 7 8\n9 10 11 12\n13 14 15 16"}`)
	require.NotContains(s.T(), res, "determinant")
	require.Contains(s.T(), res["determinantReason"], "determinant not computed")
	require.Len(s.T(), res["transpose"], 4)

	s.unavailable("/api/matrix", `{"text":"1 2\n3"}`, "ragged_rows")
	s.unavailable("/api/matrix", `{"text":""}`, "empty_matrix")
}

func (s *ServerSuite) TestStatistics() {
	res := s.ok("/api/statistics", `{"data":"12, 15, 15, 18, 20","percentiles":[50,100]}`)
	require.Equal(s.T(), 16.0, res["mean"])
	require.Equal(s.T(), 15.0, res["median"])
	require.Equal(s.T(), []any{15.0}, res["modes"])
	require.Equal(s.T(), true, res["hasMode"])
	require.Len(s.T(), res["percentiles"], 2)

	res = s.ok("/api/statistics", `{"data":"1 2 3 4"}`)
	require.Equal(s.T(), 2.5, res["median"])
	require.Equal(s.T(), false, res["hasMode"])

	s.unavailable("/api/statistics", `{"data":"1, x"}`, "invalid_number")
	s.unavailable("/api/statistics", `{"data":"1 2","percentiles":[120]}`, "invalid_percentile")
}

func (s *ServerSuite) TestStdDev() {
	res := s.ok("/api/stddev", `{"data":"2 4 4 4 5 5 7 9"}`)
	require.Equal(s.T(), "population", res["kind"])
	require.InDelta(s.T(), 2.0, res["stddev"], 1e-12)

	env := s.unavailable("/api/stddev", `{"data":"5","kind":"sample"}`, "sample_too_small")
	require.Contains(s.T(), env.Reason, "at least 2 values")
}

func (s *ServerSuite) TestFinanceAndHealth() {
	res := s.ok("/api/emi", `{"principal":100000,"rate":12,"months":12}`)
	require.InDelta(s.T(), 8884.88, res["emi"], 0.01)

	res = s.ok("/api/amortization", `{"principal":100000,"rate":12,"months":12}`)
	rows := res["rows"].([]any)
	require.Len(s.T(), rows, 12)
	require.Equal(s.T(), 0.0, rows[11].(map[string]any)["balance"])

	res = s.ok("/api/compound", `{"principal":1000,"rate":10,"years":2}`)
	require.InDelta(s.T(), 1210.0, res["amount"], 1e-9)

	res = s.ok("/api/sip", `{"monthly":500,"rate":0,"months":24}`)
	require.Equal(s.T(), 12000.0, res["amount"])

	s.unavailable("/api/emi", `{"principal":0,"rate":12,"months":12}`, "invalid_input")

	res = s.ok("/api/bmi", `{"weightKg":70,"heightCm":175}`)
	require.Equal(s.T(), "normal", res["category"])

	res = s.ok("/api/bac", `{"alcoholGrams":28,"weightKg":80,"sex":"male","hours":24}`)
	require.Equal(s.T(), 0.0, res["bac"])

	res = s.ok("/api/whr", `{"waist":80,"hip":100}`)
	require.Equal(s.T(), 0.8, res["ratio"])

	s.unavailable("/api/bac", `{"alcoholGrams":28,"weightKg":80,"sex":"?"}`, "invalid_input")
}

func (s *ServerSuite) TestConversions() {
	res := s.ok("/api/roman", `{"number":1994}`)
	require.Equal(s.T(), "MCMXCIV", res["numeral"])

	res = s.ok("/api/roman", `{"numeral":"mcmxciv"}`)
	require.Equal(s.T(), 1994.0, res["number"])
	require.Equal(s.T(), "MCMXCIV", res["numeral"])

	s.unavailable("/api/roman", `{"numeral":"IIII"}`, "invalid_roman")
	s.unavailable("/api/roman", `{"number":4000}`, "roman_range")

	res = s.ok("/api/base", `{"digits":"ff","from":16,"to":2}`)
	require.Equal(s.T(), "11111111", res["digits"])

	s.unavailable("/api/base", `{"digits":"12","from":10,"to":40}`, "invalid_base")
}

func (s *ServerSuite) TestBadRequests() {
	for _, body := range []string{
		`{"expression":`,
		``,
		`{"expression":"x","x":1,"y":2}`,
		`{"expression":"x","x":1} {}`,
		`{"expression":"x","x":"one"}`,
	} {
		code, env := s.post("/api/eval", body)
		require.Equal(s.T(), http.StatusBadRequest, code, body)
		require.False(s.T(), env.Available)
		require.Equal(s.T(), CodeBadRequest, env.Code)
	}
}

func (s *ServerSuite) TestBodyLimit() {
	s.cfg.Server.MaxBodyBytes = 16
	srv := NewServer(s.cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/eval", strings.NewReader(`{"expression":"x+x+x+x+x","x":1}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(s.T(), http.StatusBadRequest, rec.Code)
	require.Contains(s.T(), rec.Body.String(), "exceeds 16 bytes")
}

// TestShutdownBeforeStart: a signal that arrives before the listener is up
// still stops the server.
func (s *ServerSuite) TestShutdownBeforeStart() {
	s.cfg.Server.Host, s.cfg.Server.Port = "127.0.0.1", 0
	srv := NewServer(s.cfg)

	require.NoError(s.T(), srv.Shutdown(context.Background()))
	require.ErrorIs(s.T(), srv.Start(), http.ErrServerClosed)
}

// TestStartShutdown: Start returns ErrServerClosed once Shutdown completes.
func (s *ServerSuite) TestStartShutdown() {
	s.cfg.Server.Host, s.cfg.Server.Port = "127.0.0.1", 0
	srv := NewServer(s.cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(s.T(), srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		require.ErrorIs(s.T(), err, http.ErrServerClosed)
	case <-time.After(5 * time.Second):
		s.T().Fatal("Start did not return after Shutdown")
	}
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestCodeFor(t *testing.T) {
	require.Equal(t, "", codeFor(http.ErrHandlerTimeout))
}
