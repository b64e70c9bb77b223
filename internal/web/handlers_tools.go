package web

import (
	"net/http"

	"github.com/katalvlaran/lvcalc/convert"
	"github.com/katalvlaran/lvcalc/finance"
	"github.com/katalvlaran/lvcalc/health"
)

// ------------------------------
// Finance
// ------------------------------

type loanRequest struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"` // annual, percent
	Months    int     `json:"months"`
}

type emiResult struct {
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
}

func (s *Server) handleEMI(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	emi, err := finance.EMI(req.Principal, req.Rate, req.Months)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	total := emi * float64(req.Months)
	respondResult(w, r, emiResult{EMI: emi, TotalPayment: total, TotalInterest: total - req.Principal})
}

func (s *Server) handleAmortization(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	sch, err := finance.Amortize(req.Principal, req.Rate, req.Months)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, sch)
}

type compoundRequest struct {
	Principal    float64 `json:"principal"`
	Rate         float64 `json:"rate"`
	Years        float64 `json:"years"`
	TimesPerYear int     `json:"timesPerYear"`
}

func (s *Server) handleCompound(w http.ResponseWriter, r *http.Request) {
	req := compoundRequest{TimesPerYear: 1}
	if !s.decodeJSON(w, r, &req) {
		return
	}

	g, err := finance.CompoundInterest(req.Principal, req.Rate, req.Years, req.TimesPerYear)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, g)
}

type sipRequest struct {
	Monthly float64 `json:"monthly"`
	Rate    float64 `json:"rate"`
	Months  int     `json:"months"`
}

func (s *Server) handleSIP(w http.ResponseWriter, r *http.Request) {
	var req sipRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	g, err := finance.SIP(req.Monthly, req.Rate, req.Months)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, g)
}

// ------------------------------
// Health
// ------------------------------

type bmiRequest struct {
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm"`
}

func (s *Server) handleBMI(w http.ResponseWriter, r *http.Request) {
	var req bmiRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	res, err := health.BMI(req.WeightKg, req.HeightCm)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, res)
}

type bacRequest struct {
	AlcoholGrams float64 `json:"alcoholGrams"`
	WeightKg     float64 `json:"weightKg"`
	Sex          string  `json:"sex"`
	Hours        float64 `json:"hours"`
}

type bacResult struct {
	BAC float64 `json:"bac"` // percent
}

func (s *Server) handleBAC(w http.ResponseWriter, r *http.Request) {
	var req bacRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	sex, err := health.ParseSex(req.Sex)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	v, err := health.BAC(req.AlcoholGrams, req.WeightKg, sex, req.Hours)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, bacResult{BAC: v})
}

type whrRequest struct {
	Waist float64 `json:"waist"`
	Hip   float64 `json:"hip"`
}

type whrResult struct {
	Ratio float64 `json:"ratio"`
}

func (s *Server) handleWaistToHip(w http.ResponseWriter, r *http.Request) {
	var req whrRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	v, err := health.WaistToHip(req.Waist, req.Hip)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, whrResult{Ratio: v})
}

// ------------------------------
// Conversions
// ------------------------------

// romanRequest converts Number to a numeral when set, Numeral to a number otherwise.
type romanRequest struct {
	Number  *int   `json:"number,omitempty"`
	Numeral string `json:"numeral,omitempty"`
}

type romanResult struct {
	Number  int    `json:"number"`
	Numeral string `json:"numeral"`
}

func (s *Server) handleRoman(w http.ResponseWriter, r *http.Request) {
	var req romanRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if req.Number != nil {
		numeral, err := convert.ToRoman(*req.Number)
		if err != nil {
			respondUnavailable(w, r, err)

			return
		}
		respondResult(w, r, romanResult{Number: *req.Number, Numeral: numeral})

		return
	}

	n, err := convert.FromRoman(req.Numeral)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	canon, _ := convert.ToRoman(n)
	respondResult(w, r, romanResult{Number: n, Numeral: canon})
}

type baseRequest struct {
	Digits string `json:"digits"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

type baseResult struct {
	Digits string `json:"digits"`
	Base   int    `json:"base"`
}

func (s *Server) handleBase(w http.ResponseWriter, r *http.Request) {
	var req baseRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	out, err := convert.ConvertBase(req.Digits, req.From, req.To)
	if err != nil {
		respondUnavailable(w, r, err)

		return
	}
	respondResult(w, r, baseResult{Digits: out, Base: req.To})
}
