// Package lvcalc is a toolbox of small numeric calculators: expression
// evaluation, numerical calculus, matrix and statistics helpers, plus
// everyday finance, health and conversion tools.
//
// 🚀 What is inside?
//
//	Every calculator is a pure Go package returning plain results or
//	sentinel errors, so the same code backs both the CLI and the HTTP API:
//		• expr:     arithmetic expressions in one variable x (govaluate)
//		• calculus: derivative, one-/two-sided limit, Simpson and Gauss integrals
//		• matrix:   free-text grid parsing, transpose, determinant up to 3×3
//		• stats:    summary, modes, variance, standard deviation, percentiles
//		• finance:  EMI, amortization schedule, compound interest, SIP
//		• health:   BMI, blood alcohol estimate, waist-to-hip ratio
//		• convert:  Roman numerals and positional bases 2..36
//
// Outer surfaces live under cmd/ and internal/:
//
//	cmd/lvcalc/        cobra CLI (eval, deriv, limit, integrate, matrix, stats, serve …)
//	internal/config/   defaults, TOML/YAML file, .env and LVCALC_* environment
//	internal/logging/  log/slog setup and request-scoped loggers
//	internal/web/      chi router exposing every calculator as JSON under /api
//
// Quick example:
//
//	$ lvcalc stats "10, 15, 15, 20, 20" --percentile 50
//	$ lvcalc serve --config lvcalc.toml
//
//	go install github.com/katalvlaran/lvcalc/cmd/lvcalc@latest
package lvcalc
