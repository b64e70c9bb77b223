// Package finance implements the closed-form loan and savings formulas used by
// the calculator pages.
//
// What is inside?
//
//   - EMI: equated monthly instalment P·r·(1+r)^n / ((1+r)^n − 1) with the
//     monthly rate r = annual% / 12 / 100. A zero rate degenerates to P/n.
//   - Amortize: the month-by-month split of every instalment into interest
//     and principal, with the remaining balance and running totals.
//   - CompoundInterest: A = P·(1 + r/k)^(k·t) for k compounding periods a year.
//   - SIP: future value of a monthly investment paid at the start of every
//     month, M·((1+i)^n − 1)/i·(1+i). A zero rate gives M·n.
//
// Rates are annual percentages (12 means 12 %). Every function validates its
// arguments and returns ErrInvalidInput for non-positive amounts or terms,
// negative rates and non-finite numbers.
package finance
