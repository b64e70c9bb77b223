// Package health holds the body-measurement formulas: body mass index,
// Widmark blood alcohol estimate and waist-to-hip ratio.
//
// All functions are pure and return ErrInvalidInput for non-positive or
// non-finite measurements.
package health
