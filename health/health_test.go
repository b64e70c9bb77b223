// SPDX-License-Identifier: MIT

package health_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcalc/health"
)

func TestBMI(t *testing.T) {
	cases := []struct {
		w, h float64
		want string
	}{
		{50, 180, "underweight"},
		{70, 175, "normal"},
		{85, 175, "overweight"},
		{110, 175, "obese"},
	}
	for _, tc := range cases {
		r, err := health.BMI(tc.w, tc.h)
		require.NoError(t, err)
		require.Equal(t, tc.want, r.Category, "w=%v h=%v", tc.w, tc.h)
	}

	r, err := health.BMI(72, 180)
	require.NoError(t, err)
	require.InDelta(t, 22.2222, r.Value, 1e-4)

	_, err = health.BMI(70, 0)
	require.ErrorIs(t, err, health.ErrInvalidInput)
}

func TestBAC(t *testing.T) {
	// 28 g, 80 kg male, just now: 28/(80000·0.68)·100.
	v, err := health.BAC(28, 80, health.Male, 0)
	require.NoError(t, err)
	require.InDelta(t, 28.0/(80000*0.68)*100, v, 1e-12)

	// Same intake for a female body is higher.
	f, err := health.BAC(28, 80, health.Female, 0)
	require.NoError(t, err)
	require.Greater(t, f, v)

	// Elimination over time, clamped at 0.
	later, err := health.BAC(28, 80, health.Male, 2)
	require.NoError(t, err)
	require.InDelta(t, v-0.03, later, 1e-12)

	gone, err := health.BAC(28, 80, health.Male, 24)
	require.NoError(t, err)
	require.Equal(t, 0.0, gone)

	_, err = health.BAC(28, 80, health.Male, -1)
	require.ErrorIs(t, err, health.ErrInvalidInput)
	_, err = health.BAC(math.NaN(), 80, health.Male, 0)
	require.ErrorIs(t, err, health.ErrInvalidInput)
	_, err = health.BAC(28, 80, health.Sex(7), 0)
	require.ErrorIs(t, err, health.ErrInvalidInput)
}

func TestParseSex(t *testing.T) {
	s, err := health.ParseSex("f")
	require.NoError(t, err)
	require.Equal(t, health.Female, s)

	_, err = health.ParseSex("x")
	require.ErrorIs(t, err, health.ErrInvalidInput)
}

func TestWaistToHip(t *testing.T) {
	v, err := health.WaistToHip(80, 100)
	require.NoError(t, err)
	require.Equal(t, 0.8, v)

	_, err = health.WaistToHip(80, -1)
	require.ErrorIs(t, err, health.ErrInvalidInput)
}
