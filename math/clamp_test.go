// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestClampMin(t *testing.T) {
	v := Clamp(1, 0, 10)
	if v != 1 {
		t.Errorf("Clamp(1,0,10) = %v", v)
	}
}

func TestClampMax(t *testing.T) {
	v := Clamp(1, 100, 10)
	if v != 10 {
		t.Errorf("Clamp(1,100,10) = %v", v)
	}
}

func TestClampVal(t *testing.T) {
	v := Clamp(1, 5, 10)
	if v != 5 {
		t.Errorf("Clamp(1,5,10) = %v", v)
	}
}

func TestClampFloat(t *testing.T) {
	v := Clamp(0, 1.5, 1.0)
	if v != 1 {
		t.Errorf("Clamp(0,1.5,1) = %v", v)
	}
}

func TestLerp(t *testing.T) {
	for _, tc := range []struct {
		a, b, frac, want float64
	}{
		{-2, 2, 0, -2},
		{-2, 2, 1, 2},
		{-2, 2, 0.5, 0},
		{0, 10, 0.25, 2.5},
	} {
		got := Lerp(tc.a, tc.b, tc.frac)
		if got != tc.want {
			t.Errorf("Lerp(%v,%v,%v) = %v, want %v", tc.a, tc.b, tc.frac, got, tc.want)
		}
	}
}
