// SPDX-License-Identifier: GPL-2.0-or-later

package app

import (
	"testing"
	"time"
)

func TestFrameSleep(t *testing.T) {
	tests := []struct {
		vsync, focus, minimized bool
		want                    time.Duration
	}{
		{true, true, false, 0},
		{false, true, false, 16 * time.Millisecond},
		{true, false, false, 16 * time.Millisecond},
		{true, false, true, 32 * time.Millisecond},
		{true, true, true, 32 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := frameSleep(tc.vsync, tc.focus, tc.minimized); got != tc.want {
			t.Errorf("frameSleep(%v, %v, %v) = %v, want %v", tc.vsync, tc.focus, tc.minimized, got, tc.want)
		}
	}
}
