// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package parallel

import "testing"

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		bandHeight int
		want       []Band
	}{
		{"exact", 32, 16, []Band{{0, 16}, {16, 32}}},
		{"remainder", 35, 16, []Band{{0, 16}, {16, 32}, {32, 35}}},
		{"single short", 5, 16, []Band{{0, 5}}},
		{"default height", 20, 0, []Band{{0, 16}, {16, 20}}},
		{"empty", 0, 16, nil},
		{"negative", -4, 16, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRows(tt.height, tt.bandHeight)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitRows(%d, %d) = %v, want %v", tt.height, tt.bandHeight, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitRows_CoversEveryRowOnce(t *testing.T) {
	const height = 451
	seen := make([]int, height)
	for _, b := range SplitRows(height, 7) {
		if b.Rows() <= 0 {
			t.Fatalf("empty band %v", b)
		}
		for y := b.Y0; y < b.Y1; y++ {
			seen[y]++
		}
	}
	for y, n := range seen {
		if n != 1 {
			t.Errorf("row %d covered %d times, want 1", y, n)
		}
	}
}
