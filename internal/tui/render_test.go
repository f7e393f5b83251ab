package tui

import (
	"testing"

	"github.com/san-kum/rreflab/internal/matrix"
)

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"rounding residue", 1e-15, 0},
		{"negative residue", -3e-12, 0},
		{"exact zero", 0, 0},
		{"one", 1.0, 1.0},
		{"small but real", 1e-6, 1e-6},
		{"negative", -2.5, -2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayValue(tt.in); got != tt.want {
				t.Errorf("DisplayValue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		in        float64
		precision int
		want      string
	}{
		{1.0, 3, "1"},
		{0.5, 3, "0.5"},
		{-2.25, 3, "-2.25"},
		{1e-14, 3, "0"},
		{-1e-14, 3, "0"},
		{1.0 / 3.0, 3, "0.333"},
		{2, 0, "2"},
	}

	for _, tt := range tests {
		if got := FormatCell(tt.in, tt.precision); got != tt.want {
			t.Errorf("FormatCell(%v, %d) = %q, want %q", tt.in, tt.precision, got, tt.want)
		}
	}
}

func TestLeadingOneColumns(t *testing.T) {
	m, err := matrix.New(3, 4, []float64{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 0, 0,
	})
	if err != nil {
		t.Fatal(err)
	}

	cols := leadingOneColumns(m)
	if !cols[0] || !cols[1] {
		t.Errorf("expected columns 0 and 1 to lead, got %v", cols)
	}
	if cols[2] || cols[3] {
		t.Errorf("columns 2 and 3 should not lead, got %v", cols)
	}
}
