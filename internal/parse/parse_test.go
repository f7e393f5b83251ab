package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGridValid(t *testing.T) {
	m, err := Grid("1 2 3\n4 5 6\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("shape %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	if m.At(1, 2) != 6 {
		t.Errorf("At(1,2) = %v, want 6", m.At(1, 2))
	}
}

func TestGridWhitespaceAndBlankLines(t *testing.T) {
	m, err := Grid("\n  1\t 2  \n\n  3   4\n\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 2 {
		t.Errorf("shape %dx%d, want 2x2", m.Rows(), m.Cols())
	}
}

func TestGridNegativeAndDecimal(t *testing.T) {
	m, err := Grid("-1.5 2e3\n0.25 -0")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if m.At(0, 0) != -1.5 || m.At(0, 1) != 2000 {
		t.Errorf("row 0 = [%v %v]", m.At(0, 0), m.At(0, 1))
	}
}

func TestGridRaggedRows(t *testing.T) {
	_, err := Grid("1 2 3\n4 5\n")
	if err == nil {
		t.Fatal("expected error for ragged rows")
	}
	msg := err.Error()
	for _, want := range []string{"row 2", "2 values", "expected 3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestGridBadToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
	}{
		{"letters", "1 2\n3 abc", "abc"},
		{"stray punctuation", "1 2,5", "2,5"},
		{"infinity", "1 Inf", "Inf"},
		{"nan", "NaN 2", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Grid(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.token) {
				t.Errorf("error %q should name the token %q", err, tt.token)
			}
		})
	}
}

func TestGridEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n \t \n"} {
		_, err := Grid(input)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Grid(%q): expected ErrEmptyInput, got %v", input, err)
		}
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.txt")
	if err := os.WriteFile(path, []byte("1 1 2\n0 1 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := File(path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Errorf("shape %dx%d, want 2x3", m.Rows(), m.Cols())
	}
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
