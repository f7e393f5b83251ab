// Package parse turns whitespace-separated numeric text into a matrix.
// Rows sit on their own lines, values within a row are separated by runs of
// whitespace, and every row must carry the same number of values.
package parse

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/rreflab/internal/matrix"
)

// ErrEmptyInput is returned when the text contains no rows at all.
var ErrEmptyInput = errors.New("empty input: no matrix rows found")

// Grid parses text into a matrix. Blank lines are skipped. Errors name the
// offending row (1-based), token, or column count so the caller can surface
// them directly.
func Grid(text string) (*matrix.Matrix, error) {
	var (
		values []float64
		cols   int
		rows   int
	)

	for i, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("row %d has %d values, expected %d (line %d)",
				rows+1, len(fields), cols, i+1)
		}

		for c, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: cannot parse %q as a number",
					rows+1, c+1, tok)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d, column %d: %q is not a finite number",
					rows+1, c+1, tok)
			}
			values = append(values, v)
		}
		rows++
	}

	if rows == 0 {
		return nil, ErrEmptyInput
	}

	return matrix.New(rows, cols, values)
}

// File reads path and parses its contents as a matrix grid.
func File(path string) (*matrix.Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Grid(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
