// Package readmatrix reads whitespace separated numeric tables.
package readmatrix

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ReadMatrix reads the table stored in filename. See Read.
func ReadMatrix(filename string) (*mat.Dense, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()
	return Read(file)
}

// Read parses rows of tab or space separated numbers. Blank lines and lines
// starting with '#' are skipped, as is a first line holding non-numeric
// column names. All rows must have the same number of fields.
func Read(r io.Reader) (*mat.Dense, error) {
	var (
		rows    [][]float64
		line    int
		started bool
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		if !started {
			started = true
			if !allNumeric(fields) {
				continue
			}
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", line, i+1)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Errorf("line %d: inconsistent number of columns: expected %d, got %d",
				line, len(rows[0]), len(row))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading table")
	}
	if len(rows) == 0 {
		return nil, errors.New("table has no data rows")
	}

	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}

func allNumeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}

// SplitLabels separates the last column of m as integer class labels and
// returns the remaining feature columns.
func SplitLabels(m *mat.Dense) (*mat.Dense, []int, error) {
	r, c := m.Dims()
	if c < 2 {
		return nil, nil, errors.Errorf("need a feature column and a label column, got %d columns", c)
	}
	labels := make([]int, r)
	for i := range r {
		v := m.At(i, c-1)
		if v != math.Trunc(v) {
			return nil, nil, errors.Errorf("row %d: label %v is not an integer", i+1, v)
		}
		labels[i] = int(v)
	}
	features := mat.DenseCopyOf(m.Slice(0, r, 0, c-1))
	return features, labels, nil
}
