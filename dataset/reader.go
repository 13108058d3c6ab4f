package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	fieldSep = ","

	// bias is prepended to every feature row.
	bias = 1.0

	// maxLineBytes bounds a single input line.
	maxLineBytes = 16 << 20
)

// Read parses training data from r. See the package doc for the format.
//
// Errors:
//   - *ParseError (matches ErrParse) for a non-numeric field or a ragged row.
//   - the reader's own error, wrapped, if reading fails.
//
// An input with no usable line yields an empty Dataset and no error.
func Read(r io.Reader) (*Dataset, error) {
	ds := &Dataset{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	width := -1
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		cut := strings.LastIndex(line, fieldSep)
		if cut < 0 {
			ds.Skipped++
			continue
		}

		label, err := parseField(line[cut+1:], lineNo)
		if err != nil {
			return nil, err
		}

		fields := strings.Split(line[:cut], fieldSep)
		row := make([]float64, 1, len(fields)+1)
		row[0] = bias
		for _, f := range fields {
			v, err := parseField(f, lineNo)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}

		// The first row fixes the width for the whole file.
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, &ParseError{
				Line: lineNo,
				Err:  fmt.Errorf("%d features, want %d: %w", len(row)-1, width-1, ErrRaggedRow),
			}
		}

		ds.X = append(ds.X, row)
		ds.Y = append(ds.Y, label)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read after line %d: %w", lineNo, err)
	}

	return ds, nil
}

// parseField trims surrounding whitespace (including a trailing \r) and
// parses the remainder as float64.
func parseField(s string, lineNo int) (float64, error) {
	t := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, &ParseError{Line: lineNo, Field: t, Err: err}
	}

	return v, nil
}
