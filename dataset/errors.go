package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the input path does not exist.
	ErrFileNotFound = errors.New("dataset: file not found")

	// ErrPermissionDenied indicates the input path exists but cannot be read.
	ErrPermissionDenied = errors.New("dataset: permission denied")

	// ErrOpen indicates any other failure to open the input path.
	ErrOpen = errors.New("dataset: can not open file")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("dataset: parse error")

	// ErrRaggedRow indicates a row whose feature count differs from the first row.
	ErrRaggedRow = errors.New("dataset: row width differs from first row")

	// ErrDecompress indicates a corrupt or truncated compressed stream.
	ErrDecompress = errors.New("dataset: decompression failed")

	// ErrEmpty indicates an operation that needs at least one row.
	ErrEmpty = errors.New("dataset: no rows")
)

// ParseError reports a malformed line. Line is 1-based and counts every
// physical line, skipped ones included.
type ParseError struct {
	Line  int    // 1-based line number
	Field string // offending field text after trimming; unused for ragged rows
	Err   error  // underlying cause (strconv error or ErrRaggedRow)
}

// Error implements error.
func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrRaggedRow) {
		return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("dataset: line %d: field %q: %v", e.Line, e.Field, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
