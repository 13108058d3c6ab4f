// Package matrix provides the row-major float64 storage used for training
// data in logit.
//
// The matrix package provides:
//
//   - Dense, a contiguous row-major r×c buffer with bounds-checked At/Set
//     that return sentinel errors instead of panicking.
//   - FromRows, which packs a jagged [][]float64 into a Dense after checking
//     that every row has the width of the first one.
//   - Row and RowSlices, no-copy views used by hot numeric loops.
//   - Validators (ValidateNotNil, ValidateVecLen, ValidateRowWidths,
//     ValidateFinite) shared with the logistic and dataset packages.
//
// Numeric policy: Dense rejects NaN and ±Inf on Set and FromRows unless the
// matrix was created with WithNoValidateNaNInf.
//
// See example_test.go for usage patterns.
package matrix
