// Package dataset loads labelled training data from comma-separated text.
//
// Every line is `f1,f2,...,fk,label`. The line is split on its LAST comma:
// the left part holds the features, the right part the label. A bias value
// of 1.0 is prepended to every feature row, so Features() == k+1.
//
// Lines without any comma are skipped and counted in Dataset.Skipped; they
// are not reported as errors. Blank lines fall under the same rule.
//
// Load picks a decompressor from the file extension:
//
//	.gz          gzip  (github.com/klauspost/compress/gzip)
//	.zst .zstd   zstd  (github.com/klauspost/compress/zstd)
//	.lz4         lz4 frame (github.com/pierrec/lz4/v4)
//	other        plain text
//
// Beyond parsing, a Dataset can be packed into a matrix.Dense, flattened,
// fingerprinted (xxhash64 over the parsed values), summarised per column and
// standardised in place.
package dataset
