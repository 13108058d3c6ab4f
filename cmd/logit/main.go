// Command logit fits logistic-regression parameters to a comma-separated
// training file with batch gradient descent and prints them.
//
// Usage:
//
//	logit [flags] <path>
//
// Every line of the file is `f1,...,fk,label`; see package dataset for the
// exact format and the supported compressed encodings. Flags may also be set
// through LOGIT_* environment variables (LOGIT_ALPHA, LOGIT_ITERATIONS, ...).
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
