// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads and writes the CSV results format of the
// GF(2) matrix multiplication benchmark framework.
//
// A results file is UTF-8, comma-separated, with a mandatory header
// row naming the columns Method, Duration_ms, Throughput_GOPS,
// Correct, and Matrix_Size. The columns may appear in any order, but
// all five must be present and no others.
package benchcsv

// A Result is a single benchmark measurement.
type Result struct {
	// Method is the computation strategy under benchmark, for
	// example "Serial", "SIMD", or "GPU". It is an opaque label;
	// this package does not interpret it.
	Method string

	// DurationMS is the wall-clock time of the run in milliseconds.
	DurationMS float64

	// ThroughputGOPS is the measured rate in giga-operations per
	// second.
	ThroughputGOPS float64

	// Correct reports whether the run produced the expected output.
	Correct bool

	// MatrixSize is the size parameter of the benchmarked
	// multiplication.
	MatrixSize int
}

// Column names of the results CSV header.
const (
	ColMethod     = "Method"
	ColDuration   = "Duration_ms"
	ColThroughput = "Throughput_GOPS"
	ColCorrect    = "Correct"
	ColMatrixSize = "Matrix_Size"
)

// Header lists the result columns in the order the benchmark
// framework writes them.
var Header = []string{ColMethod, ColDuration, ColThroughput, ColCorrect, ColMatrixSize}
