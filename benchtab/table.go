// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab turns raw GF(2) benchmark measurements into
// grouped statistics.
//
// The package represents measurements as a go-gg table whose columns
// are named after the results CSV header. A table is immutable; the
// one transformation this package applies, AddLogSize, produces a new
// table with a derived column and leaves the source columns alone.
// Aggregate then partitions a table by (method, matrix size) and
// computes the mean and sample standard deviation of a numeric
// column per partition.
package benchtab

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"

	"github.com/gf2lab/gf2stat/benchcsv"
)

// Table column names. The CSV columns keep their header names; the
// derived column is the one the analysis adds.
const (
	ColMethod     = benchcsv.ColMethod
	ColDuration   = benchcsv.ColDuration
	ColThroughput = benchcsv.ColThroughput
	ColCorrect    = benchcsv.ColCorrect
	ColMatrixSize = benchcsv.ColMatrixSize

	// ColLogSize is the derived column log2(sqrt(Matrix_Size)).
	ColLogSize = "Log2_Sqrt_Matrix_Size"
)

// FromResults builds a table from results, one row per measurement,
// in input order.
func FromResults(results []benchcsv.Result) *table.Table {
	methods := make([]string, len(results))
	durations := make([]float64, len(results))
	throughputs := make([]float64, len(results))
	corrects := make([]bool, len(results))
	sizes := make([]int, len(results))
	for i, res := range results {
		methods[i] = res.Method
		durations[i] = res.DurationMS
		throughputs[i] = res.ThroughputGOPS
		corrects[i] = res.Correct
		sizes[i] = res.MatrixSize
	}
	return new(table.Builder).
		Add(ColMethod, methods).
		Add(ColDuration, durations).
		Add(ColThroughput, throughputs).
		Add(ColCorrect, corrects).
		Add(ColMatrixSize, sizes).
		Done()
}

// A DomainError reports a Matrix_Size value for which the derived
// column is undefined.
type DomainError struct {
	Row  int // 0-based row index
	Size int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("row %d: %s must be positive, have %d", e.Row, ColMatrixSize, e.Size)
}

// AddLogSize returns t with the derived column Log2_Sqrt_Matrix_Size,
// computed per row as log2(sqrt(Matrix_Size)). Row count and order
// are preserved. If t already has the derived column it is replaced
// with identical values.
//
// AddLogSize fails with a *DomainError if any Matrix_Size is not
// positive, since the logarithm is undefined there.
func AddLogSize(t *table.Table) (*table.Table, error) {
	for i, n := range t.MustColumn(ColMatrixSize).([]int) {
		if n <= 0 {
			return nil, &DomainError{Row: i, Size: n}
		}
	}
	g := table.MapCols(t, func(sizes []int, logs []float64) {
		for i, n := range sizes {
			logs[i] = math.Log2(math.Sqrt(float64(n)))
		}
	}, ColMatrixSize)(ColLogSize)
	return table.Flatten(g), nil
}
