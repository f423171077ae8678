// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// A Key identifies one partition of the measurements: one method at
// one matrix size.
type Key struct {
	Method     string
	MatrixSize int
}

// A Group holds the aggregate statistics of one partition.
type Group struct {
	Key Key

	// N is the number of measurements in the partition.
	N int

	// Mean is the arithmetic mean of the aggregated column.
	Mean float64

	// Std is the sample standard deviation (n−1 denominator) of
	// the aggregated column. It is NaN when N == 1 and exactly 0
	// when all N ≥ 2 values are identical.
	Std float64
}

// A Collection holds the per-partition aggregates of one numeric
// column across a whole table.
type Collection struct {
	// Field is the aggregated column, ColDuration or ColThroughput.
	Field string

	// Methods lists the distinct methods in order of first
	// appearance in the source table.
	Methods []string

	// Sizes lists the distinct matrix sizes in ascending order.
	Sizes []int

	// Groups maps each (method, size) pair that occurs in the
	// source table to its aggregate.
	Groups map[Key]Group
}

// Aggregate partitions t by (Method, Matrix_Size) and computes the
// mean and sample standard deviation of field, which must be
// ColDuration or ColThroughput, for every partition.
func Aggregate(t *table.Table, field string) (*Collection, error) {
	switch field {
	case ColDuration, ColThroughput:
	default:
		return nil, fmt.Errorf("cannot aggregate column %q: want %s or %s", field, ColDuration, ColThroughput)
	}

	c := &Collection{Field: field, Groups: make(map[Key]Group)}
	for _, m := range t.MustColumn(ColMethod).([]string) {
		if !containsString(c.Methods, m) {
			c.Methods = append(c.Methods, m)
		}
	}
	seen := make(map[int]bool)
	for _, n := range t.MustColumn(ColMatrixSize).([]int) {
		if !seen[n] {
			seen[n] = true
			c.Sizes = append(c.Sizes, n)
		}
	}
	sort.Ints(c.Sizes)

	// Sort by size first so the grouped rows come out in ascending
	// size order per method.
	sorted := table.SortBy(t, ColMatrixSize)
	flat := table.Flatten(ggstat.Agg(ColMethod, ColMatrixSize)(
		ggstat.AggMean(field), aggStd(field), ggstat.AggCount("n")).F(sorted))

	methods := flat.MustColumn(ColMethod).([]string)
	sizes := flat.MustColumn(ColMatrixSize).([]int)
	means := flat.MustColumn("mean " + field).([]float64)
	stds := flat.MustColumn("std " + field).([]float64)
	ns := flat.MustColumn("n").([]int)
	for i := range methods {
		k := Key{Method: methods[i], MatrixSize: sizes[i]}
		c.Groups[k] = Group{Key: k, N: ns[i], Mean: means[i], Std: stds[i]}
	}
	return c, nil
}

// Group returns the aggregate for method at size.
func (c *Collection) Group(method string, size int) (Group, bool) {
	g, ok := c.Groups[Key{Method: method, MatrixSize: size}]
	return g, ok
}

// MethodGroups returns the aggregates of one method in ascending
// matrix size order, skipping sizes the method was not measured at.
func (c *Collection) MethodGroups(method string) []Group {
	var groups []Group
	for _, size := range c.Sizes {
		if g, ok := c.Group(method, size); ok {
			groups = append(groups, g)
		}
	}
	return groups
}

// aggStd returns an aggregate function that computes the sample
// standard deviation of col, named "std <col>". ggstat has no stock
// standard deviation aggregator.
func aggStd(col string) ggstat.Aggregator {
	return func(input table.Grouping, b *table.Builder) {
		stds := make([]float64, 0, len(input.Tables()))
		for _, gid := range input.Tables() {
			stds = append(stds, stdDev(input.Table(gid).MustColumn(col).([]float64)))
		}
		b.Add("std "+col, stds)
	}
}

// stdDev returns the sample standard deviation of xs, with the n−1
// denominator. A single value has no spread to estimate, so the
// result is NaN; identical values yield exactly 0.
func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mean := stats.Mean(xs)
	var m2 float64
	for _, x := range xs {
		d := x - mean
		m2 += d * d
	}
	return math.Sqrt(m2 / float64(len(xs)-1))
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
