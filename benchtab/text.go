// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// FormatText appends a fixed-width text formatting of the collections
// to buf: one labeled block per aggregated column per method, rows
// indexed by matrix size. A degenerate standard deviation prints as
// NaN.
func FormatText(buf *bytes.Buffer, cols []*Collection) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprintf(buf, "\n")
		}
		fmt.Fprintf(buf, "Grouped %s (mean and std):\n", c.Field)
		for _, method := range c.Methods {
			fmt.Fprintf(buf, "\nMethod: %s\n", method)
			rows := [][]string{{ColMatrixSize, "n", "mean", "std"}}
			for _, g := range c.MethodGroups(method) {
				rows = append(rows, []string{
					strconv.Itoa(g.Key.MatrixSize),
					strconv.Itoa(g.N),
					fmt.Sprintf("%.6g", g.Mean),
					fmt.Sprintf("%.6g", g.Std),
				})
			}
			writeAligned(buf, rows)
		}
	}
}

// writeAligned writes rows with each column right-aligned to its
// widest cell.
func writeAligned(buf *bytes.Buffer, rows [][]string) {
	var max []int
	for _, row := range rows {
		for len(max) < len(row) {
			max = append(max, 0)
		}
		for i, s := range row {
			if n := utf8.RuneCountInString(s); n > max[i] {
				max[i] = n
			}
		}
	}
	for _, row := range rows {
		for i, s := range row {
			if i > 0 {
				buf.WriteString("  ")
			}
			fmt.Fprintf(buf, "%*s", max[i], s)
		}
		fmt.Fprintf(buf, "\n")
	}
}
