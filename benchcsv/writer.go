// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// Write writes results to w in the framework's CSV form, header
// first, columns in Header order.
func Write(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, res := range results {
		correct := "0"
		if res.Correct {
			correct = "1"
		}
		rec := []string{
			res.Method,
			strconv.FormatFloat(res.DurationMS, 'g', -1, 64),
			strconv.FormatFloat(res.ThroughputGOPS, 'g', -1, 64),
			correct,
			strconv.Itoa(res.MatrixSize),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes results to a new file at path.
func WriteFile(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
