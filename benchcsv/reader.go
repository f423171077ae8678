// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// A LoadError describes a failure to load a results file: the file
// was missing or unreadable, its header did not match the expected
// schema, or a field failed to parse.
type LoadError struct {
	Path string
	Line int // 1-based line of the failure, or 0 if it has no line
	Msg  string
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// ReadFile reads the results file at path.
func ReadFile(path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Msg: err.Error()}
	}
	defer f.Close()
	return Read(f, path)
}

// Read reads results in CSV form from r. name is the file name used
// in errors; it is purely diagnostic.
//
// The header row is validated against Header as a set: the columns
// may be in any order, but a missing, renamed, or unrecognized column
// is a schema mismatch.
func Read(r io.Reader, name string) ([]Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	hdr, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{Path: name, Line: 1, Msg: "missing header row"}
	}
	if err != nil {
		return nil, &LoadError{Path: name, Line: 1, Msg: err.Error()}
	}
	col, err := indexHeader(hdr)
	if err != nil {
		return nil, &LoadError{Path: name, Line: 1, Msg: err.Error()}
	}

	var results []Result
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: name, Line: line, Msg: err.Error()}
		}
		res, err := parseRecord(rec, col)
		if err != nil {
			return nil, &LoadError{Path: name, Line: line, Msg: err.Error()}
		}
		results = append(results, res)
	}
	return results, nil
}

// indexHeader maps each expected column name to its position in hdr.
func indexHeader(hdr []string) (map[string]int, error) {
	col := make(map[string]int, len(hdr))
	for i, name := range hdr {
		if _, ok := col[name]; ok {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		col[name] = i
	}
	for _, name := range Header {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	for name := range col {
		if !isResultColumn(name) {
			return nil, fmt.Errorf("unrecognized column %q", name)
		}
	}
	return col, nil
}

func isResultColumn(name string) bool {
	for _, want := range Header {
		if name == want {
			return true
		}
	}
	return false
}

func parseRecord(rec []string, col map[string]int) (Result, error) {
	var res Result
	res.Method = rec[col[ColMethod]]

	var err error
	res.DurationMS, err = strconv.ParseFloat(rec[col[ColDuration]], 64)
	if err != nil {
		return res, fmt.Errorf("bad %s value %q", ColDuration, rec[col[ColDuration]])
	}
	res.ThroughputGOPS, err = strconv.ParseFloat(rec[col[ColThroughput]], 64)
	if err != nil {
		return res, fmt.Errorf("bad %s value %q", ColThroughput, rec[col[ColThroughput]])
	}

	// The framework writes correctness as 0 or 1.
	switch rec[col[ColCorrect]] {
	case "0":
		res.Correct = false
	case "1":
		res.Correct = true
	default:
		return res, fmt.Errorf("bad %s value %q", ColCorrect, rec[col[ColCorrect]])
	}

	res.MatrixSize, err = strconv.Atoi(rec[col[ColMatrixSize]])
	if err != nil {
		return res, fmt.Errorf("bad %s value %q", ColMatrixSize, rec[col[ColMatrixSize]])
	}
	return res, nil
}
