// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"math"
	"testing"

	"github.com/gf2lab/gf2stat/benchcsv"
)

// sampleResults is the example dataset the benchmark framework
// produced: one measurement per method per size.
func sampleResults() []benchcsv.Result {
	sizes := []int{4096, 16384, 65536, 262144, 1048576}
	durations := map[string][]float64{
		"Serial": {0.236342, 1.92898, 13.0472, 95.677, 779.444},
		"SIMD":   {0.0310334, 0.184575, 0.793108, 3.48052, 16.9034},
		"GPU":    {1.50503, 2.63753, 3.33076, 7.67591, 20.6245},
	}
	throughputs := map[string][]float64{
		"Serial": {1.10917, 1.08718, 1.28588, 1.40282, 1.37757},
		"SIMD":   {8.44716, 11.3621, 21.1537, 38.5626, 63.5222},
		"GPU":    {0.174178, 0.795119, 5.03706, 17.4856, 52.0615},
	}

	var results []benchcsv.Result
	for i, size := range sizes {
		for _, method := range []string{"Serial", "SIMD", "GPU"} {
			results = append(results, benchcsv.Result{
				Method:         method,
				DurationMS:     durations[method][i],
				ThroughputGOPS: throughputs[method][i],
				Correct:        true,
				MatrixSize:     size,
			})
		}
	}
	return results
}

func TestFromResults(t *testing.T) {
	tab := FromResults(sampleResults())
	if tab.Len() != 15 {
		t.Fatalf("got %d rows, want 15", tab.Len())
	}
	methods := tab.MustColumn(ColMethod).([]string)
	if methods[0] != "Serial" || methods[1] != "SIMD" || methods[2] != "GPU" {
		t.Errorf("got methods %v, want input order preserved", methods[:3])
	}
	if d := tab.MustColumn(ColDuration).([]float64); d[0] != 0.236342 {
		t.Errorf("got first duration %v, want 0.236342", d[0])
	}
}

func TestAddLogSize(t *testing.T) {
	tab := FromResults(sampleResults())
	aug, err := AddLogSize(tab)
	if err != nil {
		t.Fatal(err)
	}
	if aug.Len() != tab.Len() {
		t.Fatalf("got %d rows, want %d", aug.Len(), tab.Len())
	}

	sizes := aug.MustColumn(ColMatrixSize).([]int)
	logs := aug.MustColumn(ColLogSize).([]float64)
	for i, size := range sizes {
		// log2(sqrt(x)) is log2(x)/2.
		want := math.Log2(float64(size)) / 2
		if math.Abs(logs[i]-want) > 1e-12 {
			t.Errorf("row %d: got %v, want %v", i, logs[i], want)
		}
	}
	if logs[0] != 6.0 {
		t.Errorf("log2(sqrt(4096)): got %v, want exactly 6", logs[0])
	}

	// The source columns are untouched.
	if d := aug.MustColumn(ColDuration).([]float64); d[0] != 0.236342 {
		t.Errorf("got first duration %v after transform, want 0.236342", d[0])
	}
}

func TestAddLogSizeIdempotent(t *testing.T) {
	aug, err := AddLogSize(FromResults(sampleResults()))
	if err != nil {
		t.Fatal(err)
	}
	again, err := AddLogSize(aug)
	if err != nil {
		t.Fatal(err)
	}
	if again.Len() != aug.Len() {
		t.Fatalf("got %d rows, want %d", again.Len(), aug.Len())
	}
	first := aug.MustColumn(ColLogSize).([]float64)
	second := again.MustColumn(ColLogSize).([]float64)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d: got %v then %v", i, first[i], second[i])
		}
	}
}

func TestAddLogSizeDomainError(t *testing.T) {
	for _, size := range []int{0, -5} {
		results := sampleResults()
		results[3].MatrixSize = size
		_, err := AddLogSize(FromResults(results))
		var derr *DomainError
		if !errors.As(err, &derr) {
			t.Fatalf("size %d: got %T (%v), want *DomainError", size, err, err)
		}
		if derr.Row != 3 || derr.Size != size {
			t.Errorf("size %d: got row %d size %d, want row 3 size %d", size, derr.Row, derr.Size, size)
		}
	}
}
