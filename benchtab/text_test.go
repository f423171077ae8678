// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func smallCollection() *Collection {
	k := Key{Method: "Serial", MatrixSize: 4096}
	return &Collection{
		Field:   ColDuration,
		Methods: []string{"Serial"},
		Sizes:   []int{4096},
		Groups:  map[Key]Group{k: {Key: k, N: 1, Mean: 0.25, Std: math.NaN()}},
	}
}

func TestFormatText(t *testing.T) {
	var buf bytes.Buffer
	FormatText(&buf, []*Collection{smallCollection()})

	want := "Grouped Duration_ms (mean and std):\n" +
		"\n" +
		"Method: Serial\n" +
		"Matrix_Size  n  mean  std\n" +
		"       4096  1  0.25  NaN\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTextSample(t *testing.T) {
	tab := FromResults(sampleResults())
	duration, err := Aggregate(tab, ColDuration)
	if err != nil {
		t.Fatal(err)
	}
	throughput, err := Aggregate(tab, ColThroughput)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	FormatText(&buf, []*Collection{duration, throughput})
	out := buf.String()

	for _, want := range []string{
		"Grouped Duration_ms (mean and std):",
		"Grouped Throughput_GOPS (mean and std):",
		"Method: Serial",
		"Method: SIMD",
		"Method: GPU",
		"779.444",
		"63.5222",
		"NaN",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatHTML(t *testing.T) {
	var buf bytes.Buffer
	FormatHTML(&buf, []*Collection{smallCollection()})
	out := buf.String()

	for _, want := range []string{
		"<h2>Grouped Duration_ms (mean and std)</h2>",
		"<h3>Serial</h3>",
		"<td>4096<td>1<td>0.25<td>NaN",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
