// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gf2stat analyzes GF(2) matrix multiplication benchmark results.
//
// Usage:
//
//	gf2stat [options] [results.csv]
//
// The input is the CSV file the benchmark framework writes, with the
// header Method,Duration_ms,Throughput_GOPS,Correct,Matrix_Size. With
// no file argument, gf2stat reads ../gf2_test_results.csv, the path
// the framework uses relative to its analysis directory.
//
// For Duration_ms and Throughput_GOPS, gf2stat groups the rows by
// method and matrix size, computes the mean and sample standard
// deviation of each group, and prints one table per method to
// standard output. A group holding a single measurement has no
// estimable spread; its standard deviation is reported as NaN.
//
// Unless -o is empty, gf2stat also renders three charts into one PNG:
// duration against log2(sqrt(Matrix_Size)) on a log scale, and
// throughput against log2(sqrt(Matrix_Size)) on linear and log
// scales, with standard deviations drawn as error bars.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gf2lab/gf2stat/benchchart"
	"github.com/gf2lab/gf2stat/benchcsv"
	"github.com/gf2lab/gf2stat/benchtab"
)

// defaultInput is where the benchmark framework saves its results,
// relative to its analysis directory.
const defaultInput = "../gf2_test_results.csv"

var (
	flagChart = flag.String("o", "gf2_results.png", "write charts to PNG `file`; empty disables charting")
	flagHTML  = flag.Bool("html", false, "print tables as an HTML page")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: gf2stat [options] [results.csv]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("gf2stat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	path := defaultInput
	switch flag.NArg() {
	case 0:
	case 1:
		path = flag.Arg(0)
	default:
		flag.Usage()
	}

	if err := run(path, *flagChart, *flagHTML, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run executes the pipeline: load, derive, aggregate, report.
func run(path, chartPath string, html bool, w io.Writer) error {
	results, err := benchcsv.ReadFile(path)
	if err != nil {
		return err
	}
	tab := benchtab.FromResults(results)
	tab, err = benchtab.AddLogSize(tab)
	if err != nil {
		return err
	}

	duration, err := benchtab.Aggregate(tab, benchtab.ColDuration)
	if err != nil {
		return err
	}
	throughput, err := benchtab.Aggregate(tab, benchtab.ColThroughput)
	if err != nil {
		return err
	}
	cols := []*benchtab.Collection{duration, throughput}

	var buf bytes.Buffer
	if html {
		buf.WriteString(htmlHeader)
		benchtab.FormatHTML(&buf, cols)
		buf.WriteString(htmlFooter)
	} else {
		benchtab.FormatText(&buf, cols)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if chartPath != "" {
		if err := benchchart.WritePNG(chartPath, duration, throughput); err != nil {
			return fmt.Errorf("writing charts: %v", err)
		}
	}
	return nil
}
