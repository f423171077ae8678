// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>GF2 Benchmark Results</title>
<style>
.gf2stat { border-collapse: collapse; }
.gf2stat th:nth-child(1) { text-align: left; }
.gf2stat td { text-align: right; padding: 0em 1em; }
.gf2stat th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
</style>
</head>
<body>
`

var htmlFooter = `</body>
</html>
`
