// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"bytes"
	"fmt"
	"html/template"
)

var htmlTemplate = template.Must(template.New("").Funcs(htmlFuncs).Parse(`
{{- range $c := . -}}
<h2>Grouped {{$c.Field}} (mean and std)</h2>
{{range $m := $c.Methods -}}
<h3>{{$m}}</h3>
<table class='gf2stat'>
<tr><th>Matrix_Size<th>n<th>mean<th>std
{{range $g := $c.MethodGroups $m -}}
<tr><td>{{$g.Key.MatrixSize}}<td>{{$g.N}}<td>{{flt $g.Mean}}<td>{{flt $g.Std}}
{{end -}}
</table>
{{end -}}
{{end -}}
`))

var htmlFuncs = template.FuncMap{
	"flt": func(v float64) string { return fmt.Sprintf("%.6g", v) },
}

// FormatHTML appends an HTML formatting of the collections to buf.
func FormatHTML(buf *bytes.Buffer, cols []*Collection) {
	err := htmlTemplate.Execute(buf, cols)
	if err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}
