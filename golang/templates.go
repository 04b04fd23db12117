package golang

import (
	"strconv"
	"strings"
	"text/template"
)

// Block templates, executed in this order by Emitter.Emit. The two *Entry
// templates are expanded once per code.
const (
	tmplHeader     = "header"
	tmplConstOpen  = "constOpen"
	tmplConstEntry = "constEntry"
	tmplConstClose = "constClose"
	tmplMapOpen    = "mapOpen"
	tmplMapEntry   = "mapEntry"
	tmplMapClose   = "mapClose"
	tmplStringer   = "stringer"
	tmplValidator  = "validator"
)

const templateText = `
{{- define "header" -}}
// Code generated by enumgen. DO NOT EDIT.

package {{.Pkg}}

{{comment .Doc}}
type {{.Name}} {{.Type}}

// All possible {{.Name}} values.
{{- if .Ref}}
//
{{comment (printf "Reference: %s" .Ref)}}
{{- end}}
{{end}}

{{- define "constOpen"}}const (
{{end}}

{{- define "constEntry"}}	{{.LabelPascal}} {{.Name}} = {{.Value}}
{{end}}

{{- define "constClose"}})
{{end}}

{{- define "mapOpen"}}
var {{.StringMapVar}} = map[{{.Name}}]string{
{{end}}

{{- define "mapEntry"}}	{{.Value}}: {{quote .Label}},
{{end}}

{{- define "mapClose"}}}
{{end}}

{{- define "stringer"}}
// String returns the label of {{.Receiver}}, or {{.Name}}(n) for values without one.
func ({{.Receiver}} {{.Name}}) String() string {
	str, ok := {{.StringMapVar}}[{{.Receiver}}]
	if ok {
		return str
	}
	return fmt.Sprintf("{{.Name}}(%d)", {{.Type}}({{.Receiver}}))
}
{{end}}

{{- define "validator"}}
// Is{{.Name}} reports whether {{.Receiver}} is a defined {{.Name}} value.
func Is{{.Name}}({{.Receiver}} {{.Type}}) bool {
	_, ok := {{.StringMapVar}}[{{.Name}}({{.Receiver}})]
	return ok
}
{{end}}
`

var templates = template.Must(template.New("enum").
	Option("missingkey=error").
	Funcs(template.FuncMap{
		"comment": comment,
		"quote":   strconv.Quote,
	}).
	Parse(templateText))

// comment renders text as a line comment, one "//" line per input line.
func comment(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		l = strings.TrimRight(l, " \t\r")
		if l == "" {
			lines[i] = "//"
			continue
		}
		lines[i] = "// " + l
	}
	return strings.Join(lines, "\n")
}
