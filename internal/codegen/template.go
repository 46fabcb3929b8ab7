package codegen

import (
	"bytes"
	"go/format"
	"path"
	"text/template"

	"erreport/pkg/report"
)

// ReportImportPath is the default import path of the core package in
// generated files. Host modules reach it through a replace directive or
// override it with the import setting.
const ReportImportPath = "erreport/pkg/report"

// Header marks generated files; Check refuses to overwrite files without it.
const Header = "// Code generated by erreport gen. DO NOT EDIT."

var fileTemplate = template.Must(template.New("report_gen").Parse(Header + `

package {{.Package}}

import {{if .Alias}}report {{end}}"{{.ImportPath}}"

const (
	componentName    = {{printf "%q" .Name}}
	componentVersion = {{printf "%q" .Version}}
)

var component = report.NewComponent(componentName, componentVersion,
	report.WithPolicy(report.{{.PolicyIdent}}),
	report.WithRootFromCaller({{printf "%q" .RelDir}}),
)

// wrap annotates err with the caller's location and this package's component.
// It returns nil when err is nil.
//
//go:noinline
func wrap(err error) error {
	return component.WrapSkip(1, err)
}

// wrapValue is wrap for (value, error) results.
//
//go:noinline
func wrapValue[T any](v T, err error) (T, error) {
	if err == nil {
		return v, nil
	}
	var zero T
	return zero, component.WrapSkip(1, err)
}
`))

type templateData struct {
	*Site
	PolicyIdent string
	Alias       bool // last import path element is not "report"
}

func policyIdent(p report.Policy) string {
	if p == report.TagOutermost {
		return "TagOutermost"
	}
	return "TagTransitions"
}

// render executes the template and gofmts the result.
func render(site *Site) ([]byte, error) {
	var buf bytes.Buffer
	data := templateData{
		Site:        site,
		PolicyIdent: policyIdent(site.Policy),
		Alias:       path.Base(site.ImportPath) != "report",
	}
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, wrap(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, wrap(err)
	}
	return src, nil
}
