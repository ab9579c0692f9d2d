package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/defenseunicorns/uds-sarif-report/pkg/types"
)

// Compile-time interface check.
var _ types.Renderer = (*HTMLRenderer)(nil)

// reportTemplateName is the name every loaded report template is parsed under.
const reportTemplateName = "report"

// fallbackTemplate is used when no template file can be read.
const fallbackTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Semgrep Security Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .finding { border: 1px solid #ddd; margin: 10px 0; padding: 15px; }
        .high { border-left: 5px solid #dc3545; }
        .medium { border-left: 5px solid #fd7e14; }
        .low { border-left: 5px solid #28a745; }
        .info { border-left: 5px solid #17a2b8; }
    </style>
</head>
<body>
    <h1>Semgrep Security Scan Report</h1>
    <p><strong>Generated:</strong> {{ .scan_date }}</p>
    <p><strong>Total Findings:</strong> {{ .total_findings }}</p>
{{ range .findings }}
    <div class="finding {{ lower .level }}">
        <h3>{{ .rule_id }}</h3>
        <p><strong>Severity:</strong> {{ .level }}</p>
        <p><strong>Message:</strong> {{ .message }}</p>
        <p><strong>File:</strong> {{ .path }}:{{ .start.line }}</p>
        {{- if .code }}
        <pre><code>{{ .code }}</code></pre>
        {{- end }}
    </div>
{{ end }}
</body>
</html>
`

// errorDocument is returned when rendering fails. %s must already be escaped.
const errorDocument = "<html><body><h1>Error generating report</h1><p>%s</p></body></html>"

// HTMLRenderer renders report templates with html/template and the sprig function map.
// Variables a template references but the data lacks are render errors.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses text as a template registered under name.
func NewHTMLRenderer(name, text string) (*HTMLRenderer, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.HtmlFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("template parse error: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render executes the named template. Output is only returned when execution
// completes, so a failure never leaks a partial document.
func (r *HTMLRenderer) Render(name string, vars map[string]interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, vars); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return buf.String(), nil
}
