package types

// Position is a line/column pair inside a source file. Zero means unknown.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Finding is one normalized static-analysis result.
type Finding struct {
	// Code is the illustrative snippet taken from the result's code flows, nil when none exists.
	Code    *string  `json:"code,omitempty"`
	RuleID  string   `json:"rule_id"`
	Message string   `json:"message"`
	Level   string   `json:"level"`
	Path    string   `json:"path"`
	Tags    []string `json:"tags"`
	Start   Position `json:"start"`
	End     Position `json:"end"`
}

// Variables returns the finding keyed by the names templates use.
func (f Finding) Variables() map[string]interface{} {
	var code interface{}
	if f.Code != nil {
		code = *f.Code
	}
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]interface{}{
		"rule_id": f.RuleID,
		"message": f.Message,
		"level":   f.Level,
		"path":    f.Path,
		"start":   map[string]interface{}{"line": f.Start.Line, "column": f.Start.Column},
		"end":     map[string]interface{}{"line": f.End.Line, "column": f.End.Column},
		"code":    code,
		"tags":    tags,
	}
}

// ReportData is everything a report template can reference.
type ReportData struct {
	RepositoryURL       string    `json:"repository_url"`
	CommitSHA           string    `json:"commit_sha"`
	ScanDate            string    `json:"scan_date"`
	SemgrepVersion      string    `json:"semgrep_version"`
	Findings            []Finding `json:"findings"`
	TotalFindings       int       `json:"total_findings"`
	HighSeverityCount   int       `json:"high_severity_count"`
	MediumSeverityCount int       `json:"medium_severity_count"`
	LowSeverityCount    int       `json:"low_severity_count"`
	InfoSeverityCount   int       `json:"info_severity_count"`
}

// Variables returns the report as the named variables passed to a template.
func (r ReportData) Variables() map[string]interface{} {
	findings := make([]map[string]interface{}, 0, len(r.Findings))
	for _, f := range r.Findings {
		findings = append(findings, f.Variables())
	}
	return map[string]interface{}{
		"repository_url":        r.RepositoryURL,
		"commit_sha":            r.CommitSHA,
		"scan_date":             r.ScanDate,
		"semgrep_version":       r.SemgrepVersion,
		"total_findings":        r.TotalFindings,
		"high_severity_count":   r.HighSeverityCount,
		"medium_severity_count": r.MediumSeverityCount,
		"low_severity_count":    r.LowSeverityCount,
		"info_severity_count":   r.InfoSeverityCount,
		"findings":              findings,
	}
}

// Renderer renders a named template against a set of variables.
type Renderer interface {
	// Render executes the template and returns the produced text.
	Render(name string, vars map[string]interface{}) (string, error)
}
