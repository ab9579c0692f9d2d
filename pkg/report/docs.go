package report

/*
Package report turns SARIF-like static-analysis output into a standalone HTML report.

The main functions and types in this package are:

New
    Creates a Generator and acquires the report template.

    Parameters:
        ctx: Used to find a logger when none is passed.
        logger: Receives diagnostics for unreadable input, template fallback and render failures.
        opts: Template path, configuration defaults, clock and an optional custom Renderer.

    Returns:
        A Generator. An error only when the template file exists but cannot be parsed.

Generator.ParseSemgrepOutput
    Reads a JSON (optionally gzip-compressed) file. Returns an empty document on any failure.

Generator.ExtractFindings
    Normalizes every result of every run into a types.Finding.

Generator.GenerateReportData
    Counts findings by severity and fills in repository, commit and scan date.

Generator.GenerateHTML
    Renders the template. Returns an error document instead of failing.

Generator.SaveReport
    Writes the HTML to disk and reports success as a bool.

Templates use html/template syntax with the sprig function map. The variables are
repository_url, commit_sha, scan_date, semgrep_version, total_findings,
high_severity_count, medium_severity_count, low_severity_count, info_severity_count and
findings; each finding has rule_id, message, level, path, start.line, start.column,
end.line, end.column, code and tags.

Example usage:

    gen, err := report.New(ctx, logger, report.Options{TemplatePath: "templates/report_template.html"})
    if err != nil {
        // Handle error
    }

    doc := gen.ParseSemgrepOutput("semgrep-results.sarif")
    findings := gen.ExtractFindings(doc)
    data := gen.GenerateReportData(findings, "https://github.com/user/repo.git", "abc123")
    if !gen.SaveReport(gen.GenerateHTML(data), "report.html") {
        // Handle failure
    }
*/
