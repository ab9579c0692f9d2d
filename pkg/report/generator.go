package report

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/defenseunicorns/uds-sarif-report/internal/config"
	"github.com/defenseunicorns/uds-sarif-report/internal/log"
	"github.com/defenseunicorns/uds-sarif-report/pkg/sarif"
	"github.com/defenseunicorns/uds-sarif-report/pkg/semver"
	"github.com/defenseunicorns/uds-sarif-report/pkg/types"
)

// Options configures a Generator. Blank Config fields take their config.Default() values.
type Options struct {
	// Renderer replaces template acquisition entirely when set.
	Renderer types.Renderer
	// Now supplies the scan date. Defaults to time.Now.
	Now func() time.Time
	// TemplatePath overrides Config.TemplatePath when non-empty.
	TemplatePath string
	Config       config.Config
}

// Generator turns a SARIF document into an HTML report.
type Generator struct {
	logger       types.Logger
	renderer     types.Renderer
	now          func() time.Time
	cfg          config.Config
	templatePath string
	fallback     bool
}

// New creates a Generator and acquires its template. A template file that
// cannot be read is replaced by the built-in fallback; a template that cannot
// be parsed is an error.
func New(ctx context.Context, logger types.Logger, opts Options) (*Generator, error) {
	if logger == nil {
		logger = log.NewLogger(ctx)
	}

	cfg := opts.Config.WithDefaults()
	templatePath := opts.TemplatePath
	if templatePath == "" {
		templatePath = cfg.TemplatePath
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	g := &Generator{
		logger:       logger,
		renderer:     opts.Renderer,
		now:          now,
		cfg:          cfg,
		templatePath: templatePath,
	}

	if g.renderer == nil {
		r, err := g.loadTemplate()
		if err != nil {
			return nil, err
		}
		g.renderer = r
	}

	return g, nil
}

// UsesFallbackTemplate reports whether the built-in template is in use.
func (g *Generator) UsesFallbackTemplate() bool {
	return g.fallback
}

func (g *Generator) loadTemplate() (types.Renderer, error) {
	content, err := os.ReadFile(g.templatePath)
	if err != nil {
		g.logger.Warn("template not available, using fallback template",
			zap.String("path", g.templatePath), zap.Error(err))
		g.fallback = true
		return NewHTMLRenderer(reportTemplateName, fallbackTemplate)
	}

	r, err := NewHTMLRenderer(reportTemplateName, string(content))
	if err != nil {
		return nil, fmt.Errorf("error loading template %s: %w", g.templatePath, err)
	}
	g.logger.Debug("loaded template", zap.String("path", g.templatePath))
	return r, nil
}

// ParseSemgrepOutput reads the analyzer output at path. Any read or decode
// failure is logged and yields an empty document.
func (g *Generator) ParseSemgrepOutput(path string) sarif.Document {
	doc, err := sarif.ReadFile(path)
	if err != nil {
		g.logger.Error("error reading JSON file", zap.String("path", path), zap.Error(err))
		return sarif.Document{}
	}

	if version, ok := doc.Version(); ok {
		supported, err := semver.IsSupportedSARIFVersion(version)
		switch {
		case err != nil:
			g.logger.Warn("unrecognized SARIF version", zap.String("version", version), zap.Error(err))
		case !supported:
			g.logger.Warn("SARIF version outside supported range",
				zap.String("version", version), zap.String("supported", semver.SupportedSARIFRange))
		}
	}

	return doc
}

// ExtractFindings normalizes every result in doc.
func (g *Generator) ExtractFindings(doc sarif.Document) []types.Finding {
	findings := sarif.ExtractFindings(doc)
	g.logger.Debug("extracted findings", zap.Int("count", len(findings)))
	return findings
}

// GenerateReportData assembles the template data. Empty repositoryURL or
// commitSHA fall back to the configured defaults. Only the levels high, medium,
// low and info are counted; other levels are listed but not bucketed.
func (g *Generator) GenerateReportData(findings []types.Finding, repositoryURL, commitSHA string) types.ReportData {
	if repositoryURL == "" {
		repositoryURL = g.cfg.DefaultRepositoryURL
	}
	if commitSHA == "" {
		commitSHA = g.cfg.DefaultCommitSHA
	}
	if findings == nil {
		findings = []types.Finding{}
	}

	data := types.ReportData{
		RepositoryURL:  repositoryURL,
		CommitSHA:      commitSHA,
		ScanDate:       g.now().UTC().Format(g.cfg.ScanDateLayout),
		SemgrepVersion: g.cfg.ToolVersionLabel,
		TotalFindings:  len(findings),
		Findings:       findings,
	}

	for _, f := range findings {
		switch strings.ToLower(f.Level) {
		case "high":
			data.HighSeverityCount++
		case "medium":
			data.MediumSeverityCount++
		case "low":
			data.LowSeverityCount++
		case "info":
			data.InfoSeverityCount++
		}
	}

	return data
}

// GenerateHTML renders data. It always returns a document: on failure the
// document describes the error instead of the findings.
func (g *Generator) GenerateHTML(data types.ReportData) string {
	out, err := g.renderer.Render(reportTemplateName, data.Variables())
	if err != nil {
		g.logger.Error("error generating HTML", zap.Error(err))
		return fmt.Sprintf(errorDocument, html.EscapeString(err.Error()))
	}
	return out
}

// SaveReport writes content to path, replacing any existing file.
// It reports failure instead of returning an error.
func (g *Generator) SaveReport(content, path string) bool {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec
		g.logger.Error("error saving report", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}
