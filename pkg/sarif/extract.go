package sarif

import (
	"strings"

	"github.com/defenseunicorns/uds-sarif-report/pkg/types"
)

// Defaults substituted for absent result fields.
const (
	DefaultRuleID  = "Unknown Rule"
	DefaultMessage = "No message"
	DefaultLevel   = "note"
	DefaultPath    = "Unknown file"
)

// ExtractFindings converts every result of every run into a Finding, in
// run-major, result-minor order. It never fails: missing fields take their defaults.
func ExtractFindings(doc Document) []types.Finding {
	findings := []types.Finding{}
	if len(doc) == 0 {
		return findings
	}

	for _, run := range LookupSlice(doc, "runs") {
		for _, result := range LookupSlice(run, "results") {
			findings = append(findings, NewFinding(result))
		}
	}

	return findings
}

// NewFinding normalizes a single result object. Only the first location is used.
func NewFinding(result interface{}) types.Finding {
	return types.Finding{
		RuleID:  LookupString(result, DefaultRuleID, "ruleId"),
		Message: LookupString(result, DefaultMessage, "message", "text"),
		Level:   strings.ToUpper(LookupString(result, DefaultLevel, "level")),
		Path:    LookupString(result, DefaultPath, physicalPath("artifactLocation", "uri")...),
		Start: types.Position{
			Line:   LookupInt(result, 0, physicalPath("region", "startLine")...),
			Column: LookupInt(result, 0, physicalPath("region", "startColumn")...),
		},
		End: types.Position{
			Line:   LookupInt(result, 0, physicalPath("region", "endLine")...),
			Column: LookupInt(result, 0, physicalPath("region", "endColumn")...),
		},
		Code: extractCodeSnippet(result),
		Tags: extractTags(result),
	}
}

// physicalPath builds a path below locations[0].physicalLocation.
func physicalPath(keys ...string) []interface{} {
	path := []interface{}{"locations", 0, "physicalLocation"}
	for _, k := range keys {
		path = append(path, k)
	}
	return path
}

// extractCodeSnippet returns the first snippet text found under
// codeFlows[].threadFlows[].locations[].location.snippet.text.
func extractCodeSnippet(result interface{}) *string {
	for _, flow := range LookupSlice(result, "codeFlows") {
		for _, thread := range LookupSlice(flow, "threadFlows") {
			for _, loc := range LookupSlice(thread, "locations") {
				v, ok := Lookup(loc, "location", "snippet", "text")
				if !ok {
					continue
				}
				if text, ok := v.(string); ok {
					return &text
				}
			}
		}
	}
	return nil
}

func extractTags(result interface{}) []string {
	tags := []string{}
	for _, tag := range LookupSlice(result, "tags") {
		if s, ok := tag.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}
