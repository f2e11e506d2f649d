// Package summary flattens coverage reports into serializable summaries.
package summary

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/coverage"
	"github.com/LambdaTest/coverage-bridge/pkg/errs"
	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"gopkg.in/yaml.v3"
)

// Output formats supported by Render
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var now = time.Now

// Summarize flattens report into a summary of target.
func Summarize(target *core.JobTarget, report coverage.Report) *core.CoverageSummary {
	build := global.LastSuccessfulBuild
	if target.Build > 0 {
		build = strconv.Itoa(target.Build)
	}
	s := &core.CoverageSummary{
		Job:       target.Job,
		Build:     build,
		Provider:  target.Provider,
		Name:      report.Name(),
		FetchedAt: now().UTC(),
	}
	for _, e := range report.Elements() {
		s.Elements = append(s.Elements, core.ElementSummary{
			Kind:    e.Kind.String(),
			Covered: e.Covered,
			Total:   e.Total,
			Missed:  e.Missed(),
			Ratio:   e.Ratio(),
		})
	}
	if s.Elements == nil {
		s.Elements = []core.ElementSummary{}
	}
	if tree, ok := report.(*coverage.TreeReport); ok {
		s.Children = len(tree.Children())
	}
	return s
}

// SummarizeSelections summarizes every selected node of a tree report.
func SummarizeSelections(target *core.JobTarget, selections []coverage.Selection) []*core.CoverageSummary {
	summaries := make([]*core.CoverageSummary, 0, len(selections))
	for _, sel := range selections {
		s := Summarize(target, sel.Report)
		s.Path = sel.Path
		summaries = append(summaries, s)
	}
	return summaries
}

// Render writes v to w in the given format.
func Render(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		// nolint: gomnd
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return errs.ErrUnsupportedOutput
	}
}
