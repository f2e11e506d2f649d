// Package metrics exposes watched coverage summaries in the prometheus text format.
package metrics

import (
	"io"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Metric names of the exported gauges
const (
	RatioMetric   = "jenkins_coverage_ratio"
	CoveredMetric = "jenkins_coverage_covered"
	TotalMetric   = "jenkins_coverage_total"
	MissedMetric  = "jenkins_coverage_missed"
)

// ContentType is the content type of the exposition written by Write
var ContentType = string(expfmt.NewFormat(expfmt.TypeTextPlain))

type gauge struct {
	name  string
	help  string
	value func(e *core.ElementSummary) float64
}

var gauges = []gauge{
	{RatioMetric, "Covered fraction of a coverage element kind.", func(e *core.ElementSummary) float64 { return e.Ratio }},
	{CoveredMetric, "Covered count of a coverage element kind.", func(e *core.ElementSummary) float64 { return float64(e.Covered) }},
	{TotalMetric, "Total count of a coverage element kind.", func(e *core.ElementSummary) float64 { return float64(e.Total) }},
	{MissedMetric, "Missed count of a coverage element kind.", func(e *core.ElementSummary) float64 { return float64(e.Missed) }},
}

// Families converts summaries into gauge families labelled by job, provider and kind.
// Summaries of selected nodes carry an extra path label. When two summaries share
// job, provider and path only the first is exported.
func Families(summaries []*core.CoverageSummary) []*dto.MetricFamily {
	families := make([]*dto.MetricFamily, 0, len(gauges))
	for _, g := range gauges {
		families = append(families, &dto.MetricFamily{
			Name: proto.String(g.name),
			Help: proto.String(g.help),
			Type: dto.MetricType_GAUGE.Enum(),
		})
	}

	seen := make(map[string]struct{}, len(summaries))
	for _, s := range summaries {
		key := s.Provider + "/" + s.Job + "/" + s.Path
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		for i := range s.Elements {
			e := &s.Elements[i]
			labels := []*dto.LabelPair{
				{Name: proto.String("job"), Value: proto.String(s.Job)},
				{Name: proto.String("kind"), Value: proto.String(e.Kind)},
				{Name: proto.String("provider"), Value: proto.String(s.Provider)},
			}
			if s.Path != "" {
				labels = append(labels, &dto.LabelPair{Name: proto.String("path"), Value: proto.String(s.Path)})
			}
			for j, g := range gauges {
				families[j].Metric = append(families[j].Metric, &dto.Metric{
					Label: labels,
					Gauge: &dto.Gauge{Value: proto.Float64(g.value(e))},
				})
			}
		}
	}
	return families
}

// Write encodes the gauges of summaries to w.
func Write(w io.Writer, summaries []*core.CoverageSummary) error {
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range Families(summaries) {
		if len(mf.Metric) == 0 {
			continue
		}
		if err := encoder.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
