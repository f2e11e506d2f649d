package coverage

import (
	"github.com/LambdaTest/coverage-bridge/pkg/document"
	"github.com/LambdaTest/coverage-bridge/pkg/global"
)

// FlatReport is a JaCoCo report: every kind sits at the top level.
type FlatReport struct {
	name     string
	elements elementSet
}

// BuildFlat builds a report from a JaCoCo document of the form
//
//	{"_class": "...", "lineCoverage": {"covered": 1, "total": 2}, ...}
//
// Keys that do not resolve to a JaCoCo kind, such as "_class" or
// "previousResult", are skipped.
func BuildFlat(doc document.Value) *FlatReport {
	r := &FlatReport{name: doc.Get("_class").String(global.DefaultJacocoReportName)}
	doc.Each(func(key string, val document.Value) bool {
		kind := JacocoRegistry.Resolve(key)
		if kind == Unknown {
			return true
		}
		r.elements.put(jacocoElement(kind, val))
		return true
	})
	return r
}

// Name implements Report.
func (r *FlatReport) Name() string { return r.name }

// Family implements Report.
func (r *FlatReport) Family() Family { return FamilyJacoco }

// Elements implements Report.
func (r *FlatReport) Elements() []Element { return r.elements.list() }

// Element implements Report.
func (r *FlatReport) Element(kind ElementKind) (Element, bool) {
	return element(FamilyJacoco, &r.elements, kind)
}

// Ratio implements Report.
func (r *FlatReport) Ratio(kind ElementKind) float64 {
	return ratio(FamilyJacoco, &r.elements, kind)
}
