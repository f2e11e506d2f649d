package coverage

import "github.com/LambdaTest/coverage-bridge/pkg/document"

// TreeReport is one node of a Cobertura report: its own elements and the
// child nodes that carry elements of their own.
type TreeReport struct {
	name     string
	elements elementSet
	children []*TreeReport
}

// BuildTree builds a report from a Cobertura node of the form
//
//	{"name": "...", "children": [<node>...], "elements": [{"name", "numerator", "denominator"}...]}
//
// Missing or mistyped fields default to empty values. A child is kept only
// when its own "elements" holds at least one non-empty object; the check does
// not look further down, so a dropped child takes its descendants with it.
func BuildTree(doc document.Value) *TreeReport {
	r := &TreeReport{name: doc.Get("name").String("")}

	for _, child := range doc.Get("children").Objects() {
		if !hasElements(child) {
			continue
		}
		r.children = append(r.children, BuildTree(child))
	}

	for _, raw := range doc.Get("elements").Objects() {
		r.elements.put(coberturaElement(raw))
	}
	return r
}

// hasElements reports whether node's own elements hold a non-empty object.
// Jenkins returns depth truncated nodes with elements like [{}, {}].
func hasElements(node document.Value) bool {
	for _, e := range node.Get("elements").Objects() {
		if e.Len() > 0 {
			return true
		}
	}
	return false
}

// Name implements Report.
func (r *TreeReport) Name() string { return r.name }

// Family implements Report.
func (r *TreeReport) Family() Family { return FamilyCobertura }

// Elements implements Report.
func (r *TreeReport) Elements() []Element { return r.elements.list() }

// Element implements Report.
func (r *TreeReport) Element(kind ElementKind) (Element, bool) {
	return element(FamilyCobertura, &r.elements, kind)
}

// Ratio implements Report. It reads this node only, children are never
// aggregated.
func (r *TreeReport) Ratio(kind ElementKind) float64 {
	return ratio(FamilyCobertura, &r.elements, kind)
}

// Children returns the kept child nodes in document order.
func (r *TreeReport) Children() []*TreeReport {
	out := make([]*TreeReport, len(r.children))
	copy(out, r.children)
	return out
}

// Walk visits every descendant of r depth first, passing the names from
// r's child down to the node. Returning false skips the node's subtree.
func (r *TreeReport) Walk(fn func(path []string, node *TreeReport) bool) {
	r.walk(nil, fn)
}

func (r *TreeReport) walk(parent []string, fn func([]string, *TreeReport) bool) {
	for _, child := range r.children {
		path := make([]string, len(parent)+1)
		copy(path, parent)
		path[len(parent)] = child.name
		if fn(path, child) {
			child.walk(path, fn)
		}
	}
}
