package coverage

import "github.com/LambdaTest/coverage-bridge/pkg/document"

// Element is the covered/total pair measured for one kind.
// Source data may report Covered > Total; nothing here corrects it.
type Element struct {
	Kind    ElementKind
	Covered int
	Total   int
}

// Missed returns Total - Covered, floored at 0.
func (e Element) Missed() int {
	if e.Covered >= e.Total {
		return 0
	}
	return e.Total - e.Covered
}

// Ratio returns Covered / Total, or 0 when Total is 0. It is not clamped to 1.
func (e Element) Ratio() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Covered) / float64(e.Total)
}

// count reads a non-negative count, defaulting malformed values to 0.
func count(v document.Value) int {
	n := v.Int(0)
	if n < 0 {
		return 0
	}
	return n
}

// coberturaElement reads {"name", "numerator", "denominator"}.
func coberturaElement(v document.Value) Element {
	return Element{
		Kind:    CoberturaRegistry.Resolve(v.Get("name").String("")),
		Covered: count(v.Get("numerator")),
		Total:   count(v.Get("denominator")),
	}
}

// jacocoElement reads {"covered", "total"} for an already resolved kind.
func jacocoElement(kind ElementKind, v document.Value) Element {
	return Element{
		Kind:    kind,
		Covered: count(v.Get("covered")),
		Total:   count(v.Get("total")),
	}
}

// elementSet keeps elements unique by kind in first seen order, the last
// write for a kind replacing the earlier one in place.
type elementSet struct {
	elements []Element
	index    map[ElementKind]int
}

func (s *elementSet) put(e Element) {
	if s.index == nil {
		s.index = make(map[ElementKind]int)
	}
	if i, ok := s.index[e.Kind]; ok {
		s.elements[i] = e
		return
	}
	s.index[e.Kind] = len(s.elements)
	s.elements = append(s.elements, e)
}

func (s *elementSet) get(kind ElementKind) (Element, bool) {
	i, ok := s.index[kind]
	if !ok {
		return Element{}, false
	}
	return s.elements[i], true
}

func (s *elementSet) list() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}
