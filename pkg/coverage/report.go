// Package coverage turns Jenkins coverage plugin documents into immutable
// reports that answer the covered ratio of any element kind.
//
// Two report shapes exist. A TreeReport is built from the nested Cobertura
// document, a FlatReport from the single level JaCoCo document. Both satisfy
// Report, so callers query ratios without knowing which tool produced them.
package coverage

// Report is the read-only query surface shared by both report shapes.
type Report interface {
	// Name is the report name as found in the document.
	Name() string
	// Family is the family of the kinds this report can hold.
	Family() Family
	// Elements returns the report's own elements, unique by kind.
	Elements() []Element
	// Element returns the element of kind, if the report holds one.
	Element(kind ElementKind) (Element, bool)
	// Ratio returns the covered ratio of kind. Kinds of another family,
	// Unknown and absent kinds all yield 0.
	Ratio(kind ElementKind) float64
}

// ratio answers Report.Ratio for a report of family holding set.
func ratio(family Family, set *elementSet, kind ElementKind) float64 {
	if kind == nil || kind.Family() != family {
		return 0
	}
	e, ok := set.get(kind)
	if !ok {
		return 0
	}
	return e.Ratio()
}

func element(family Family, set *elementSet, kind ElementKind) (Element, bool) {
	if kind == nil || kind.Family() != family {
		return Element{}, false
	}
	return set.get(kind)
}
