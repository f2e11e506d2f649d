package coverage

// Family identifies the coverage tool whose report a kind belongs to.
type Family int

// Supported report families. FamilyNone is the family of Unknown.
const (
	FamilyNone Family = iota
	FamilyCobertura
	FamilyJacoco
)

func (f Family) String() string {
	switch f {
	case FamilyCobertura:
		return "cobertura"
	case FamilyJacoco:
		return "jacoco"
	default:
		return "none"
	}
}

// ElementKind is a closed category of coverage measurement. Every kind is
// either a CoberturaKind, a JacocoKind or Unknown.
type ElementKind interface {
	Family() Family
	String() string
}

// CoberturaKind is an element kind reported by the Cobertura plugin.
type CoberturaKind int

// Cobertura element kinds.
const (
	Classes CoberturaKind = iota + 1
	Conditionals
	Files
	Lines
	Packages
)

var coberturaNames = map[CoberturaKind]string{
	Classes:      "Classes",
	Conditionals: "Conditionals",
	Files:        "Files",
	Lines:        "Lines",
	Packages:     "Packages",
}

// Family implements ElementKind.
func (CoberturaKind) Family() Family { return FamilyCobertura }

func (k CoberturaKind) String() string { return coberturaNames[k] }

// JacocoKind is an element kind reported by the JaCoCo plugin.
type JacocoKind int

// JaCoCo element kinds.
const (
	BranchCoverage JacocoKind = iota + 1
	ClassCoverage
	ComplexityCoverage
	InstructionCoverage
	LineCoverage
	MethodCoverage
)

var jacocoNames = map[JacocoKind]string{
	BranchCoverage:      "branchCoverage",
	ClassCoverage:       "classCoverage",
	ComplexityCoverage:  "complexityScore",
	InstructionCoverage: "instructionCoverage",
	LineCoverage:        "lineCoverage",
	MethodCoverage:      "methodCoverage",
}

// Family implements ElementKind.
func (JacocoKind) Family() Family { return FamilyJacoco }

func (k JacocoKind) String() string { return jacocoNames[k] }

type unknownKind struct{}

func (unknownKind) Family() Family { return FamilyNone }

func (unknownKind) String() string { return "Unknown" }

// Unknown is the kind of every unresolvable name, in both families.
var Unknown ElementKind = unknownKind{}

// Registry resolves raw element names of one report family.
type Registry interface {
	// Resolve never fails: names outside the family resolve to Unknown.
	Resolve(raw string) ElementKind
	Family() Family
}

type registry struct {
	family Family
	kinds  map[string]ElementKind
}

func (r registry) Resolve(raw string) ElementKind {
	if kind, ok := r.kinds[raw]; ok {
		return kind
	}
	return Unknown
}

func (r registry) Family() Family {
	return r.family
}

func newCoberturaRegistry() Registry {
	r := registry{family: FamilyCobertura, kinds: make(map[string]ElementKind, len(coberturaNames))}
	for kind, name := range coberturaNames {
		r.kinds[name] = kind
	}
	return r
}

func newJacocoRegistry() Registry {
	r := registry{family: FamilyJacoco, kinds: make(map[string]ElementKind, len(jacocoNames))}
	for kind, name := range jacocoNames {
		r.kinds[name] = kind
	}
	return r
}

var (
	// CoberturaRegistry resolves the "name" field of Cobertura elements.
	CoberturaRegistry = newCoberturaRegistry()
	// JacocoRegistry resolves the top level keys of a JaCoCo report.
	JacocoRegistry = newJacocoRegistry()
)

// RegistryFor returns the registry of family, nil for FamilyNone.
func RegistryFor(family Family) Registry {
	switch family {
	case FamilyCobertura:
		return CoberturaRegistry
	case FamilyJacoco:
		return JacocoRegistry
	default:
		return nil
	}
}
