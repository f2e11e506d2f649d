package core

import (
	"fmt"
	"time"
)

// Provider names of the jenkins coverage plugins
const (
	ProviderCobertura = "cobertura"
	ProviderJacoco    = "jacoco"
)

// JobTarget identifies the coverage report of one jenkins build
type JobTarget struct {
	Job      string `yaml:"job" json:"job" validate:"required"`
	Build    int    `yaml:"build" json:"build" validate:"min=0"`
	Provider string `yaml:"provider" json:"provider" validate:"required"`
	Depth    int    `yaml:"depth" json:"depth" validate:"min=0"`
	Filter   string `yaml:"filter,omitempty" json:"filter,omitempty"`
}

// Key uniquely identifies the target among the watched ones
func (t *JobTarget) Key() string {
	return fmt.Sprintf("%s/%s#%d?depth=%d&filter=%s", t.Provider, t.Job, t.Build, t.Depth, t.Filter)
}

// ElementSummary is the serializable form of one coverage element
type ElementSummary struct {
	Kind    string  `yaml:"kind" json:"kind"`
	Covered int     `yaml:"covered" json:"covered"`
	Total   int     `yaml:"total" json:"total"`
	Missed  int     `yaml:"missed" json:"missed"`
	Ratio   float64 `yaml:"ratio" json:"ratio"`
}

// CoverageSummary is the serializable form of a coverage report node
type CoverageSummary struct {
	Job       string           `yaml:"job" json:"job"`
	Build     string           `yaml:"build" json:"build"`
	Provider  string           `yaml:"provider" json:"provider"`
	Name      string           `yaml:"name" json:"name"`
	Path      string           `yaml:"path,omitempty" json:"path,omitempty"`
	Elements  []ElementSummary `yaml:"elements" json:"elements"`
	Children  int              `yaml:"children" json:"children"`
	FetchedAt time.Time        `yaml:"fetchedAt" json:"fetchedAt"`
}
