package detect

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectType is a coarse project category used to select a config template.
type ProjectType string

// Supported project types.
const (
	TypeDevelopment  ProjectType = "development"
	TypeDataAnalysis ProjectType = "data_analysis"
	TypeResearch     ProjectType = "research"
	TypeAutomation   ProjectType = "automation"
	TypeGeneral      ProjectType = "general"
)

// String implements fmt.Stringer.
func (p ProjectType) String() string { return string(p) }

// Category pairs a project type with the entry names that identify it.
type Category struct {
	Type    ProjectType
	Markers []string
}

// Categories lists every marker-based category in priority order.
// TypeGeneral is not listed; it is the result when nothing matches.
var Categories = []Category{
	{TypeDevelopment, []string{"package.json", "tsconfig.json", "index.html", "next.config.js"}},
	{TypeDataAnalysis, []string{"notebooks", "data", "pandas", "analysis.ipynb"}},
	{TypeResearch, []string{"paper.tex", "references.bib", "experiment_results"}},
	{TypeAutomation, []string{"Makefile", "Justfile", "scripts", "workflows"}},
}

// AllTypes returns every project type in priority order, ending with TypeGeneral.
func AllTypes() []ProjectType {
	types := make([]ProjectType, 0, len(Categories)+1)
	for _, c := range Categories {
		types = append(types, c.Type)
	}
	return append(types, TypeGeneral)
}

// ParseType converts a label into a ProjectType. Unknown labels are returned
// with ok == false.
func ParseType(label string) (ProjectType, bool) {
	for _, t := range AllTypes() {
		if string(t) == label {
			return t, true
		}
	}
	return ProjectType(label), false
}

// Detection is the outcome of inspecting a directory.
type Detection struct {
	Path    string      `json:"path"`
	Type    ProjectType `json:"type"`
	Markers []string    `json:"markers,omitempty"`
	Reason  string      `json:"reason"`
}

// DetectType returns the project type of the directory at path.
func DetectType(path string) ProjectType {
	return Detect(path).Type
}

// Detect inspects the immediate entries of path and reports the first category
// whose markers appear there. A path that does not exist, or cannot be listed,
// is reported as TypeGeneral rather than as an error.
func Detect(path string) Detection {
	d := Detection{Path: path, Type: TypeGeneral}
	if abs, err := filepath.Abs(path); err == nil {
		d.Path = abs
	}

	if _, err := os.Stat(path); err != nil {
		d.Reason = "path does not exist"
		return d
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		d.Reason = fmt.Sprintf("cannot list directory: %v", err)
		return d
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	for _, c := range Categories {
		var hits []string
		for _, m := range c.Markers {
			if names[m] {
				hits = append(hits, m)
			}
		}
		if len(hits) > 0 {
			d.Type = c.Type
			d.Markers = hits
			d.Reason = fmt.Sprintf("%s marker found", c.Type)
			return d
		}
	}

	d.Reason = "no markers found"
	return d
}
