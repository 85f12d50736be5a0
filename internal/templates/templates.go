package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

const defaultsDir = "defaults"

// Suffix is appended to a project type to form its template file name.
const Suffix = "-project.yaml"

// FallbackType is the project type whose template is used when the requested
// one does not exist.
const FallbackType = "general"

// FileName returns the template file name for a project type.
func FileName(projectType string) string {
	return projectType + Suffix
}

// FallbackFileName returns the file name of the general-purpose template.
func FallbackFileName() string {
	return FileName(FallbackType)
}

// InstallResult holds the outcome of writing the default templates.
type InstallResult struct {
	Dir     string
	Written []string
	Skipped []string
}

// Defaults returns the file names of the embedded default templates, sorted.
func Defaults() ([]string, error) {
	entries, err := fs.ReadDir(defaultsFS, defaultsDir)
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), Suffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Default returns the embedded template for a project type.
func Default(projectType string) ([]byte, error) {
	data, err := fs.ReadFile(defaultsFS, path.Join(defaultsDir, FileName(projectType)))
	if err != nil {
		return nil, fmt.Errorf("no embedded template for %q: %w", projectType, err)
	}
	return data, nil
}

// Install writes the embedded default templates into dir, creating it if
// needed. Existing files are left untouched unless force is set.
func Install(dir string, force bool) (*InstallResult, error) {
	names, err := Defaults()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating template directory: %w", err)
	}

	result := &InstallResult{Dir: dir}
	for _, name := range names {
		outPath := filepath.Join(dir, name)
		if !force {
			if _, err := os.Stat(outPath); err == nil {
				result.Skipped = append(result.Skipped, name)
				continue
			}
		}

		data, err := fs.ReadFile(defaultsFS, path.Join(defaultsDir, name))
		if err != nil {
			return nil, fmt.Errorf("reading embedded template %s: %w", name, err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Written = append(result.Written, name)
	}

	return result, nil
}

// Available returns the project types that have a template in dir, sorted.
func Available(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	var types []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, Suffix) {
			continue
		}
		if t := strings.TrimSuffix(name, Suffix); t != "" {
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types, nil
}

// Suggest returns the candidate that best fuzzy-matches name. ok is false
// when nothing matches or name is itself a candidate.
func Suggest(name string, candidates []string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, c := range candidates {
		if c == name {
			return "", false
		}
	}
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
