package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// TemplatesDirName is the directory, relative to the executable's parent,
// that holds the project templates.
const TemplatesDirName = "templates"

// ExecutableDir returns the directory containing the running binary, with
// symlinks resolved so an installed link finds its real neighbors.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// TemplatesDir returns the first non-empty override, or <exe dir>/../templates.
func TemplatesDir(overrides ...string) (string, error) {
	if v := firstNonEmpty(overrides); v != "" {
		return v, nil
	}
	dir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "..", TemplatesDirName), nil
}

// SiblingPath returns the first non-empty override, or name joined to the
// executable's directory.
func SiblingPath(name string, overrides ...string) (string, error) {
	if v := firstNonEmpty(overrides); v != "" {
		return v, nil
	}
	dir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
