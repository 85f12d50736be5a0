// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed; the hard defaults
// below apply when a field is missing from it.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	ActivateScript string `yaml:"activate_script"`
	ConfigFile     string `yaml:"config_file"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:        "contextguard",
			DisplayName:    "ContextGuard",
			Description:    "Project-type detection, config generation, and environment activation",
			HomeDir:        ".contextguard",
			EnvPrefix:      "CONTEXTGUARD",
			GoModule:       "github.com/contextguard/contextguard",
			ActivateScript: "contextguard-activate.sh",
			ConfigFile:     ".contextguard.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "contextguard").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".contextguard").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CONTEXTGUARD").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ActivateScript returns the file name of the activation script that ships
// alongside the binary.
func ActivateScript() string { load(); return defaults.ActivateScript }

// ProjectConfigFile returns the default file name written by "init".
func ProjectConfigFile() string { load(); return defaults.ConfigFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("templates_dir") → "CONTEXTGUARD_TEMPLATES_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
