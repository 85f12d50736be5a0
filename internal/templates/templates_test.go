package templates

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileName(t *testing.T) {
	if got := FileName("research"); got != "research-project.yaml" {
		t.Errorf("FileName() = %q", got)
	}
	if got := FallbackFileName(); got != "general-project.yaml" {
		t.Errorf("FallbackFileName() = %q", got)
	}
}

func TestDefaults(t *testing.T) {
	names, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() error: %v", err)
	}
	want := []string{
		"automation-project.yaml",
		"data_analysis-project.yaml",
		"development-project.yaml",
		"general-project.yaml",
		"research-project.yaml",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Defaults() = %v, want %v", names, want)
	}
}

func TestDefault(t *testing.T) {
	data, err := Default("general")
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if len(data) == 0 {
		t.Error("embedded general template is empty")
	}

	if _, err := Default("mobile"); err == nil {
		t.Error("expected error for unknown type, got nil")
	}
}

func TestInstall(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")

	result, err := Install(dir, false)
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if len(result.Written) != 5 {
		t.Errorf("Written = %v, want 5 files", result.Written)
	}
	if len(result.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", result.Skipped)
	}

	types, err := Available(dir)
	if err != nil {
		t.Fatalf("Available() error: %v", err)
	}
	want := []string{"automation", "data_analysis", "development", "general", "research"}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("Available() = %v, want %v", types, want)
	}
}

func TestInstallSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "general-project.yaml")
	if err := os.WriteFile(custom, []byte("custom: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := Install(dir, false)
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if !reflect.DeepEqual(result.Skipped, []string{"general-project.yaml"}) {
		t.Errorf("Skipped = %v", result.Skipped)
	}

	data, err := os.ReadFile(custom)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "custom: true\n" {
		t.Error("existing template was overwritten without force")
	}
}

func TestInstallForce(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "general-project.yaml")
	if err := os.WriteFile(custom, []byte("custom: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := Install(dir, true)
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if len(result.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none with force", result.Skipped)
	}

	want, _ := Default("general")
	got, err := os.ReadFile(custom)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Error("forced install did not replace the existing template")
	}
}

func TestAvailableIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"web-project.yaml", "README.md", "notes.yaml", "-project.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "dir-project.yaml"), 0755); err != nil {
		t.Fatal(err)
	}

	types, err := Available(dir)
	if err != nil {
		t.Fatalf("Available() error: %v", err)
	}
	if !reflect.DeepEqual(types, []string{"web"}) {
		t.Errorf("Available() = %v, want [web]", types)
	}
}

func TestAvailableMissingDir(t *testing.T) {
	if _, err := Available(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory, got nil")
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"automation", "data_analysis", "development", "general", "research"}

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"abbreviation", "dev", "development", true},
		{"missing underscore", "dataanalysis", "data_analysis", true},
		{"exact candidate", "research", "", false},
		{"empty", "", "", false},
		{"no match", "zzz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.input, candidates)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Suggest(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
