package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir() error: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ExecutableDir() = %q, want absolute path", dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("ExecutableDir() = %q is not a directory", dir)
	}
}

func TestTemplatesDir(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		got, err := TemplatesDir("", "/srv/templates", "/ignored")
		if err != nil {
			t.Fatal(err)
		}
		if got != "/srv/templates" {
			t.Errorf("TemplatesDir() = %q, want %q", got, "/srv/templates")
		}
	})

	t.Run("relative to executable", func(t *testing.T) {
		exeDir, err := ExecutableDir()
		if err != nil {
			t.Fatal(err)
		}
		got, err := TemplatesDir()
		if err != nil {
			t.Fatal(err)
		}
		want := filepath.Join(exeDir, "..", "templates")
		if got != want {
			t.Errorf("TemplatesDir() = %q, want %q", got, want)
		}
	})
}

func TestSiblingPath(t *testing.T) {
	exeDir, err := ExecutableDir()
	if err != nil {
		t.Fatal(err)
	}

	got, err := SiblingPath("activate.sh", "")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(exeDir, "activate.sh"); got != want {
		t.Errorf("SiblingPath() = %q, want %q", got, want)
	}

	got, err = SiblingPath("activate.sh", "/opt/activate.sh")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/opt/activate.sh" {
		t.Errorf("SiblingPath() with override = %q", got)
	}
}
