//go:build integration

package integration_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/contextguard/contextguard/internal/templates"
)

// installLayout mirrors a packaged install: the binary and the activation
// script in bin/, templates in templates/ next to it.
type installLayout struct {
	Root      string
	BinDir    string
	Binary    string
	Script    string
	Templates string
	Home      string
}

// buildInstall compiles the CLI into an isolated install layout and installs
// the default templates beside it.
func buildInstall(t *testing.T) *installLayout {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a Unix shell")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not available, skipping")
	}

	root := t.TempDir()
	l := &installLayout{
		Root:      root,
		BinDir:    filepath.Join(root, "bin"),
		Templates: filepath.Join(root, "templates"),
		Home:      t.TempDir(),
	}
	l.Binary = filepath.Join(l.BinDir, "contextguard")
	l.Script = filepath.Join(l.BinDir, "contextguard-activate.sh")

	build := exec.Command(goBin, "build", "-o", l.Binary, "../..")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("building CLI: %v\n%s", err, out)
	}

	if _, err := templates.Install(l.Templates, false); err != nil {
		t.Fatalf("installing templates: %v", err)
	}
	return l
}

// run executes the built binary from dir and returns stdout, stderr, and the
// exit code.
func (l *installLayout) run(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()

	cmd := exec.Command(l.Binary, args...)
	cmd.Dir = dir
	cmd.Env = append(filterEnv(os.Environ(), "CONTEXTGUARD_"), "HOME="+l.Home)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("running %v: %v", args, err)
		}
		code = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), code
}

func filterEnv(env []string, prefix string) []string {
	out := env[:0:0]
	for _, e := range env {
		if !strings.HasPrefix(e, prefix) {
			out = append(out, e)
		}
	}
	return out
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q:\n%s", path, substr, data)
	}
}
