// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> identifier validation -> scaffold/workspace
// -> filesystem.
//
// Each test environment gets its own fake HOME so the global config and
// the activity log never touch the developer's real ~/.aocgen. Commands
// run with the workspace directory as the working directory, the same
// way users run them.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the aocgen binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "aocgen-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "aocgen"
		if os.PathSeparator == '\\' {
			binaryName = "aocgen.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // workspace directory, used as the working directory
	home   string // fake HOME for global config and the activity log
	binary string
}

// newTestEnv creates an initialised workspace in a temporary directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := newBareEnv(t)
	env.run("init")

	return env
}

// newBareEnv creates a test environment without running init, for tests
// that exercise init itself.
func newBareEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	return &testEnv{t: t, dir: t.TempDir(), home: t.TempDir(), binary: binary}
}

// run executes aocgen with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("aocgen %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes aocgen and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	// AOCGEN_BASE is cleared so an inherited value cannot redirect the
	// workspace out of the temp directory.
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		"AOCGEN_BASE=",
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// path joins the workspace directory with the given elements.
func (e *testEnv) path(elem ...string) string {
	return filepath.Join(append([]string{e.dir}, elem...)...)
}

// read returns the content of a file inside the workspace.
func (e *testEnv) read(elem ...string) string {
	e.t.Helper()
	data, err := os.ReadFile(e.path(elem...))
	if err != nil {
		e.t.Fatalf("reading %v: %v", elem, err)
	}
	return string(data)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
