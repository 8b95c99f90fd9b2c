package e2e

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcsr-dev/fcsr/internal/checker"
	"github.com/fcsr-dev/fcsr/internal/cli"
	"github.com/fcsr-dev/fcsr/internal/diagnostics"
)

func TestE2ESmoke_Consistent(t *testing.T) {
	dir := filepath.Join(findRepoRoot(t), "e2e", "testdata", "consistent")

	out, err := runCLI(t, "check", "--cwd", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok 5 packages, 4 internal dependencies, 0 warnings")

	out, err = runCLI(t, "graph", "--cwd", dir, "--dependents")
	require.NoError(t, err)
	assert.Regexp(t, `@acme/core\s+│\s+1\.4\.0\s+│\s+@acme/cli, @acme/ui`, out)
	assert.NotContains(t, out, "@acme/legacy-utils")
}

func TestE2ESmoke_Inconsistent(t *testing.T) {
	dir := filepath.Join(findRepoRoot(t), "e2e", "testdata", "inconsistent")

	out, err := runCLI(t, "check", "--cwd", dir)
	assert.ErrorIs(t, err, checker.ErrInconsistentDependencies)

	for _, w := range []diagnostics.Warning{
		diagnostics.RangeMismatch("@acme/cli", "@acme/core", "1.4.0", "^2.0.0"),
		diagnostics.DuplicateGroupMember("@acme/core", "fixed"),
		diagnostics.FixedLinkedOverlap("@acme/web"),
	} {
		assert.Contains(t, out, w.Message())
	}
	assert.Contains(t, out, "invalid 5 packages, 3 internal dependencies, 3 warnings")
}

func TestE2ESmoke_Init(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name": "solo", "version": "1.0.0"}`), 0o644))

	_, err := runCLI(t, "init", "--cwd", dir)
	require.NoError(t, err)

	out, err := runCLI(t, "check", "--cwd", dir, "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "ok 1 packages, 0 internal dependencies, 0 warnings")
}

// TestE2ESmoke_Binary builds the fcsr binary and checks its exit codes.
func TestE2ESmoke_Binary(t *testing.T) {
	if os.Getenv("FCSR_E2E") == "" {
		t.Skip("set FCSR_E2E=1 to build and run the fcsr binary")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go not found in PATH")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repoRoot := findRepoRoot(t)
	bin := filepath.Join(t.TempDir(), "fcsr")
	runOrFail(t, ctx, repoRoot, "go", "build", "-o", bin, ".")

	out := runOrFail(t, ctx, repoRoot, bin, "check", "--cwd", filepath.Join("e2e", "testdata", "consistent"))
	assert.Contains(t, out, "ok 5 packages")

	out, err := runOut(ctx, repoRoot, bin, "check", "--cwd", filepath.Join("e2e", "testdata", "inconsistent"))
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected a non-zero exit, got %v\n%s", err, out)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, out, checker.ErrInconsistentDependencies.Error())
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd()
	stdout := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func findRepoRoot(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// e2e/smoke_test.go -> repo root
	return filepath.Clean(filepath.Join(filepath.Dir(file), ".."))
}

func runOrFail(t *testing.T, ctx context.Context, dir string, name string, args ...string) string {
	t.Helper()

	out, err := runOut(ctx, dir, name, args...)
	if err != nil {
		t.Fatalf("%s %s failed: %v\n%s", name, strings.Join(args, " "), err, out)
	}
	return out
}

func runOut(ctx context.Context, dir string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}
