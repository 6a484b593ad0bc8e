package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

const (
	TEST_LOCKFILE_TIMEOUT = 30 * time.Second
	TEST_SHUTDOWN_TIMEOUT = 10 * time.Second
)

// binaryPath finds a prebuilt nykha binary. NYKHA_BIN_DIR overrides ../../bin.
func binaryPath(t *testing.T) string {
	t.Helper()
	binDir := os.Getenv("NYKHA_BIN_DIR")
	if binDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Failed to get cwd: %v", err)
		}
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "nykha")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s. Build it with: go build -o bin/nykha ./cmd/nykha", cliPath)
	}
	return cliPath
}

// isolatedEnv points HOME and the database into tempDir and clears NYKHA_* settings.
func isolatedEnv(tempDir, dbPath string) []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "XDG_CONFIG_HOME=") || strings.HasPrefix(e, "NYKHA_") {
			continue
		}
		env = append(env, e)
	}
	return append(env,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir),
		fmt.Sprintf("NYKHA_DB=%s", dbPath),
		"NYKHA_BACKUP_KEEP=3",
	)
}

func TestEndToEndWorkflow(t *testing.T) {
	cliPath := binaryPath(t)
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "nykha", "nykha.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatal(err)
	}
	env := isolatedEnv(tempDir, dbPath)

	t.Log("Initializing storage...")
	out := runCmd(t, cliPath, env, tempDir, "init")
	expectContains(t, out, "Seeded")

	t.Log("Registering user...")
	out = runCmd(t, cliPath, env, tempDir, "user", "touch", "42", "Alice")
	expectContains(t, out, "created")
	out = runCmd(t, cliPath, env, tempDir, "user", "touch", "42", "Alice")
	expectContains(t, out, "Welcome back")

	t.Log("Marking practices...")
	runCmd(t, cliPath, env, tempDir, "mark", "42", "nature")
	runCmd(t, cliPath, env, tempDir, "mark", "42", "nature")
	out = runCmd(t, cliPath, env, tempDir, "today", "42")
	if strings.Count(out, "✅") != 1 {
		t.Errorf("expected exactly one completed category:\n%s", out)
	}
	runCmdExpectFail(t, cliPath, env, tempDir, "mark", "42", "sleeping")

	t.Log("Writing diary...")
	runCmd(t, cliPath, env, tempDir, "diary", "add", "42", "quiet morning by the river")
	out = runCmd(t, cliPath, env, tempDir, "diary", "42")
	expectContains(t, out, "quiet morning by the river")
	runCmdExpectFail(t, cliPath, env, tempDir, "diary", "add", "42", "   ")

	t.Log("Reading stats and content...")
	runCmd(t, cliPath, env, tempDir, "streak", "42")
	runCmd(t, cliPath, env, tempDir, "stats", "42")
	runCmd(t, cliPath, env, tempDir, "stats", "--group")
	runCmd(t, cliPath, env, tempDir, "mantra")
	runCmd(t, cliPath, env, tempDir, "plan", "42")

	t.Log("Sweeping and backing up...")
	runCmd(t, cliPath, env, tempDir, "sweep")
	out = runCmd(t, cliPath, env, tempDir, "backup")
	expectContains(t, out, "Backup written to")
	out = runCmd(t, cliPath, env, tempDir, "backup", "list")
	expectContains(t, out, "nykha-")

	runCmd(t, cliPath, env, tempDir, "doctor")
}

func TestDaemonLifecycle(t *testing.T) {
	cliPath := binaryPath(t)
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "nykha", "nykha.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatal(err)
	}
	env := isolatedEnv(tempDir, dbPath)
	runCmd(t, cliPath, env, tempDir, "init")

	daemon := exec.Command(cliPath, "daemon", "--at", "03:00")
	daemon.Env = env
	daemon.Dir = tempDir
	if err := daemon.Start(); err != nil {
		t.Fatalf("Failed to start daemon: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- daemon.Wait() }()

	lockPath := filepath.Join(filepath.Dir(dbPath), "nykha-daemon.lock")
	waitForFile(t, lockPath, TEST_LOCKFILE_TIMEOUT)

	// A second daemon must refuse to start while the first holds the lock.
	runCmdExpectFail(t, cliPath, env, tempDir, "daemon", "--at", "03:00")

	if err := daemon.Process.Signal(syscall.SIGINT); err != nil {
		t.Fatalf("Failed to signal daemon: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("daemon exited with error: %v", err)
		}
	case <-time.After(TEST_SHUTDOWN_TIMEOUT):
		daemon.Process.Kill()
		t.Fatal("daemon did not stop after SIGINT")
	}

	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("lockfile should be removed on shutdown")
	}
}

func runCmd(t *testing.T, path string, env []string, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}

func runCmdExpectFail(t *testing.T, path string, env []string, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err == nil {
		t.Errorf("Command %s %v should have failed\nOutput: %s", path, args, out)
	}
}

func expectContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func waitForFile(t *testing.T, path string, timeout time.Duration) {
	t.Helper()
	start := time.Now()
	for {
		if _, err := os.Stat(path); err == nil {
			return
		}
		if time.Since(start) > timeout {
			t.Fatalf("Timed out waiting for file %s", path)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
