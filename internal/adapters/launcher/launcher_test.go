package launcher

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestCommand_UsesPathAsArgv(t *testing.T) {
	l := NewLauncher(nil)

	cmd := l.Command("/opt/my tools/run; rm -rf x")

	if cmd.Path != "/opt/my tools/run; rm -rf x" {
		t.Errorf("Path = %q", cmd.Path)
	}
	if len(cmd.Args) != 1 || cmd.Args[0] != cmd.Path {
		t.Errorf("expected single argv entry, got %q", cmd.Args)
	}
	if cmd.SysProcAttr == nil || !cmd.SysProcAttr.Setsid {
		t.Error("expected child to run in a new session")
	}
}

func TestLaunch_MissingExecutable(t *testing.T) {
	l := NewLauncher(nil)

	err := l.Launch(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
}

func TestLaunch_DoesNotWait(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")
	script := filepath.Join(dir, "touch.sh")
	content := "#!/bin/sh\ntouch '" + marker + "'\n"
	if err := os.WriteFile(script, []byte(content), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	if err := NewLauncher(nil).Launch(script); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(marker); err == nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("launched script never ran")
}

func TestLaunch_ReapsExitedChild(t *testing.T) {
	if _, err := os.Stat("/proc/self/status"); err != nil {
		t.Skip("requires /proc")
	}

	dir := t.TempDir()
	pidFile := filepath.Join(dir, "pid")
	script := filepath.Join(dir, "quick.sh")
	content := "#!/bin/sh\necho $$ > '" + pidFile + ".tmp'\nmv '" + pidFile + ".tmp' '" + pidFile + "'\n"
	if err := os.WriteFile(script, []byte(content), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	if err := NewLauncher(nil).Launch(script); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}

	var pid int
	deadline := time.Now().Add(5 * time.Second)
	for pid == 0 && time.Now().Before(deadline) {
		if data, err := os.ReadFile(pidFile); err == nil {
			pid, _ = strconv.Atoi(strings.TrimSpace(string(data)))
		}
		time.Sleep(20 * time.Millisecond)
	}
	if pid == 0 {
		t.Fatal("launched script never reported its pid")
	}

	// A reaped child disappears from /proc; an unreaped one stays in state Z
	status := filepath.Join("/proc", strconv.Itoa(pid), "status")
	var last string
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(status)
		if err != nil {
			return
		}
		last = string(data)
		time.Sleep(20 * time.Millisecond)
	}
	t.Errorf("pid %d was not reaped:\n%s", pid, last)
}
