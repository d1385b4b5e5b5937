package launcher

import (
	"fmt"
	"io"
	"os/exec"
	"syscall"

	"github.com/charmbracelet/log"

	"execlauncher/internal/ports"
)

// Launcher implements ports.Launcher by spawning processes directly
type Launcher struct {
	logger *log.Logger
}

// Ensure Launcher implements ports.Launcher
var _ ports.Launcher = (*Launcher)(nil)

// NewLauncher creates a new launcher
func NewLauncher(logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Launcher{logger: logger}
}

// Launch starts the executable and returns without waiting for it.
// The child runs in its own session so it outlives the caller and is
// reaped in the background.
func (l *Launcher) Launch(path string) error {
	cmd := l.Command(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", path, err)
	}

	pid := cmd.Process.Pid
	l.logger.Debug("launched", "path", path, "pid", pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug("launched process exited", "path", path, "pid", pid, "err", err)
			return
		}
		l.logger.Debug("launched process exited", "path", path, "pid", pid)
	}()
	return nil
}

// Command returns an exec.Cmd running path with no arguments and no shell.
// Standard streams are left unset so the child gets /dev/null.
func (l *Launcher) Command(path string) *exec.Cmd {
	cmd := exec.Command(path)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd
}
