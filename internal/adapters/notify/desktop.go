package notify

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/charmbracelet/log"

	"execlauncher/internal/domain"
	"execlauncher/internal/ports"
)

// AppName is shown as the notification sender
const AppName = "ExecutableLauncher"

// Desktop implements ports.Notifier with the platform notification tool.
// Notifications that cannot be shown are written to the logger instead.
type Desktop struct {
	goos     string
	logger   *log.Logger
	lookPath func(string) (string, error)
}

var _ ports.Notifier = (*Desktop)(nil)

// NewDesktop creates a desktop notifier for the running OS
func NewDesktop(logger *log.Logger) *Desktop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Desktop{
		goos:     runtime.GOOS,
		logger:   logger,
		lookPath: exec.LookPath,
	}
}

// Notify shows n as a popup
func (d *Desktop) Notify(n domain.Notification) {
	d.logger.Debug("show notification", "title", n.Title, "body", n.Body)

	name, args, err := d.BuildCommand(n)
	if err == nil {
		_, err = d.lookPath(name)
	}
	if err == nil {
		err = exec.Command(name, args...).Run()
	}
	if err != nil {
		d.logger.Warn(n.Body, "title", n.Title, "err", err)
	}
}

// BuildCommand returns the program and arguments that display n
func (d *Desktop) BuildCommand(n domain.Notification) (string, []string, error) {
	switch d.goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		args := []string{"--app-name", AppName}
		if n.Icon != "" {
			args = append(args, "--icon", n.Icon)
		}
		args = append(args, n.Title, n.Body)
		return "notify-send", args, nil
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s",
			strconv.Quote(n.Body), strconv.Quote(n.Title))
		return "osascript", []string{"-e", script}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", d.goos)
	}
}
