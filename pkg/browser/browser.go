package browser

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var (
	ErrEmptyURL    = errors.New("browser: empty url")
	ErrInvalidURL  = errors.New("browser: url cannot start with dash")
	ErrUnsupported = errors.New("browser: unsupported platform")
)

// Launcher starts a process without waiting for it to exit.
type Launcher func(ctx context.Context, name string, args ...string) error

// Opener opens URLs in the desktop's default browser.
type Opener struct {
	goos   string
	launch Launcher
}

// New creates an Opener for the current platform.
func New() *Opener {
	return &Opener{goos: runtime.GOOS, launch: startProcess}
}

// NewWithLauncher creates an Opener for goos that starts processes through launch.
func NewWithLauncher(goos string, launch Launcher) *Opener {
	return &Opener{goos: goos, launch: launch}
}

// Open launches the platform's URL handler for url.
func (o *Opener) Open(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}
	if strings.HasPrefix(url, "-") {
		return ErrInvalidURL
	}

	name, args, err := command(o.goos, url)
	if err != nil {
		return err
	}
	return o.launch(ctx, name, args...)
}

func command(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{"--", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", url}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupported, goos)
	}
}

func startProcess(ctx context.Context, name string, args ...string) error {
	// The handler may outlive the request; only the launch is bound to ctx.
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
