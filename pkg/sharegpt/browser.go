package sharegpt

import (
	"fmt"
	"os/exec"
	"runtime"
)

// BrowserOpener opens URLs with the operating system's default handler.
type BrowserOpener struct{}

// Open starts the platform URL handler without waiting for it to exit.
func (BrowserOpener) Open(url string) error {
	cmd, err := browserCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}

	return cmd.Start()
}

func browserCommand(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "windows":
		// Empty quoted title so start treats url as the target.
		return exec.Command("cmd", "/c", "start", `""`, url), nil //nolint:gosec // url is built from the service response.
	case "darwin":
		return exec.Command("open", url), nil //nolint:gosec
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil //nolint:gosec
	default:
		return nil, fmt.Errorf("sharegpt: unsupported platform: %s", goos)
	}
}
