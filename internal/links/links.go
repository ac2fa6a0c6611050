// Package links opens external targets in the user's browser.
package links

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedScheme is returned for anything other than http(s).
var ErrUnsupportedScheme = errors.New("links: unsupported scheme")

// Opener hands a URL to something that displays it outside the app.
type Opener interface {
	Open(target string) error
}

// Validate checks that target is an absolute http(s) URL.
func Validate(target string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return nil, fmt.Errorf("parsing link: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("links: missing host in %q", target)
	}
	return u, nil
}

// Browser opens links with the platform's default handler.
type Browser struct {
	goos  string
	start func(name string, args ...string) error
}

// NewBrowser returns a Browser for the running platform.
func NewBrowser() *Browser {
	return &Browser{goos: runtime.GOOS, start: startDetached}
}

// Open implements Opener. The handler process is started, not awaited.
func (b *Browser) Open(target string) error {
	u, err := Validate(target)
	if err != nil {
		return err
	}
	name, args := command(b.goos, u.String())
	if err := b.start(name, args...); err != nil {
		return fmt.Errorf("opening %s: %w", u.Host, err)
	}
	return nil
}

func command(goos, target string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	case "darwin":
		return "open", []string{target}
	default:
		return "xdg-open", []string{target}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
