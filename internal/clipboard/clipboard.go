// Package clipboard writes text to the user's clipboard.
//
// The system clipboard is tried first. When it is missing or refuses the
// write, an OSC 52 sequence is sent to the controlling terminal, which most
// terminal emulators (and tmux with passthrough) forward to the host
// clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned by a mechanism that cannot run here.
var ErrUnavailable = errors.New("clipboard: unavailable")

// Method names the mechanism that accepted a copy.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

// WriteFunc writes text with one mechanism.
type WriteFunc func(text string) error

// Copier tries a primary mechanism, then a fallback.
type Copier struct {
	primary  WriteFunc
	fallback WriteFunc
}

// New returns a Copier using the system clipboard and OSC 52 on /dev/tty.
func New() *Copier {
	return NewWith(writeSystem, writeOSC52)
}

// NewWith returns a Copier with explicit mechanisms. A nil mechanism is
// treated as unavailable.
func NewWith(primary, fallback WriteFunc) *Copier {
	return &Copier{primary: primary, fallback: fallback}
}

// Copy writes text and reports which mechanism took it. When both fail the
// returned error joins both causes.
func (c *Copier) Copy(text string) (Method, error) {
	perr := run(c.primary, text)
	if perr == nil {
		return MethodSystem, nil
	}
	ferr := run(c.fallback, text)
	if ferr == nil {
		return MethodOSC52, nil
	}
	return "", errors.Join(
		fmt.Errorf("system clipboard: %w", perr),
		fmt.Errorf("osc52: %w", ferr),
	)
}

func run(fn WriteFunc, text string) error {
	if fn == nil {
		return ErrUnavailable
	}
	return fn(text)
}

func writeSystem(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

func writeOSC52(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer tty.Close()

	seq := osc52.New(text)
	if inTmux() {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(tty); err != nil {
		return fmt.Errorf("writing osc52: %w", err)
	}
	return nil
}

func inTmux() bool {
	return os.Getenv("TMUX") != "" || strings.HasPrefix(os.Getenv("TERM"), "tmux")
}
