// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/ctzreddy/llmjudge"
)

// Ensure Command implements the Clipboard interface.
var _ llmjudge.Clipboard = (*Command)(nil)

// Command implements Clipboard by piping content into an external copy command.
type Command struct {
	name string
	args []string
}

// candidates lists known copy commands in preference order.
var candidates = []struct {
	name string
	args []string
}{
	{"pbcopy", nil},                           // macOS
	{"wl-copy", nil},                          // Wayland
	{"xclip", []string{"-selection", "clipboard"}}, // X11
}

// New returns a Command using the first copy utility found on PATH.
func New() (*Command, error) {
	for _, c := range candidates {
		if _, err := exec.LookPath(c.name); err == nil {
			return &Command{name: c.name, args: c.args}, nil
		}
	}
	return nil, fmt.Errorf("clipboard: no copy command found (tried pbcopy, wl-copy, xclip)")
}

// NewCommand returns a Command that pipes into the named program, for callers
// that want to override detection.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
