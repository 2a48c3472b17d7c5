// Package opener hands files over to other programs.
package opener

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/dumbcommander/dumbcommander/pkg/logs"
)

var log = logs.Logger("opener")

const DefaultEditor = "vi"

var execCommand = exec.Command

type Opener struct {
	editor string
	goos   string
}

// New returns an Opener using editor for Edit. The editor may carry
// arguments, e.g. "code --wait".
func New(editor string) *Opener {
	if strings.TrimSpace(editor) == "" {
		editor = DefaultEditor
	}
	return &Opener{editor: editor, goos: runtime.GOOS}
}

// OpenCommand builds the command that opens path with the OS default handler.
func (o *Opener) OpenCommand(path string) (*exec.Cmd, error) {
	switch o.goos {
	case "darwin":
		return execCommand("open", path), nil
	case "windows":
		return execCommand("cmd", "/c", "start", "", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return execCommand("xdg-open", path), nil
	}
	return nil, fmt.Errorf("opening files is not supported on %s", o.goos)
}

// Open starts the default handler for path and does not wait for it.
func (o *Opener) Open(path string) error {
	cmd, err := o.OpenCommand(path)
	if err != nil {
		return err
	}
	if err = cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	log.Debugw("opened", "path", path, "cmd", cmd.Path)
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Warnf("%s exited with error: %v", cmd.Path, err)
		}
	}()
	return nil
}

// EditCommand builds the editor command attached to the process terminal.
func (o *Opener) EditCommand(path string) *exec.Cmd {
	args := strings.Fields(o.editor)
	cmd := execCommand(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Edit runs the editor on path and waits for it to exit.
// The caller must release the terminal first.
func (o *Opener) Edit(path string) error {
	if err := o.EditCommand(path).Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", o.editor, err)
	}
	return nil
}
