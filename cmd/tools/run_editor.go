package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/hyperion-dev/hyperion-site/config"
)

var ErrNoEditor = errors.New("no editor configured")

// RunEditor opens file in the editor named by `tools.editor`, or by $EDITOR
// when that key is unset, and waits for it to exit.
func RunEditor(ctx context.Context, file string) error {
	editorPath, err := lookupEditor()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, editorPath, file)

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", editorPath, err)
	}

	return nil
}

func lookupEditor() (string, error) {
	name := config.Editor()
	if !config.HasEditor() {
		name = os.Getenv("EDITOR")
	}

	if name == "" {
		return "", fmt.Errorf("%w: set tools.editor or EDITOR", ErrNoEditor)
	}

	return exec.LookPath(name)
}
