package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
)

// OpenEditor opens the given file in the user's preferred editor.
// It respects the $EDITOR environment variable, which may carry arguments
// ("code --wait"). On Windows if $EDITOR is not set, it falls back to
// notepad; on Unix it falls back to vi.
func OpenEditor(path string) error {
	argv, err := EditorCommand(os.Getenv("EDITOR"))
	if err != nil {
		return err
	}
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open editor: %w", err)
	}
	return nil
}

// EditorCommand splits an $EDITOR value into argv, applying the platform
// default when it is blank.
func EditorCommand(editor string) ([]string, error) {
	argv, err := shellquote.Split(editor)
	if err != nil {
		return nil, fmt.Errorf("parse $EDITOR: %w", err)
	}
	if len(argv) == 0 {
		if runtime.GOOS == "windows" {
			return []string{"notepad"}, nil
		}
		return []string{"vi"}, nil
	}
	return argv, nil
}
