// Package utils holds small terminal helpers for catalog maintenance commands.
package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmReader prompts on out and reads the answer from in. Anything other
// than y or yes, including EOF, is a no.
func ConfirmReader(msg string, in io.Reader, out io.Writer) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", msg)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
