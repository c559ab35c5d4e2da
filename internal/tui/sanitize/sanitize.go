// Package sanitize cleans catalog text before it is drawn on a terminal.
// Catalog files are user supplied, so a name or tag may carry escape
// sequences that would move the cursor, clear the screen or switch the
// terminal into another mode.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

// Precompiled regexps used by Display.
var (
	oscRe = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
	csiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
)

// Display removes OSC and CSI sequences, including colour codes, and any
// remaining control characters. Tabs become single spaces.
func Display(in string) string {
	if !strings.ContainsFunc(in, unicode.IsControl) {
		return in
	}
	out := oscRe.ReplaceAllString(in, "")
	out = csiRe.ReplaceAllString(out, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, out)
}

// Tags applies Display to every tag.
func Tags(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = Display(t)
	}
	return out
}
