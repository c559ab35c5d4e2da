// Package nameutil validates and cleans food names and tags before they are
// stored or written back to a text catalog.
package nameutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateName checks whether the provided name is acceptable for a food item.
// It trims and checks for empty names, non-UTF8 bytes and control characters.
// A ':' is rejected because it separates the name from its tags in catalog
// files. It does NOT mutate the input; use SanitizeName first when desired.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("invalid name: name cannot be empty")
	}
	if err := validateText("name", name); err != nil {
		return err
	}
	if strings.ContainsRune(name, ':') {
		return fmt.Errorf("invalid name: %q contains ':'", name)
	}
	return nil
}

// ValidateTag checks a single tag. Tags may not contain ',' since that
// separates tags in catalog files.
func ValidateTag(tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("invalid tag: tag cannot be empty")
	}
	if err := validateText("tag", tag); err != nil {
		return err
	}
	if strings.ContainsRune(tag, ',') {
		return fmt.Errorf("invalid tag: %q contains ','", tag)
	}
	return nil
}

func validateText(kind, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("invalid %s: contains invalid encoding", kind)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid %s: contains control character U+%04X (%q)", kind, r, r)
		}
	}
	return nil
}

// SanitizeName removes common invisible/control characters and returns the
// sanitized string and a boolean indicating whether any change was made.
// It removes control characters, NULs, and zero-width characters commonly
// introduced by copy/paste (e.g., U+200B). Trimming of leading/trailing
// whitespace is also performed.
func SanitizeName(name string) (string, bool) {
	if name == "" {
		return name, false
	}
	runes := []rune(name)
	out := make([]rune, 0, len(runes))
	changed := false
	for _, r := range runes {
		if unicode.IsControl(r) {
			changed = true
			continue
		}
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			changed = true
			continue
		}
		out = append(out, r)
	}
	res := strings.TrimSpace(string(out))
	if res != name {
		changed = true
	}
	return res, changed
}

// SanitizeTags cleans every tag with SanitizeName and drops the ones that
// end up empty. Order and repeats are kept.
func SanitizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		s, _ := SanitizeName(t)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
