package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// HeaderLines is the number of leading lines a catalog file reserves for a
// title and comments. They are never parsed as items.
const HeaderLines = 2

// ErrInvalidEncoding is returned when catalog text is not valid UTF-8.
var ErrInvalidEncoding = errors.New("catalog is not valid UTF-8")

// Parse reads a text catalog. After the header lines every line of the form
// "name: tag1, tag2, ..." becomes an entry; lines without a ':' are ignored.
// Names and tags are trimmed but otherwise taken as written.
func Parse(r io.Reader) (*Catalog, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	c := New()
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		if !utf8.ValidString(raw) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidEncoding)
		}
		if lineNo <= HeaderLines {
			continue
		}
		e, ok := parseLine(raw)
		if !ok {
			continue
		}
		c.put(e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return c, nil
}

func parseLine(line string) (Entry, bool) {
	name, rest, ok := strings.Cut(strings.TrimSpace(line), ":")
	if !ok {
		return Entry{}, false
	}
	parts := strings.Split(rest, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return Entry{Name: strings.TrimSpace(name), Tags: tags}, true
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
