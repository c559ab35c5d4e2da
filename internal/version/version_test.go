package version

import (
	"runtime/debug"
	"testing"
)

func TestWithRevision(t *testing.T) {
	if got := withRevision("v1", nil); got != "v1" {
		t.Fatalf("no settings: got %q", got)
	}
	got := withRevision("v1", []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
	})
	if got != "v1 (0123456-dirty)" {
		t.Fatalf("got %q", got)
	}
}
