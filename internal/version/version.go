// Package version provides version information.
package version

import "runtime/debug"

// Version is set at build time via -ldflags "-X github.com/VoxDroid/mealr/internal/version.Version=<value>"
// The default is a development placeholder.
var Version = "v0.3.0"

// String returns Version, with the VCS revision appended when the binary
// was built from a checkout.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	return withRevision(Version, info.Settings)
}

func withRevision(v string, settings []debug.BuildSetting) string {
	var rev string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return v
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return v + " (" + rev + ")"
}
