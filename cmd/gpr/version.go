package main

import (
	"fmt"
	"runtime/debug"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func buildVersionString() string {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}

	rev := vcsRevision()
	if rev == "" {
		return fmt.Sprintf("gpr %s", v)
	}
	return fmt.Sprintf("gpr %s (%s)", v, rev)
}

// vcsRevision returns the short commit the binary was built from, if recorded.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
