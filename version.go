package coverart

import (
	"runtime"
	"runtime/debug"
)

// Version is the release of this module.
const Version = "0.1.0"

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version   string
	Revision  string // VCS revision, "unknown" outside a VCS build
	Time      string // VCS commit time (RFC 3339)
	Modified  bool   // built from a dirty working tree
	GoVersion string
}

// ReadBuildInfo returns Version together with the VCS stamp the Go toolchain
// embeds in binaries built from a checkout.
func ReadBuildInfo() BuildInfo {
	bi := BuildInfo{
		Version:   Version,
		Revision:  "unknown",
		Time:      "unknown",
		GoVersion: runtime.Version(),
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if info.GoVersion != "" {
		bi.GoVersion = info.GoVersion
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			bi.Revision = s.Value
		case "vcs.time":
			bi.Time = s.Value
		case "vcs.modified":
			bi.Modified = s.Value == "true"
		}
	}
	return bi
}
