// Package settings provides build metadata, runtime configuration, and
// context helpers used across the colx CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "colx"

// StdinPath is the input argument that selects standard input.
const StdinPath = "-"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// InputSettings says where the lines to lay out come from.
type InputSettings struct {
	FromStdin bool
	Path      string
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the application.
type Run struct {
	MinLogLevel int8
	Input       InputSettings
	ConfigPath  string
}

// NewCliParams returns a Run that reads standard input and logs at Info level.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Input: InputSettings{
			FromStdin: true,
			Path:      StdinPath,
		},
	}
}

// WithInputPath points r at path. An empty path or "-" selects standard input.
func (r *Run) WithInputPath(path string) *Run {
	if path == "" || path == StdinPath {
		r.Input = InputSettings{FromStdin: true, Path: StdinPath}
		return r
	}
	r.Input = InputSettings{FromStdin: false, Path: path}
	return r
}
