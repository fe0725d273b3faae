// Package sysinfo probes the host: elevation status, free disk space and
// the operating system release. Probes never block the wizard; callers
// decide what counts as fatal.
package sysinfo

// Release describes the detected operating system release.
type Release struct {
	// Name is the marketing release, e.g. "10" or "11" on Windows.
	Name string
	// Build is the build identifier when known.
	Build string
	// Supported reports whether the wizard fully supports this release.
	// An unsupported release only produces a warning.
	Supported bool
}
