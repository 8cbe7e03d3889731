package fibgen

import _ "embed"

// Version is the release version, read from the VERSION file at build time.
// It may carry a trailing newline; callers trim it.
//
//go:embed VERSION
var Version string
