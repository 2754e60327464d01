// Meta provides metadata about the colormix project, like its version,
// contributors, and license.
//
// The generator itself lives under internal/ and is driven by
//     github.com/amonks/colormix/cmd/colormix
package meta

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed LICENSE.md
var License string

//go:embed CONTRIBUTORS.md
var contributors string
var Contributors string

var (
	Version     = "(devel)"
	Revision    = "unknown"
	ReleaseDate = "unknown"
	DirtyBuild  = false
)

func init() {
	var b strings.Builder
	for _, line := range strings.Split(contributors, "\n") {
		if strings.HasPrefix(line, "- ") {
			b.WriteString(line + "\n")
		}
	}
	Contributors = b.String()

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if info.Main.Version != "" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			Revision = s.Value
		case "vcs.time":
			ReleaseDate = s.Value
		case "vcs.modified":
			DirtyBuild = s.Value == "true"
		}
	}
}
