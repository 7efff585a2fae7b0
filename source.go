// Package coinboard exposes the dashboard's own source, which seeds the
// "App source code" panel on first load.
package coinboard

import (
	"embed"
	"strings"
)

//go:embed cmd/coinboard/main.go internal/orchestrator/orchestrator.go internal/state/store.go internal/api/markets.go
var sources embed.FS

// sourceFiles is the order in which files appear in the panel.
var sourceFiles = []string{
	"cmd/coinboard/main.go",
	"internal/orchestrator/orchestrator.go",
	"internal/state/store.go",
	"internal/api/markets.go",
}

// AppSource returns the embedded source files, each preceded by a header
// line naming its path.
func AppSource() string {
	var b strings.Builder
	for i, name := range sourceFiles {
		data, err := sources.ReadFile(name)
		if err != nil {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("// ---- " + name + " ----\n\n")
		b.Write(data)
	}
	return b.String()
}
