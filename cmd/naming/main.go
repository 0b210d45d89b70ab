// Command naming manages naming conventions: define typed fields, group
// them into profiles, solve canonical names from partial input, and
// decode existing names back into field values. State is persisted as
// JSON documents so separate sessions agree on the convention.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
