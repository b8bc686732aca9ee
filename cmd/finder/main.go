// Command finder is the better.finder quick launcher.
package main

import (
	"os"

	"github.com/CodeZobac/better.finder/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
