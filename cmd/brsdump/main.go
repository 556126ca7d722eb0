// Command brsdump inspects and rewrites .brs save files: a debugging
// companion to the brs library, not something the game itself runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "brsdump",
		Short: "Inspect, rewrite, and export Brickadia .brs save files",
	}

	root.AddCommand(newInfoCmd())
	root.AddCommand(newBricksCmd())
	root.AddCommand(newRewriteCmd())
	root.AddCommand(newExportBundleCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
