// Version subcommand.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	osrmkit "github.com/osrmkit/osrmkit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the library and ABI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("osrmkit %d.%d (abi %#08x)\n", osrmkit.VersionMajor, osrmkit.VersionMinor, osrmkit.ABIVersion())
	},
}
