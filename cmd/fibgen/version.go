package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fibgen"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fibgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fibgen version %s\n", strings.TrimSpace(fibgen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
