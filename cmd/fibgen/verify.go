package main

import (
	"os"

	"github.com/aretw0/fibgen/internal/cli"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the generator against a fixed list of sample inputs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		inputs, _ := cmd.Flags().GetIntSlice("inputs")
		cli.RunVerify(os.Stdout, inputs)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().IntSlice("inputs", cli.DefaultVerifyInputs, "Comma separated term counts to check")
}
