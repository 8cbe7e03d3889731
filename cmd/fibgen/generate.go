package main

import (
	"os"

	"github.com/aretw0/fibgen/internal/cli"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <n>",
	Short: "Print the first n terms without prompting",
	Long: `Prints the first n terms of the Fibonacci sequence and exits.

Invalid counts fail with a non-zero exit status. Pass negative values after "--"
so they are not read as flags.`,
	Example: `  fibgen generate 7
  fibgen generate 20 --format json
  fibgen generate 12 --format table`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return cli.RunGenerate(os.Stdout, args[0], cli.GenerateOptions{Format: format})
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("format", "f", cli.FormatText, "Output format: text, json or table")
}
