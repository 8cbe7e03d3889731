package main

import (
	"fmt"
	"os"

	"github.com/aretw0/fibgen/internal/cli"
	"github.com/aretw0/fibgen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Ask for a number of terms and print the sequence",
	Long:  `Prompts for the number of terms on standard input and prints the Fibonacci sequence. Invalid input is reported and never fails the process.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.PromptOptions{
			Banner: !quiet && tui.IsTerminal(os.Stdout) && tui.IsTerminal(os.Stdin),
			Debug:  debug,
		}
		if err := cli.RunPrompt(os.Stdin, os.Stdout, opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)

	promptCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
	rootCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")

	// The prompt is the default when no subcommand is given.
	rootCmd.Run = promptCmd.Run
}
