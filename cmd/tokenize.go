package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clems4ever/scalp/forest"
	"github.com/clems4ever/scalp/html"
	"github.com/spf13/cobra"
)

// tokenizeCmd represents the tokenize command
var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [html_file]",
	Short: "Tokenize and annotate an HTML file",
	Long:  `Tokenize an HTML file, annotate matching open/close tags, and print the result as JSON.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		tokens, err := html.Tokenize(f)
		if err != nil {
			fmt.Printf("Error tokenizing: %v\n", err)
			os.Exit(1)
		}

		tags := forest.AnnotateTags(tokens)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tags); err != nil {
			fmt.Printf("Error encoding: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}
