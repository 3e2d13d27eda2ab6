package cmd

import (
	"fmt"
	"os"

	"github.com/clems4ever/scalp"
	"github.com/spf13/cobra"
)

var selectTag string

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape [html_file]",
	Short: "Print the text content of every element matching --tag",
	Long: `scrape reads an HTML file and prints the text content of every
element matching --tag, in document order. It's a thin demonstration of
the Scraper combinators; programmatic use should import the scalp
package directly rather than shelling out to this command.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			os.Exit(1)
		}

		texts, ok := scalp.Scrape(string(data), scalp.Texts(scalp.Tag(selectTag)))
		if !ok {
			fmt.Println("no matches")
			return
		}
		for _, t := range texts {
			fmt.Println(t)
		}
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	scrapeCmd.Flags().StringVarP(&selectTag, "tag", "t", "", "tag name to extract text from")
	scrapeCmd.MarkFlagRequired("tag")
}
