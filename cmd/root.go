package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scalp",
	Short: "An HTML scraping combinator engine",
	Long: `scalp tokenizes HTML, builds an indexed hierarchical representation
of it, and runs composable Scraper/SerialScraper queries against that
representation. This command line is a thin demonstration harness over
the library; programmatic use should import the scalp package directly.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
