package cmd

import (
	"fmt"

	"github.com/egoavara/launchkit/internal/i18n"
	"github.com/egoavara/launchkit/internal/tui"
	"github.com/egoavara/launchkit/snippet"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse <collection.yaml>",
	Short: "Browse a snippet collection interactively",
	Long: `Browse a YAML snippet collection in an interactive picker.

Type to filter, Enter prints the selected snippet body to stdout.

Example:
  launchkit browse snippets.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	collection, err := snippet.LoadCollection(args[0])
	if err != nil {
		return err
	}

	if len(collection.Snippets) == 0 {
		fmt.Println(i18n.T("browse.empty", map[string]any{"Name": collection.Name}))
		return nil
	}

	result, err := tui.Browse(collection)
	if err != nil {
		return err
	}
	if result.Cancelled {
		return nil
	}

	fmt.Println(result.Selected.Body)
	return nil
}
