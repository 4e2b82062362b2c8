package cmd

import (
	"fmt"

	"github.com/egoavara/launchkit/internal/i18n"
	"github.com/egoavara/launchkit/snippet"
	"github.com/spf13/cobra"
)

var (
	packageOutput string
	packageIcon   string

	packageCmd = &cobra.Command{
		Use:   "package <collection.yaml>",
		Short: "Build a snippet archive from a collection file",
		Long: `Build a distributable snippet archive from a YAML collection file.

The collection file lists the snippets with their names, keywords and
bodies, plus an optional keyword prefix/suffix and icon.

Example:
  launchkit package snippets.yaml
  launchkit package snippets.yaml --output dist/ --icon icon.png`,
		Args: cobra.ExactArgs(1),
		RunE: runPackage,
	}
)

func init() {
	packageCmd.Flags().StringVarP(&packageOutput, "output", "o", "", "destination directory (default: current directory)")
	packageCmd.Flags().StringVar(&packageIcon, "icon", "", "icon file override")
}

func runPackage(cmd *cobra.Command, args []string) error {
	collection, err := snippet.LoadCollection(args[0])
	if err != nil {
		return err
	}

	if packageIcon != "" {
		collection.IconPath = packageIcon
	}

	path, err := collection.Package(snippet.PackageOptions{Dir: packageOutput})
	if err != nil {
		return err
	}

	fmt.Println(i18n.T("package.done", map[string]any{
		"Count": len(collection.Snippets),
		"Path":  path,
	}, len(collection.Snippets)))
	return nil
}
