package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellmarks/shellmarks/internal/bookmark"
	"github.com/shellmarks/shellmarks/internal/tui"
)

var listInput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bookmarks in a file",
	Long: `Parses the bookmarks file and prints alias and path pairs in
file order.

Examples:
  shellmarks list -i ~/.bookmarks`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listInput, "input", "i", "", "Bookmarks file to list")
	_ = listCmd.MarkFlagRequired("input")
}

func runList(cmd *cobra.Command, args []string) error {
	marks, err := bookmark.ParseFile(listInput)
	if err != nil {
		return err
	}

	width := 0
	for _, m := range marks {
		if len(m.Alias) > width {
			width = len(m.Alias)
		}
	}

	for _, m := range marks {
		alias := fmt.Sprintf("%-*s", width, m.Alias)
		fmt.Printf("%s  %s\n", tui.AliasStyle.Render(alias), tui.PathStyle.Render(m.Path))
	}
	return nil
}
