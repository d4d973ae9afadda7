package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellmarks/shellmarks/internal/bookmark"
)

var checkInput string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a bookmarks file without writing anything",
	Long: `Parses the bookmarks file and reports the first malformed line,
if any. Exits non-zero on parse failure.

Examples:
  shellmarks check -i ~/.bookmarks`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "Bookmarks file to check")
	_ = checkCmd.MarkFlagRequired("input")
}

func runCheck(cmd *cobra.Command, args []string) error {
	marks, err := bookmark.ParseFile(checkInput)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d bookmarks OK\n", checkInput, len(marks))
	return nil
}
