package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shellmarks/shellmarks/internal/bookmark"
	smerror "github.com/shellmarks/shellmarks/internal/core/error"
	"github.com/shellmarks/shellmarks/internal/tui"
)

var browseInput string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a bookmark interactively",
	Long: `Opens an interactive, filterable browser over the bookmarks file.
Enter prints the selected path to stdout, so the command composes with cd:

  cd "$(shellmarks browse -i ~/.bookmarks)"

Esc or q cancels with a non-zero exit.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(&browseInput, "input", "i", "", "Bookmarks file to browse")
	_ = browseCmd.MarkFlagRequired("input")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	marks, err := bookmark.ParseFile(browseInput)
	if err != nil {
		return err
	}

	// The UI renders on stderr so stdout carries only the chosen path
	program := tea.NewProgram(
		tui.NewModel(marks),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)

	final, err := program.Run()
	if err != nil {
		return smerror.Wrap(err, "browser failed").
			WithCode(smerror.CodeInternal).
			WithOperation("cmd.runBrowse")
	}

	model, ok := final.(tui.Model)
	if !ok || model.Choice() == "" {
		return smerror.New("no bookmark selected").
			WithCode(smerror.CodeNotFound).
			WithOperation("cmd.runBrowse")
	}

	fmt.Println(model.Choice())
	return nil
}
