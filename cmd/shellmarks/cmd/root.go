package cmd

import (
	"github.com/spf13/cobra"

	smlog "github.com/shellmarks/shellmarks/internal/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "shellmarks",
	Short: "Compile a bookmarks file into shell integration scripts",
	Long: `shellmarks turns a plain-text bookmarks file (alias-to-directory
mappings, one per line, '#' comments) into shell integration scripts:

  lf jump map          - map g{alias} cd {path}
  zsh named dirs       - hash -d {alias}={path}
  cd aliases           - alias cd{alias}="{path}"

Paths containing spaces or '#' are written double-quoted in the
bookmarks file:

  proj /home/user/project
  docs "/home/user/My Documents"`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			smlog.GetDefault().SetLevel(smlog.LevelDebug)
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
