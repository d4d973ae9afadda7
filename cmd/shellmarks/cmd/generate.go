package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shellmarks/shellmarks/internal/config"
	smlog "github.com/shellmarks/shellmarks/internal/core/log"
	"github.com/shellmarks/shellmarks/internal/generate"
)

var (
	generateInput   string
	generateLf      string
	generateZsh     string
	generateCdAlias string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the selected shell integration files",
	Long: `Reads the bookmarks file and writes every selected output format.
At least one output must be selected. The run is all-or-nothing: if any
line fails to parse, no output is written.

Examples:
  shellmarks generate -i ~/.bookmarks -l ~/.config/lf/bookmarks
  shellmarks generate -i ~/.bookmarks -z ~/.zsh_named_dirs -c ~/.cd_aliases
  shellmarks generate --config ~/.config/shellmarks/config.toml
  shellmarks generate --config config.yaml -i other-bookmarks.txt`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Bookmarks file to read")
	generateCmd.Flags().StringVarP(&generateLf, "lf", "l", "", "Write lf jump map to this file")
	generateCmd.Flags().StringVarP(&generateZsh, "zsh", "z", "", "Write zsh named-directory hash table to this file")
	generateCmd.Flags().StringVarP(&generateCdAlias, "cd-alias", "c", "", "Write cd aliases to this file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	// Flags win over config-file values
	cfg.Merge(config.Config{
		Input: generateInput,
		Outputs: config.Outputs{
			Lf:      generateLf,
			ZshHash: generateZsh,
			CdAlias: generateCdAlias,
		},
	})

	logger := smlog.GetDefault().WithName("generate")
	return generate.Run(cfg, logger)
}

// resolveConfig loads the config file when --config is given, or starts
// from an empty configuration otherwise
func resolveConfig() (*config.Config, error) {
	if cfgFile == "" {
		return &config.Config{}, nil
	}
	return config.Load(cfgFile)
}
