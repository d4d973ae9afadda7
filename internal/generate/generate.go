// File: generate.go
// Title: Generation Orchestration
// Description: Wires the configuration, the bookmark parser, and the
//              renderers together into the end-to-end generate operation.

package generate

import (
	"github.com/shellmarks/shellmarks/internal/bookmark"
	"github.com/shellmarks/shellmarks/internal/config"
	smlog "github.com/shellmarks/shellmarks/internal/core/log"
	"github.com/shellmarks/shellmarks/internal/render"
)

// Run compiles the configured bookmarks file into every selected output
// target. The run is all-or-nothing with respect to parsing: no output file
// is created unless the entire input parses. If writing one of several
// targets fails, targets written earlier in the same run remain on disk.
func Run(cfg *config.Config, logger *smlog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	marks, err := bookmark.ParseFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug("bookmarks parsed",
		smlog.String("input", cfg.Input),
		smlog.Int("count", len(marks)))

	targets := Targets(cfg.Outputs)
	if err := render.WriteAll(targets, marks); err != nil {
		return err
	}

	for _, t := range targets {
		logger.Debug("output written",
			smlog.String("format", t.Format.String()),
			smlog.String("path", t.Path))
	}
	logger.Info("generation complete",
		smlog.Int("bookmarks", len(marks)),
		smlog.Int("targets", len(targets)))
	return nil
}

// Targets converts the output selection into render targets in a stable
// order: lf, zsh hash table, cd aliases.
func Targets(o config.Outputs) []render.Target {
	var targets []render.Target
	if o.Lf != "" {
		targets = append(targets, render.Target{Format: render.FormatLf, Path: o.Lf})
	}
	if o.ZshHash != "" {
		targets = append(targets, render.Target{Format: render.FormatZshHash, Path: o.ZshHash})
	}
	if o.CdAlias != "" {
		targets = append(targets, render.Target{Format: render.FormatCdAlias, Path: o.CdAlias})
	}
	return targets
}
