// File: render.go
// Title: Shell Integration Renderers
// Description: Renders parsed bookmarks into the three shell-integration
//              output formats: an lf jump-map script, a zsh named-directory
//              hash table, and a set of cd aliases.

package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/shellmarks/shellmarks/internal/bookmark"
	smerror "github.com/shellmarks/shellmarks/internal/core/error"
)

// Format represents a shell-integration output format
type Format int

const (
	// FormatLf produces lf file-manager jump mappings: map g{alias} cd {path}
	FormatLf Format = iota

	// FormatZshHash produces zsh named-directory entries: hash -d {alias}={path}
	FormatZshHash

	// FormatCdAlias produces cd aliases: alias cd{alias}="{path}"
	FormatCdAlias
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatLf:
		return "lf"
	case FormatZshHash:
		return "zsh-hash"
	case FormatCdAlias:
		return "cd-alias"
	default:
		return "unknown"
	}
}

// Target selects one output format and the file it is written to
type Target struct {
	Format Format
	Path   string
}

// Line renders a single bookmark through the template for f, including the
// trailing newline. Quoting is lossy on output: a quoted source path is
// emitted bare (or inside the alias template's fixed quotes), which is what
// the consuming shells expect.
func Line(f Format, b bookmark.Bookmark) string {
	switch f {
	case FormatLf:
		return fmt.Sprintf("map g%s cd %s\n", b.Alias, b.Path)
	case FormatZshHash:
		return fmt.Sprintf("hash -d %s=%s\n", b.Alias, b.Path)
	case FormatCdAlias:
		return fmt.Sprintf("alias cd%s=\"%s\"\n", b.Alias, b.Path)
	default:
		return ""
	}
}

// Render produces the full file content for f, one line per bookmark in
// input order.
func Render(f Format, marks []bookmark.Bookmark) string {
	var b strings.Builder
	for _, mark := range marks {
		b.WriteString(Line(f, mark))
	}
	return b.String()
}

// WriteAll renders and writes every target. Callers invoke it only after
// the whole input parsed, so no output file ever reflects a truncated
// bookmark list. A failed write aborts immediately; targets already written
// in this call remain on disk.
func WriteAll(targets []Target, marks []bookmark.Bookmark) error {
	for _, t := range targets {
		content := Render(t.Format, marks)
		if err := os.WriteFile(t.Path, []byte(content), 0o644); err != nil {
			return smerror.Wrap(err, "cannot write output file").
				WithCode(smerror.CodeIOError).
				WithOperation("render.WriteAll").
				WithDetail("path", t.Path).
				WithDetail("format", t.Format.String())
		}
	}
	return nil
}
