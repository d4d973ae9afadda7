// File: parser.go
// Title: Bookmark Line Parser
// Description: Implements the single-line grammar for bookmark declarations.
//              A declaration is an alias token, a whitespace separator, and
//              a path that is either quoted (may contain whitespace and '#')
//              or unquoted (terminated by the first whitespace or '#').

package bookmark

import (
	"strings"
)

// Classify parses one line of a bookmarks file, with the trailing newline
// already stripped, and returns its classification. It is a pure function
// of the line text.
//
// Grammar:
//   - Lines whose first non-whitespace character is '#' are comments.
//   - Empty and whitespace-only lines are blank and skipped.
//   - The alias is the maximal run of non-whitespace characters starting at
//     column zero, followed by one or more whitespace characters.
//   - If the character after the separator is '"', the parser commits to
//     the quoted form: the path is everything up to the next '"', which may
//     include whitespace and '#'. A missing closing quote or empty quoted
//     content is malformed; there is no fallback to the unquoted form.
//   - Otherwise the path is the maximal run of characters that are neither
//     whitespace nor '#'.
//   - Anything after the path is ignored, so unquoted paths support
//     same-line trailing comments ("proj /srv/proj # work stuff").
func Classify(line string) Line {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return Line{Kind: LineBlank, Text: line}
	}
	if trimmed[0] == '#' {
		return Line{Kind: LineComment, Text: line}
	}

	// Alias token. An empty run here means the line starts with whitespace
	// before a non-comment token, which the grammar rejects.
	pos := 0
	for pos < len(line) && !isSpace(line[pos]) {
		pos++
	}
	alias := line[:pos]
	if alias == "" {
		return malformed(line)
	}

	// Separator: one or more whitespace characters, with something after.
	sepStart := pos
	for pos < len(line) && isSpace(line[pos]) {
		pos++
	}
	if pos == sepStart || pos == len(line) {
		return malformed(line)
	}

	if line[pos] == '"' {
		return parseQuotedPath(line, alias, pos+1)
	}
	return parseUnquotedPath(line, alias, pos)
}

// parseQuotedPath consumes a quoted path starting just after the opening
// quote. The match succeeds on the prefix; trailing tokens after the
// closing quote are ignored.
func parseQuotedPath(line, alias string, start int) Line {
	end := strings.IndexByte(line[start:], '"')
	// end == -1 is an unterminated quote, end == 0 an empty path;
	// both are malformed.
	if end <= 0 {
		return malformed(line)
	}
	return parsed(line, alias, line[start:start+end])
}

// parseUnquotedPath consumes a path terminated by the first whitespace or
// '#', whichever comes first.
func parseUnquotedPath(line, alias string, start int) Line {
	pos := start
	for pos < len(line) && !isSpace(line[pos]) && line[pos] != '#' {
		pos++
	}
	if pos == start {
		return malformed(line)
	}
	return parsed(line, alias, line[start:pos])
}

func parsed(line, alias, path string) Line {
	return Line{
		Kind:     LineParsed,
		Bookmark: Bookmark{Alias: alias, Path: path},
		Text:     line,
	}
}

func malformed(line string) Line {
	return Line{Kind: LineMalformed, Text: line}
}

// isSpace checks if the character is simple whitespace. The format is
// line-oriented, so space and tab are the only separators that can occur
// inside a line.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}
