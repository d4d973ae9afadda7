// File: bookmark.go
// Title: Bookmark Data Model
// Description: Defines the Bookmark pair and the sum-type classification of
//              input lines. A line is exactly one of parsed, comment, blank,
//              or malformed; callers must handle all four.

package bookmark

// Bookmark is one alias-to-directory mapping extracted from a single line
// of a bookmarks file. Alias is non-empty and whitespace-free. Path is
// non-empty; it contains whitespace or '#' only when it was quoted in the
// source line. Bookmarks are immutable after parsing and keep file order.
type Bookmark struct {
	Alias string
	Path  string
}

// Kind classifies a single line of a bookmarks file
type Kind int

const (
	// LineParsed means the line yielded a Bookmark
	LineParsed Kind = iota

	// LineComment means the line starts with '#' after leading whitespace
	// and is discarded without error
	LineComment

	// LineBlank means the line is empty or whitespace-only. Blank lines are
	// skipped like comments; the format is human-edited and stray blank
	// lines between groups of bookmarks are not worth aborting over.
	LineBlank

	// LineMalformed means the line is neither a comment nor parseable under
	// either path grammar. The first malformed line aborts the whole run.
	LineMalformed
)

// String returns the string representation of the line kind
func (k Kind) String() string {
	switch k {
	case LineParsed:
		return "parsed"
	case LineComment:
		return "comment"
	case LineBlank:
		return "blank"
	case LineMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Line is the classification result for one input line
type Line struct {
	Kind     Kind
	Bookmark Bookmark // set only when Kind == LineParsed
	Text     string   // the original line, kept for error reporting
}
