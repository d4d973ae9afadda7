// File: file.go
// Title: Bookmark File Reader
// Description: Reads a whole bookmarks file line by line through the line
//              parser. Comments and blank lines are skipped; the first
//              malformed line aborts the read with an error naming it.

package bookmark

import (
	"bufio"
	"io"
	"os"

	smerror "github.com/shellmarks/shellmarks/internal/core/error"
)

// Parse reads bookmark declarations from r and returns them in file order.
// It fails fast: the first malformed line aborts with an INVALID_FORMAT
// error carrying the line number and the offending text.
func Parse(r io.Reader) ([]Bookmark, error) {
	var marks []Bookmark

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := Classify(scanner.Text())
		switch line.Kind {
		case LineComment, LineBlank:
			continue
		case LineMalformed:
			return nil, smerror.Newf("cannot parse line %d: %q", lineNo, line.Text).
				WithCode(smerror.CodeInvalidFormat).
				WithOperation("bookmark.Parse").
				WithDetail("line", lineNo).
				WithDetail("text", line.Text)
		case LineParsed:
			marks = append(marks, line.Bookmark)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, smerror.Wrap(err, "reading bookmarks").
			WithCode(smerror.CodeIOError).
			WithOperation("bookmark.Parse")
	}

	return marks, nil
}

// ParseFile opens path and parses it with Parse
func ParseFile(path string) ([]Bookmark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, smerror.Wrap(err, "cannot open bookmarks file").
			WithCode(smerror.CodeIOError).
			WithOperation("bookmark.ParseFile").
			WithDetail("path", path)
	}
	defer f.Close()

	return Parse(f)
}
