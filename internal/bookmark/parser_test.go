// File: parser_test.go
// Title: Bookmark Line Parser Unit Tests
// Description: Tests the single-line grammar: comment detection, the
//              quoted and unquoted path forms, the quoted-form tie-break,
//              and every malformed shape.

package bookmark

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKind  Kind
		wantAlias string
		wantPath  string
	}{
		{
			name:      "simple unquoted bookmark",
			input:     "proj /home/user/project",
			wantKind:  LineParsed,
			wantAlias: "proj",
			wantPath:  "/home/user/project",
		},
		{
			name:      "quoted path with spaces",
			input:     `docs "/home/user/My Documents"`,
			wantKind:  LineParsed,
			wantAlias: "docs",
			wantPath:  "/home/user/My Documents",
		},
		{
			name:      "quoted path with hash and spaces",
			input:     `a "test test #test" asdf`,
			wantKind:  LineParsed,
			wantAlias: "a",
			wantPath:  "test test #test",
		},
		{
			name:      "only considers up to second token",
			input:     "a b c",
			wantKind:  LineParsed,
			wantAlias: "a",
			wantPath:  "b",
		},
		{
			name:      "unquoted path cut at hash without space",
			input:     "a b# c",
			wantKind:  LineParsed,
			wantAlias: "a",
			wantPath:  "b",
		},
		{
			name:      "trailing comment after unquoted path",
			input:     "proj /srv/proj # work stuff",
			wantKind:  LineParsed,
			wantAlias: "proj",
			wantPath:  "/srv/proj",
		},
		{
			name:      "multiple separator spaces consumed as one",
			input:     "proj    /srv/proj",
			wantKind:  LineParsed,
			wantAlias: "proj",
			wantPath:  "/srv/proj",
		},
		{
			name:      "tab separator",
			input:     "proj\t/srv/proj",
			wantKind:  LineParsed,
			wantAlias: "proj",
			wantPath:  "/srv/proj",
		},
		{
			name:      "trailing tokens after closing quote ignored",
			input:     `docs "/home/d d" trailing junk`,
			wantKind:  LineParsed,
			wantAlias: "docs",
			wantPath:  "/home/d d",
		},
		{
			name:     "comment line",
			input:    "# my bookmarks",
			wantKind: LineComment,
		},
		{
			name:     "comment line with leading whitespace",
			input:    "   \t # indented comment",
			wantKind: LineComment,
		},
		{
			name:     "comment without space after hash",
			input:    "#tight",
			wantKind: LineComment,
		},
		{
			name:     "empty line",
			input:    "",
			wantKind: LineBlank,
		},
		{
			name:     "whitespace-only line",
			input:    "  \t  ",
			wantKind: LineBlank,
		},
		{
			name:     "single token is malformed",
			input:    "justanalias",
			wantKind: LineMalformed,
		},
		{
			name:     "alias with trailing whitespace but no path",
			input:    "alias   ",
			wantKind: LineMalformed,
		},
		{
			name:     "unterminated quote commits to quoted form",
			input:    `alias "unterminated`,
			wantKind: LineMalformed,
		},
		{
			name:     "empty quoted path",
			input:    `alias ""`,
			wantKind: LineMalformed,
		},
		{
			name:     "path is only a hash",
			input:    "alias #comment",
			wantKind: LineMalformed,
		},
		{
			name:     "leading whitespace before alias",
			input:    "  proj /srv/proj",
			wantKind: LineMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)

			if got.Kind != tt.wantKind {
				t.Fatalf("Classify(%q) kind = %s, want %s", tt.input, got.Kind, tt.wantKind)
			}
			if got.Text != tt.input {
				t.Errorf("Classify(%q) text = %q, want original line", tt.input, got.Text)
			}
			if tt.wantKind != LineParsed {
				return
			}
			if got.Bookmark.Alias != tt.wantAlias {
				t.Errorf("alias = %q, want %q", got.Bookmark.Alias, tt.wantAlias)
			}
			if got.Bookmark.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", got.Bookmark.Path, tt.wantPath)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	input := `docs "/home/user/My Documents"`

	first := Classify(input)
	second := Classify(input)

	if first != second {
		t.Errorf("Classify is not deterministic: %+v vs %+v", first, second)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LineParsed, "parsed"},
		{LineComment, "comment"},
		{LineBlank, "blank"},
		{LineMalformed, "malformed"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
