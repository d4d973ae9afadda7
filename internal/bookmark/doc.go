// File: doc.go
// Title: Bookmark Package Documentation
// Description: Documents the bookmarks file format and its parser.

/*
Package bookmark parses plain-text bookmarks files.

A bookmarks file maps short aliases to directory paths, one per line:

	# my bookmarks
	proj /home/user/project
	docs "/home/user/My Documents"
	tmp  /tmp# scratch space

Lines whose first non-whitespace character is '#' are comments. Paths that
contain whitespace or '#' must be double-quoted; there is no escaping of the
quote character inside a quoted path. Unquoted paths end at the first
whitespace or '#', so trailing same-line comments are allowed.

Classify handles a single line; Parse and ParseFile drive it over a whole
file, skipping comments and blank lines and aborting on the first line that
fits neither grammar.
*/
package bookmark
