// File: doc.go
// Title: Error Package Documentation
// Description: Documents the structured error handling used throughout
//              shellmarks.

/*
Package error provides structured error handling for shellmarks.

Errors carry a string Code for classification, the operation that produced
them, and arbitrary key-value details for reporting. The type implements the
standard error interface and supports errors.Unwrap chains.

Usage:

	import smerror "github.com/shellmarks/shellmarks/internal/core/error"

	err := smerror.New("cannot parse line").
		WithCode(smerror.CodeInvalidFormat).
		WithOperation("bookmark.Parse").
		WithDetail("line", 3)
*/
package error
