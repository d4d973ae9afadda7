// File: doc.go
// Title: Logging Package Documentation
// Description: Documents the structured logging used throughout shellmarks.

/*
Package log provides structured logging for shellmarks.

The logger writes to stderr by default so that command output on stdout
stays clean for shell consumption. It supports leveled filtering, contextual
fields, and text or JSON output.

Usage:

	import smlog "github.com/shellmarks/shellmarks/internal/core/log"

	logger := smlog.New().
		WithLevel(smlog.LevelDebug).
		WithName("generate")

	logger.Info("bookmarks parsed", smlog.Int("count", n))
	logger.ErrorWithErr("write failed", err, smlog.String("path", p))
*/
package log
