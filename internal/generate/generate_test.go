// File: generate_test.go
// Title: Generation Orchestration Tests
// Description: End-to-end tests for the generate operation: successful runs
//              write exactly the selected outputs, failed runs write
//              nothing.

package generate

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shellmarks/shellmarks/internal/config"
	smerror "github.com/shellmarks/shellmarks/internal/core/error"
	smlog "github.com/shellmarks/shellmarks/internal/core/log"
	"github.com/shellmarks/shellmarks/internal/render"
)

func silentLogger() *smlog.Logger {
	return smlog.New().WithOutput(io.Discard)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bookmarks")
	lfOut := filepath.Join(dir, "lf")
	zshOut := filepath.Join(dir, "zsh")

	content := "# my bookmarks\n" +
		"proj /home/user/project\n" +
		"docs \"/home/user/My Documents\"\n"
	if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Input: input,
		Outputs: config.Outputs{
			Lf:      lfOut,
			ZshHash: zshOut,
		},
	}

	if err := Run(cfg, silentLogger()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lf, err := os.ReadFile(lfOut)
	if err != nil {
		t.Fatal(err)
	}
	wantLf := "map gproj cd /home/user/project\n" +
		"map gdocs cd /home/user/My Documents\n"
	if string(lf) != wantLf {
		t.Errorf("lf output = %q, want %q", string(lf), wantLf)
	}

	zsh, err := os.ReadFile(zshOut)
	if err != nil {
		t.Fatal(err)
	}
	wantZsh := "hash -d proj=/home/user/project\n" +
		"hash -d docs=/home/user/My Documents\n"
	if string(zsh) != wantZsh {
		t.Errorf("zsh output = %q, want %q", string(zsh), wantZsh)
	}
}

func TestRunMalformedInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bookmarks")
	lfOut := filepath.Join(dir, "lf")
	zshOut := filepath.Join(dir, "zsh")
	aliasOut := filepath.Join(dir, "aliases")

	content := "proj /home/user/project\nonlyoneword\n"
	if err := os.WriteFile(input, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Input: input,
		Outputs: config.Outputs{
			Lf:      lfOut,
			ZshHash: zshOut,
			CdAlias: aliasOut,
		},
	}

	err := Run(cfg, silentLogger())
	if err == nil {
		t.Fatal("Run() expected error for malformed input")
	}
	if !smerror.HasCode(err, smerror.CodeInvalidFormat) {
		t.Errorf("error code = %s, want %s", smerror.GetCode(err), smerror.CodeInvalidFormat)
	}

	for _, path := range []string{lfOut, zshOut, aliasOut} {
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Errorf("output file %s exists after failed run", path)
		}
	}
}

func TestRunNoTargets(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bookmarks")
	if err := os.WriteFile(input, []byte("proj /p\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Input: input}

	err := Run(cfg, silentLogger())
	if err == nil {
		t.Fatal("Run() expected error for zero output targets")
	}
	if !smerror.HasCode(err, smerror.CodeConfigError) {
		t.Errorf("error code = %s, want %s", smerror.GetCode(err), smerror.CodeConfigError)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Input:   filepath.Join(dir, "does-not-exist"),
		Outputs: config.Outputs{Lf: filepath.Join(dir, "lf")},
	}

	err := Run(cfg, silentLogger())
	if err == nil {
		t.Fatal("Run() expected error for missing input file")
	}
	if !smerror.HasCode(err, smerror.CodeIOError) {
		t.Errorf("error code = %s, want %s", smerror.GetCode(err), smerror.CodeIOError)
	}
}

func TestTargets(t *testing.T) {
	targets := Targets(config.Outputs{
		Lf:      "/out/lf",
		CdAlias: "/out/aliases",
	})

	want := []render.Target{
		{Format: render.FormatLf, Path: "/out/lf"},
		{Format: render.FormatCdAlias, Path: "/out/aliases"},
	}

	if len(targets) != len(want) {
		t.Fatalf("Targets() returned %d targets, want %d", len(targets), len(want))
	}
	for i, w := range want {
		if targets[i] != w {
			t.Errorf("target %d = %+v, want %+v", i, targets[i], w)
		}
	}
}
