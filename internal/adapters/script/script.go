// Package script writes the shell script that retries failed installs.
package script

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"strings"

	"go.trai.ch/packsync/internal/adapters/fs"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// Writer implements ports.RetryScriptWriter.
type Writer struct {
	dir string
}

// NewWriter creates a Writer placing the script in the store directory dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write renders and writes the retry script, returning its path.
func (w *Writer) Write(manager domain.Manager, failed []domain.PackageSpec) (string, error) {
	path := domain.RetryScriptPath(w.dir)

	body, err := Render(manager, failed)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrScriptWriteFailed.Error()), "path", path)
	}

	if err := fs.WriteFileAtomic(path, []byte(body), domain.ExecFilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrScriptWriteFailed.Error()), "path", path)
	}
	return path, nil
}

// Clear removes the retry script if one exists.
func (w *Writer) Clear() error {
	path := domain.RetryScriptPath(w.dir)
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "cannot remove retry script"), "path", path)
	}
	return nil
}

// Render produces the script text. Every argument is POSIX-quoted.
func Render(manager domain.Manager, failed []domain.PackageSpec) (string, error) {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&b, "# Retry %d failed %s install(s) from the last %s restore.\n", len(failed), manager, domain.AppName)
	b.WriteString("set -u\n\n")

	for _, spec := range failed {
		argv := manager.InstallCommand(spec.Name, spec.Version).Argv()
		quoted := make([]string, len(argv))
		for i, arg := range argv {
			q, err := syntax.Quote(arg, syntax.LangPOSIX)
			if err != nil {
				return "", zerr.With(err, "package", spec.String())
			}
			quoted[i] = q
		}
		b.WriteString(strings.Join(quoted, " "))
		b.WriteByte('\n')
	}

	return b.String(), nil
}
