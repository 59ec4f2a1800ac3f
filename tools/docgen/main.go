// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"

	"github.com/staranto/taxogo/internal/command"
)

// docgen builds the taxo command tree and renders, for every subcommand:
//   - docs/man/share/man1/taxo-<cmd>.1 from docs/commands/<cmd>.md plus the
//     command's own flags, the global store flags and their env vars
//   - docs/tldr/taxo-<cmd>.md from the short description and quick examples
//
// and a taxo.1 index page listing the commands.
func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	commandsDir := filepath.Join(repoRoot, "docs", "commands")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")
	tldrOutDir := filepath.Join(repoRoot, "docs", "tldr")

	for _, dir := range []string{manOutDir, tldrOutDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir %s: %v", dir, err)
		}
	}

	app, err := command.InitApp(context.Background(), []string{"taxo"}, io.Discard)
	if err != nil {
		fatalf("building taxo commands: %v", err)
	}

	pages, err := Pages(app, commandsDir)
	if err != nil {
		fatalf("%v", err)
	}

	for _, p := range pages {
		manPath := filepath.Join(manOutDir, p.Name+".1")
		if err := writeFileIfChanged(manPath, md2man.Render([]byte(p.ManMarkdown(app))), writeOnlyIfChanged); err != nil {
			fatalf("writing man page for %s: %v", p.Name, err)
		}

		tldrPath := filepath.Join(tldrOutDir, p.Name+".md")
		if err := writeFileIfChanged(tldrPath, []byte(p.TLDR()), writeOnlyIfChanged); err != nil {
			fatalf("writing TLDR for %s: %v", p.Name, err)
		}
	}

	indexPath := filepath.Join(manOutDir, "taxo.1")
	if err := writeFileIfChanged(indexPath, md2man.Render([]byte(IndexMarkdown(app, pages))), writeOnlyIfChanged); err != nil {
		fatalf("writing man index: %v", err)
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeFileIfChanged(path string, new []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, new, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, new, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(new)) {
		return nil
	}
	return os.WriteFile(path, new, 0o644)
}
