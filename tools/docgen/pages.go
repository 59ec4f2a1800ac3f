// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
)

const moreInfo = "https://github.com/staranto/taxogo"

// Headings recognized in docs/commands/*.md. Anything else is body text.
const (
	shortHeading    = "short description"
	usageHeading    = "usage"
	examplesHeading = "quick examples"
)

var (
	h1Re          = regexp.MustCompile(`^#\s+(.+)$`)
	placeholderRe = regexp.MustCompile(`<([^>]+)>`)
)

// Doc is the hand written part of a command page.
type Doc struct {
	Title    string
	Short    string
	Body     string
	Examples []Example
}

type Example struct {
	Desc string
	Cmd  string
}

// Page pairs a taxo subcommand with its doc.
type Page struct {
	Name    string
	Command *cli.Command
	Doc     Doc
}

// describedFlag is what the flag types of urfave/cli expose for help text.
type describedFlag interface {
	GetUsage() string
	TakesValue() bool
	GetEnvVars() []string
}

// Pages returns one page per visible subcommand of app, in command order. A
// command without a markdown file gets a page from its usage text; a markdown
// file without a command is an error.
func Pages(app *cli.Command, dir string) ([]Page, error) {
	var (
		pages []Page
		names []string
	)
	for _, cmd := range app.Commands {
		if cmd.Hidden || cmd.Name == "help" {
			continue
		}
		names = append(names, cmd.Name)

		doc := Doc{Title: fmt.Sprintf("taxo %s - %s", cmd.Name, cmd.Usage), Short: cmd.Usage}
		raw, err := os.ReadFile(filepath.Join(dir, cmd.Name+".md"))
		switch {
		case err == nil:
			doc = ParseDoc(string(raw))
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("reading doc for %s: %w", cmd.Name, err)
		}
		if doc.Short == "" {
			doc.Short = cmd.Usage
		}

		pages = append(pages, Page{Name: "taxo-" + cmd.Name, Command: cmd, Doc: doc})
	}

	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading commands dir %s: %w", dir, err)
	}
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || e.IsDir() {
			continue
		}
		if !slices.Contains(names, name) {
			return nil, fmt.Errorf("%s documents %q, which is not a taxo command", e.Name(), name)
		}
	}

	return pages, nil
}

// ParseDoc splits a command markdown file into its sections. The Usage
// section is dropped, the synopsis comes from the command itself.
func ParseDoc(md string) Doc {
	var (
		doc     Doc
		section string
		short   []string
		body    []string
		code    []string
		inFence bool
	)

	for _, ln := range strings.Split(strings.ReplaceAll(md, "\r", ""), "\n") {
		trimmed := strings.TrimSpace(ln)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			if section == examplesHeading {
				code = append(code, trimmed)
			} else {
				body = append(body, ln)
			}
			continue
		}

		if m := h1Re.FindStringSubmatch(trimmed); m != nil && doc.Title == "" {
			doc.Title = strings.TrimSpace(m[1])
			continue
		}
		switch strings.ToLower(trimmed) {
		case shortHeading, usageHeading, examplesHeading:
			section = strings.ToLower(trimmed)
			continue
		}

		switch section {
		case shortHeading:
			// The first paragraph is the short description, the rest is body.
			if trimmed == "" && len(short) > 0 {
				section = ""
				continue
			}
			if trimmed != "" {
				short = append(short, trimmed)
			}
		case usageHeading:
			// A blank line ends the synopsis.
			if trimmed == "" {
				section = ""
			}
		case examplesHeading:
		default:
			body = append(body, ln)
		}
	}

	doc.Short = strings.Join(short, " ")
	doc.Body = strings.TrimSpace(strings.Join(body, "\n"))
	doc.Examples = parseExamples(code)
	return doc
}

// parseExamples pairs "# description" comment lines with the command that
// follows them.
func parseExamples(lines []string) []Example {
	var (
		exs  []Example
		desc string
	)
	for _, ln := range lines {
		switch {
		case ln == "":
		case strings.HasPrefix(ln, "#"):
			desc = strings.TrimSpace(strings.TrimLeft(ln, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, Example{Desc: desc, Cmd: strings.Join(strings.Fields(ln), " ")})
			desc = ""
		}
	}
	return exs
}

// takesName reports whether the command's first argument is a taxonomy name,
// which is where inflection applies.
func (p Page) takesName() bool {
	return strings.Contains(p.Command.UsageText, "<name>")
}

// synopsis is the command's usage text with <placeholders> in tldr style.
func (p Page) synopsis() string {
	s := strings.TrimSpace(p.Command.UsageText)
	if s == "" {
		s = "taxo " + p.Command.Name
	}
	return s
}

// ManMarkdown assembles the full man page source for md2man.
func (p Page) ManMarkdown(app *cli.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%% %s(1)\n\n", strings.ToUpper(p.Name))

	b.WriteString("# NAME\n\n")
	fmt.Fprintf(&b, "%s - %s\n\n", p.Name, p.Command.Usage)

	b.WriteString("# SYNOPSIS\n\n")
	fmt.Fprintf(&b, "`%s`\n\n", p.synopsis())

	b.WriteString("# DESCRIPTION\n\n")
	b.WriteString(p.Doc.Short + "\n\n")
	if p.Doc.Body != "" {
		b.WriteString(p.Doc.Body + "\n\n")
	}

	if len(p.Command.Flags) > 0 {
		b.WriteString("# OPTIONS\n\n")
		writeFlags(&b, p.Command.Flags)
	}

	b.WriteString("# GLOBAL OPTIONS\n\n")
	writeFlags(&b, app.Flags)

	b.WriteString("# ENVIRONMENT\n\n")
	for _, env := range environment(app, p.Command) {
		fmt.Fprintf(&b, "- `%s`\n", env)
	}
	b.WriteString("- `TAXO_CFG`: config file, otherwise taxo.yaml in $XDG_CONFIG_HOME, $APPDATA or $HOME\n")
	b.WriteString("- `TAXO_LOG`: log level, default error\n\n")

	if len(p.Doc.Examples) > 0 {
		b.WriteString("# EXAMPLES\n\n")
		for _, ex := range p.Doc.Examples {
			fmt.Fprintf(&b, "%s:\n\n    %s\n\n", ex.Desc, ex.Cmd)
		}
	}

	b.WriteString("# SEE ALSO\n\n")
	b.WriteString("taxo(1)\n")
	return b.String()
}

// TLDR renders the tldr page. Every page says where the storage root comes
// from, and pages of commands taking a taxonomy name explain inflection.
func (p Page) TLDR() string {
	var b strings.Builder

	b.WriteString("# " + p.Name + "\n\n")
	b.WriteString("> " + p.Doc.Short + "\n")
	b.WriteString("> Reads from `--storage-dir`, `TAXO_STORAGE_DIR` or `storage_dir` in taxo.yaml.\n")
	if p.takesName() {
		b.WriteString("> Names are inflected (`MagicPlace` is `magic_place`), `--inflector none` turns that off.\n")
	}
	b.WriteString("> More information: " + moreInfo + ".\n")

	for _, ex := range p.Doc.Examples {
		fmt.Fprintf(&b, "\n- %s:\n\n`%s`\n", ex.Desc, ex.Cmd)
	}

	args := strings.TrimSpace(strings.TrimPrefix(p.synopsis(), "taxo "+p.Command.Name))
	args = strings.TrimSpace(strings.ReplaceAll(args, "[options]", ""))
	cmd := strings.TrimSpace("taxo --storage-dir {{path/to/store}} " + p.Command.Name + " " + args)
	fmt.Fprintf(&b, "\n- Use a specific storage root:\n\n`%s`\n", placeholderRe.ReplaceAllString(cmd, "{{$1}}"))

	return b.String()
}

// IndexMarkdown is the taxo(1) page listing every command page.
func IndexMarkdown(app *cli.Command, pages []Page) string {
	var b strings.Builder

	b.WriteString("% TAXO(1)\n\n")
	b.WriteString("# NAME\n\n")
	fmt.Fprintf(&b, "taxo - %s\n\n", app.Usage)
	b.WriteString("# SYNOPSIS\n\n")
	b.WriteString("`taxo [global options] <command> [options]`\n\n")
	b.WriteString("# COMMANDS\n\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "- `%s`: %s, see %s(1)\n", p.Command.Name, p.Command.Usage, p.Name)
	}
	b.WriteString("\n# GLOBAL OPTIONS\n\n")
	writeFlags(&b, app.Flags)
	return b.String()
}

func writeFlags(b *strings.Builder, flags []cli.Flag) {
	for _, f := range flags {
		var names []string
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "`-"+n+"`")
			} else {
				names = append(names, "`--"+n+"`")
			}
		}
		line := "- " + strings.Join(names, ", ")

		if d, ok := f.(describedFlag); ok {
			if d.TakesValue() {
				line += " *value*"
			}
			if u := d.GetUsage(); u != "" {
				line += ": " + u
			}
			if envs := d.GetEnvVars(); len(envs) > 0 {
				line += " (env " + strings.Join(envs, ", ") + ")"
			}
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

// environment lists the env vars read by the global flags and cmd's flags.
func environment(app, cmd *cli.Command) []string {
	var envs []string
	for _, f := range append(slices.Clone(app.Flags), cmd.Flags...) {
		if d, ok := f.(describedFlag); ok {
			envs = append(envs, d.GetEnvVars()...)
		}
	}
	slices.Sort(envs)
	return slices.Compact(envs)
}
