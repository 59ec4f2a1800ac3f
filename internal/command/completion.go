// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/taxogo/internal/meta"
)

const bashCompletionScript = `# bash completion for taxo
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_taxo()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local global="--storage-dir -d --inflector --suffix-len --exclude --help --version"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "get ls diff completion $global" -- "$cur") )
        return 0
    fi

    case "$prev" in
        --storage-dir|-d)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
        --output|-o)
            COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
            return 0
            ;;
        --inflector)
            COMPREPLY=( $(compgen -W "default none" -- "$cur") )
            return 0
            ;;
    esac

    cmd=${COMP_WORDS[1]}
    local common="--color -c --output -o --titles -t"

    case "${cmd}" in
        get)
            local opts="$common --attrs -a --filter -f --query -q --sort -s"
            ;;
        ls)
            local opts="$common"
            ;;
        diff)
            local opts="--color -c --exit-code --query -q"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$global"
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _taxo taxo
`

const zshCompletionScript = `#compdef taxo

_taxo() {
  local -a cmds
  cmds=(
    'get:read a taxonomy or a single item'
    'ls:list the taxonomies in the store'
    'diff:compare two items of a taxonomy'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'taxo commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    get)
      _arguments -C \
        $common \
        '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs' \
        '(-f --filter)'{-f,--filter}'[filters to apply]:filters' \
        '(-q --query)'{-q,--query}'[gjson query]:query' \
        '(-s --sort)'{-s,--sort}'[sort rows]:attrs' \
        '1:taxonomy' \
        '2:identifier'
      ;;
    ls)
      _arguments -C $common
      ;;
    diff)
      _arguments -C \
        '(-c --color)'{-c,--color}'[enable colored diff]' \
        '--exit-code[fail when the items differ]' \
        '(-q --query)'{-q,--query}'[gjson query]:query' \
        '1:taxonomy' \
        '2:identifier' \
        '3:identifier'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C \
        '(-d --storage-dir)'{-d,--storage-dir}'[storage root]:directory:_directories' \
        '--inflector[identifier inflector]:inflector:(default none)' \
        '--suffix-len[extension length]:len' \
        '*--exclude[exclude glob]:glob'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _taxo taxo
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := writer(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(w, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(w, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: taxo completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "taxo completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
